package percolation

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/percolate/lattice"
	"github.com/katalvlaran/percolate/unionfind"
)

// Model is an n×n percolation system.
type Model struct {
	lat       lattice.Lattice
	open      []bool // row-major, monotonic
	openCount int

	source *unionfind.DisjointSet // virtual top only
	sink   *unionfind.DisjointSet // virtual top and bottom

	top, bottom int
	opts        Options
}

// New creates an n×n model with every site blocked.
// Returns ErrInvalidSize if n ≤ 0.
func New(n int, opts ...Option) (*Model, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	lat, err := lattice.New(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, err)
	}
	sites := lat.Sites()
	source, err := unionfind.New(sites + 2)
	if err != nil {
		return nil, fmt.Errorf("percolation: source connector: %w", err)
	}
	sink, err := unionfind.New(sites + 2)
	if err != nil {
		return nil, fmt.Errorf("percolation: sink connector: %w", err)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Model{
		lat:    lat,
		open:   make([]bool, sites),
		source: source,
		sink:   sink,
		top:    0,
		bottom: sites + 1,
		opts:   o,
	}, nil
}

// SideLength returns n.
func (m *Model) SideLength() int {
	return m.lat.Side()
}

// TotalSites returns n².
func (m *Model) TotalSites() int {
	return m.lat.Sites()
}

// OpenSiteCount returns the number of distinct sites opened so far.
func (m *Model) OpenSiteCount() int {
	return m.openCount
}

// ValidateCoordinate returns ErrIndexOutOfRange unless 0 ≤ row,col < n.
func (m *Model) ValidateCoordinate(row, col int) error {
	if !m.lat.InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrIndexOutOfRange, row, col, m.lat.Side(), m.lat.Side())
	}

	return nil
}

// node maps a valid (row,col) to its connector index.
func (m *Model) node(row, col int) int {
	return m.lat.Index(row, col) + 1
}

// IsOpen reports whether (row,col) has been opened.
func (m *Model) IsOpen(row, col int) (bool, error) {
	if err := m.ValidateCoordinate(row, col); err != nil {
		return false, err
	}

	return m.open[m.lat.Index(row, col)], nil
}

// IsFull reports whether (row,col) is open and connected to the top row.
// Only the source connector is consulted.
func (m *Model) IsFull(row, col int) (bool, error) {
	if err := m.ValidateCoordinate(row, col); err != nil {
		return false, err
	}

	return m.full(m.node(row, col)), nil
}

// Percolates reports whether the top row is connected to the bottom row.
// Only the sink connector is consulted.
func (m *Model) Percolates() bool {
	ok, _ := m.sink.Connected(m.top, m.bottom)

	return ok
}

// full checks a known-valid connector index against the virtual top.
func (m *Model) full(node int) bool {
	ok, _ := m.source.Connected(node, m.top)

	return ok
}

// Open opens (row,col) and connects it to its open neighbours.
//
// Opening an already open site is a no-op. Coordinates are validated before
// anything is mutated. Row 0 is tied to the virtual top in both connectors;
// row n-1 is tied to the virtual bottom in the sink connector only.
func (m *Model) Open(row, col int) error {
	if err := m.ValidateCoordinate(row, col); err != nil {
		return err
	}
	idx := m.lat.Index(row, col)
	if m.open[idx] {
		return nil
	}
	m.open[idx] = true
	m.openCount++

	site := idx + 1
	if row == 0 {
		if err := m.connect(site, m.top); err != nil {
			return err
		}
	}
	if row == m.lat.Side()-1 {
		if err := m.sink.Union(site, m.bottom); err != nil {
			return fmt.Errorf("percolation: sink connector: %w", err)
		}
	}
	for _, nb := range m.lat.Neighbors(row, col) {
		if !m.open[m.lat.Index(nb.Row, nb.Col)] {
			continue
		}
		if err := m.connect(site, m.node(nb.Row, nb.Col)); err != nil {
			return err
		}
	}

	if m.opts.OnOpen != nil {
		m.opts.OnOpen(OpenEvent{
			Row:        row,
			Col:        col,
			Full:       m.full(site),
			Percolates: m.Percolates(),
			OpenSites:  m.openCount,
		})
	}

	return nil
}

// connect unions p and q in both connectors.
func (m *Model) connect(p, q int) error {
	if err := m.source.Union(p, q); err != nil {
		return fmt.Errorf("percolation: source connector: %w", err)
	}
	if err := m.sink.Union(p, q); err != nil {
		return fmt.Errorf("percolation: sink connector: %w", err)
	}

	return nil
}

// OpenRandom opens a uniformly chosen blocked site drawn from r.
// Returns ok=false, opening nothing, when every site is already open.
func (m *Model) OpenRandom(r *rand.Rand) (row, col int, ok bool, err error) {
	total := m.lat.Sites()
	if m.openCount == total {
		return 0, 0, false, nil
	}
	idx := r.Intn(total)
	for m.open[idx] {
		idx = r.Intn(total)
	}
	row, col = m.lat.Coordinate(idx)
	if err := m.Open(row, col); err != nil {
		return 0, 0, false, err
	}

	return row, col, true, nil
}

// OpenMask returns a copy of the row-major open flags.
func (m *Model) OpenMask() []bool {
	out := make([]bool, len(m.open))
	copy(out, m.open)

	return out
}

// Snapshot captures every site's State along with the global counters.
func (m *Model) Snapshot() Snapshot {
	states := make([]State, len(m.open))
	for i, isOpen := range m.open {
		switch {
		case !isOpen:
			states[i] = Blocked
		case m.full(i + 1):
			states[i] = Full
		default:
			states[i] = Open
		}
	}

	return Snapshot{
		Side:       m.lat.Side(),
		States:     states,
		OpenSites:  m.openCount,
		Percolates: m.Percolates(),
	}
}

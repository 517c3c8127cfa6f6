package percolation

import "errors"

var (
	// ErrInvalidSize indicates a non-positive side length.
	ErrInvalidSize = errors.New("percolation: side length must be positive")

	// ErrIndexOutOfRange indicates a coordinate outside the lattice.
	ErrIndexOutOfRange = errors.New("percolation: index out of range")
)

// State classifies a site for display. Only Blocked/Open is stored;
// Full is derived on query.
type State int

const (
	// Blocked sites have never been opened.
	Blocked State = iota
	// Open sites are open but not connected to the top row.
	Open
	// Full sites are open and connected to the top row.
	Full
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case Blocked:
		return "blocked"
	case Open:
		return "open"
	case Full:
		return "full"
	default:
		return "unknown"
	}
}

// OpenEvent describes the model right after a site was opened for the first time.
type OpenEvent struct {
	Row, Col   int
	Full       bool // the opened site is connected to the top
	Percolates bool
	OpenSites  int
}

// Option configures a Model.
type Option func(*Options)

// Options holds optional Model behaviour.
type Options struct {
	// OnOpen, if non-nil, is called after every first-time Open of a site.
	// It runs synchronously on the caller's goroutine and must not call Open.
	OnOpen func(OpenEvent)
}

// DefaultOptions returns Options with no hooks installed.
func DefaultOptions() Options {
	return Options{OnOpen: nil}
}

// WithOnOpen installs fn as the post-open hook.
func WithOnOpen(fn func(OpenEvent)) Option {
	return func(o *Options) {
		o.OnOpen = fn
	}
}

// Snapshot is a point-in-time view of every site, row-major.
type Snapshot struct {
	Side       int
	States     []State
	OpenSites  int
	Percolates bool
}

// At returns the state of (row,col). The caller must pass valid coordinates.
func (s Snapshot) At(row, col int) State {
	return s.States[row*s.Side+col]
}

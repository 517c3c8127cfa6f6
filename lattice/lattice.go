package lattice

import "fmt"

// New returns the geometry of a side×side lattice.
// Returns ErrInvalidSide if side ≤ 0.
func New(side int) (Lattice, error) {
	if side <= 0 {
		return Lattice{}, fmt.Errorf("%w: got %d", ErrInvalidSide, side)
	}

	return Lattice{side: side}, nil
}

// Side returns n.
func (l Lattice) Side() int {
	return l.side
}

// Sites returns n², the number of real sites.
func (l Lattice) Sites() int {
	return l.side * l.side
}

// InBounds reports whether (row,col) lies inside the lattice.
// Complexity: O(1).
func (l Lattice) InBounds(row, col int) bool {
	return row >= 0 && row < l.side && col >= 0 && col < l.side
}

// Index maps (row,col) to the row-major index row*n + col.
// The caller must ensure InBounds(row,col).
func (l Lattice) Index(row, col int) int {
	return row*l.side + col
}

// Coordinate converts a row-major index back to (row,col).
func (l Lattice) Coordinate(idx int) (row, col int) {
	return idx / l.side, idx % l.side
}

// Neighbors returns the in-bounds orthogonal neighbours of (row,col)
// in the order up, down, left, right.
func (l Lattice) Neighbors(row, col int) []Site {
	out := make([]Site, 0, len(offsets))
	for _, d := range offsets {
		r, c := row+d[0], col+d[1]
		if l.InBounds(r, c) {
			out = append(out, Site{Row: r, Col: c})
		}
	}

	return out
}

// checkMask validates that open has exactly n² entries.
func (l Lattice) checkMask(open []bool) error {
	if len(open) != l.Sites() {
		return fmt.Errorf("%w: got %d, want %d", ErrMaskSize, len(open), l.Sites())
	}

	return nil
}

package lattice

import "errors"

// Sentinel errors for lattice construction and mask analysis.
var (
	// ErrInvalidSide indicates a non-positive side length.
	ErrInvalidSide = errors.New("lattice: side length must be positive")
	// ErrMaskSize indicates an open mask whose length is not side².
	ErrMaskSize = errors.New("lattice: mask length must equal side*side")
)

// Site addresses one lattice cell by row (0 = top) and column (0 = left).
type Site struct {
	Row, Col int
}

// offsets lists orthogonal neighbours in scan order: up, down, left, right.
var offsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Lattice is the immutable geometry of a square grid of side n.
type Lattice struct {
	side int
}

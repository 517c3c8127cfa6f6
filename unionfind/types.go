// SPDX-License-Identifier: MIT

package unionfind

import "errors"

// Sentinel errors for disjoint-set operations.
var (
	// ErrInvalidSize indicates a non-positive universe size.
	ErrInvalidSize = errors.New("unionfind: size must be positive")

	// ErrIndexOutOfRange indicates an element index outside [0, n).
	ErrIndexOutOfRange = errors.New("unionfind: index out of range")
)

// DisjointSet is a union-by-size forest over the elements [0, n).
//
// parent[i] == i marks a root. size[i] is meaningful only for roots and holds
// the number of elements in that root's tree. count always equals the number
// of roots.
type DisjointSet struct {
	parent []int
	size   []int
	count  int
}

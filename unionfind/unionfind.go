// SPDX-License-Identifier: MIT

package unionfind

import "fmt"

// New constructs a DisjointSet of n singleton sets.
// Returns ErrInvalidSize if n ≤ 0.
// Complexity: O(n) time and memory.
func New(n int) (*DisjointSet, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	d := &DisjointSet{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		d.parent[i] = i
		d.size[i] = 1
	}

	return d, nil
}

// Len returns the size of the universe.
func (d *DisjointSet) Len() int {
	return len(d.parent)
}

// Count returns the current number of disjoint sets.
// Complexity: O(1).
func (d *DisjointSet) Count() int {
	return d.count
}

// validate reports ErrIndexOutOfRange unless 0 ≤ p < n.
func (d *DisjointSet) validate(p int) error {
	if p < 0 || p >= len(d.parent) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, p, len(d.parent))
	}

	return nil
}

// root walks parent links from p to its root. p must already be valid.
// Links are never rewritten here; tree height is bounded by Union alone.
func (d *DisjointSet) root(p int) int {
	for p != d.parent[p] {
		p = d.parent[p]
	}

	return p
}

// Find returns the root of the set containing p.
// Returns ErrIndexOutOfRange if p is outside [0, n).
// Complexity: O(log n) worst case.
func (d *DisjointSet) Find(p int) (int, error) {
	if err := d.validate(p); err != nil {
		return 0, err
	}

	return d.root(p), nil
}

// Connected reports whether p and q belong to the same set.
// Both indices are validated before any lookup.
// Complexity: O(log n) worst case.
func (d *DisjointSet) Connected(p, q int) (bool, error) {
	if err := d.validate(p); err != nil {
		return false, err
	}
	if err := d.validate(q); err != nil {
		return false, err
	}

	return d.root(p) == d.root(q), nil
}

// Union merges the sets containing p and q.
//
// If p and q already share a root the call is a no-op and Count is unchanged.
// Otherwise the smaller tree's root is attached under the larger tree's root,
// with ties attaching q's root under p's root, and Count drops by one.
//
// Returns ErrIndexOutOfRange, without mutating anything, if either index is invalid.
// Complexity: O(log n) worst case.
func (d *DisjointSet) Union(p, q int) error {
	if err := d.validate(p); err != nil {
		return err
	}
	if err := d.validate(q); err != nil {
		return err
	}

	rootP, rootQ := d.root(p), d.root(q)
	if rootP == rootQ {
		return nil
	}
	if d.size[rootP] < d.size[rootQ] {
		d.parent[rootP] = rootQ
		d.size[rootQ] += d.size[rootP]
	} else {
		d.parent[rootQ] = rootP
		d.size[rootP] += d.size[rootQ]
	}
	d.count--

	return nil
}

// Size returns the number of elements in the set containing p.
func (d *DisjointSet) Size(p int) (int, error) {
	if err := d.validate(p); err != nil {
		return 0, err
	}

	return d.size[d.root(p)], nil
}

// Sets returns every disjoint set. Elements within a set are ascending and
// sets are ordered by their smallest element, so output is deterministic.
// Complexity: O(n log n) worst case.
func (d *DisjointSet) Sets() [][]int {
	byRoot := make(map[int]int, d.count)
	out := make([][]int, 0, d.count)
	// Ascending i means each set is created at its smallest element
	// and filled in ascending order.
	for i := range d.parent {
		r := d.root(i)
		slot, ok := byRoot[r]
		if !ok {
			slot = len(out)
			byRoot[r] = slot
			out = append(out, nil)
		}
		out[slot] = append(out[slot], i)
	}

	return out
}

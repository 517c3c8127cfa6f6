// Package unionfind provides a fixed-universe disjoint-set (union-find) forest
// with union by size and no path compression.
//
// What:
//
//   - DisjointSet partitions the integers [0, n) into disjoint sets.
//   - Union merges two sets, Find returns a set's root, Connected compares roots.
//   - Count reports the live number of components.
//
// Why:
//
//   - Incremental connectivity: percolation, image labelling, Kruskal-style merging.
//   - Predictable cost: tree height never exceeds ⌊log₂ n⌋, so every query has a
//     hard O(log n) bound instead of an amortised one.
//
// Complexity:
//
//   - New:       O(n) time, O(n) memory.
//   - Find:      O(log n) worst case (depth of the tree).
//   - Union:     O(log n) worst case (two Finds plus O(1) linking).
//   - Connected: O(log n) worst case.
//   - Count:     O(1).
//
// Union rule:
//
//   - The root of the smaller tree is attached under the root of the larger tree.
//   - On equal sizes the root of q is attached under the root of p.
//   - Paths are never compressed, so parent links change only on Union.
//
// Errors:
//
//   - ErrInvalidSize: New called with n ≤ 0.
//   - ErrIndexOutOfRange: an element index outside [0, n).
//
// A DisjointSet is not safe for concurrent mutation; callers serialise access.
package unionfind

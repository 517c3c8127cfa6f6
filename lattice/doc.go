// Package lattice describes the geometry of a square n×n site lattice and
// provides brute-force connectivity over an open-site mask.
//
// What:
//
//   - Lattice holds the side length and answers bounds, row-major indexing and
//     orthogonal neighbour queries for sites (row, col), 0 ≤ row,col < n.
//   - FloodFull marks every open site reachable from an open top-row site.
//   - Clusters groups open sites into 4-connected components.
//
// Why:
//
//   - The percolation model shares the neighbour scan and index mapping.
//   - FloodFull is an independent oracle: it answers the same question as the
//     incremental union-find model by re-walking the whole mask.
//
// Complexity:
//
//   - InBounds, Index, Coordinate: O(1).
//   - Neighbors:                   O(1), at most 4 sites.
//   - FloodFull, Clusters:         O(n²) time and memory.
//
// Errors:
//
//   - ErrInvalidSide: side length ≤ 0.
//   - ErrMaskSize: the open mask does not hold exactly n² entries.
package lattice

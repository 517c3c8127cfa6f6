// Package percolation models site percolation on an n×n lattice.
//
// Sites start blocked and are opened one at a time. At any point the model
// answers whether a site is full (connected to the top row through open
// sites) and whether the lattice percolates (the top row is connected to the
// bottom row).
//
// How:
//
//   - Site (row, col) maps to index row*n + col + 1 in two disjoint-set
//     forests of size n²+2. Index 0 is a virtual top node, index n²+1 a
//     virtual bottom node.
//   - The source connector links top-row sites to the virtual top only. It
//     answers IsFull.
//   - The sink connector receives the same unions plus bottom-row sites tied
//     to the virtual bottom. It answers Percolates.
//
// Keeping the virtual bottom out of the source connector prevents backwash:
// once the lattice percolates, a single forest would report every open site
// touching the bottom row as full, even with no genuine path to the top.
//
// Complexity:
//
//   - New:                     O(n²) time and memory.
//   - Open:                    O(log n) (at most five unions per connector).
//   - IsOpen:                  O(1).
//   - IsFull, Percolates:      O(log n).
//   - Snapshot:                O(n² log n).
//
// Errors:
//
//   - ErrInvalidSize: New called with n ≤ 0.
//   - ErrIndexOutOfRange: a coordinate outside [0, n)×[0, n).
//
// Concurrency: a Model is owned by one caller. Serialise Open and queries
// with an external lock if several goroutines share it.
package percolation

// Package percolate models site percolation on square lattices.
//
// What is percolation?
//
//	Take an n×n grid of sites, each blocked or open. Water poured on the top
//	row flows into open sites and from there to orthogonally adjacent open
//	sites. A site reached by the water is full; the system percolates when
//	water reaches the bottom row.
//
// Under the hood, everything is organised under a few subpackages:
//
//	unionfind/   — union-by-size disjoint-set forest (no path compression)
//	percolation/ — the Model: open sites, IsFull, Percolates, backwash-free
//	lattice/     — square-grid geometry and a brute-force flood-fill oracle
//	montecarlo/  — parallel estimation of the percolation threshold p*
//	render/      — terminal drawing of model snapshots
//	cmd/percolate — CLI: simulate, stats, play
//
// Quick ASCII example (■ blocked, □ open, ● full):
//
//	● ■ ■
//	● ● ■
//	■ ● ■
//
//	percolates: the full path reaches the bottom row at column 1.
//
//	go get github.com/katalvlaran/percolate
package percolate

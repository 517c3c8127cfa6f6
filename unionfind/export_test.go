package unionfind

// Depth returns the number of parent links between p and its root.
// Exported for tests only.
func (d *DisjointSet) Depth(p int) int {
	depth := 0
	for p != d.parent[p] {
		p = d.parent[p]
		depth++
	}

	return depth
}

// Parent returns the raw parent link of p. Exported for tests only.
func (d *DisjointSet) Parent(p int) int {
	return d.parent[p]
}

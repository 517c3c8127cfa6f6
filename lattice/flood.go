package lattice

// FloodFull returns a mask marking every open site connected to an open
// top-row site through orthogonally adjacent open sites.
//
// open is indexed row-major (see Index). Returns ErrMaskSize if
// len(open) != n².
//
// Time:   O(n²).
// Memory: O(n²) for the queue and result.
func (l Lattice) FloodFull(open []bool) ([]bool, error) {
	if err := l.checkMask(open); err != nil {
		return nil, err
	}
	full := make([]bool, len(open))
	queue := make([]int, 0, l.side)
	// Seed with every open top-row site.
	for col := 0; col < l.side; col++ {
		if open[col] {
			full[col] = true
			queue = append(queue, col)
		}
	}
	for qi := 0; qi < len(queue); qi++ {
		row, col := l.Coordinate(queue[qi])
		for _, d := range offsets {
			r, c := row+d[0], col+d[1]
			if !l.InBounds(r, c) {
				continue
			}
			vi := l.Index(r, c)
			if open[vi] && !full[vi] {
				full[vi] = true
				queue = append(queue, vi)
			}
		}
	}

	return full, nil
}

// Percolates reports whether any bottom-row site is reachable from the top
// row through open sites, recomputed from scratch with FloodFull.
func (l Lattice) Percolates(open []bool) (bool, error) {
	full, err := l.FloodFull(open)
	if err != nil {
		return false, err
	}
	last := l.Index(l.side-1, 0)
	for col := 0; col < l.side; col++ {
		if full[last+col] {
			return true, nil
		}
	}

	return false, nil
}

// Clusters finds all 4-connected components of open sites.
// Each component is a slice of row-major indices in BFS discovery order;
// components are ordered by their first site in row-major order.
//
// Time:   O(n²).
// Memory: O(n²) for visited flags and output.
func (l Lattice) Clusters(open []bool) ([][]int, error) {
	if err := l.checkMask(open); err != nil {
		return nil, err
	}
	seen := make([]bool, len(open))
	var comps [][]int

	for i0 := range open {
		if !open[i0] || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			row, col := l.Coordinate(queue[qi])
			for _, d := range offsets {
				r, c := row+d[0], col+d[1]
				if !l.InBounds(r, c) {
					continue
				}
				vi := l.Index(r, c)
				if open[vi] && !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps, nil
}

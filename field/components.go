package field

// Components partitions every non-obstacle cell of a Topology into
// connected components under its own Neighbors adjacency, via BFS
// flood-fill. Obstacle cells are excluded entirely (the N-dimensional
// analogue of gridgraph's land/water split, generalized from a 2-D
// Conn4/Conn8 grid to any dimensionality and to the periodic topology's
// wraparound adjacency).
//
// Useful as a cheap pre-flight check before a propagate.Engine run: two
// coordinates in different components can never be connected by any
// search engine, regardless of algorithm.
func Components(topo Topology) [][]int {
	visited := make([]bool, topo.Len())
	var components [][]int

	for start := 0; start < topo.Len(); start++ {
		if visited[start] || topo.CellAt(start).Obstacle {
			continue
		}

		queue := []int{start}
		visited[start] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			idx := queue[qi]
			comp = append(comp, idx)

			for _, nIdx := range topo.Neighbors(idx) {
				if visited[nIdx] || topo.CellAt(nIdx).Obstacle {
					continue
				}
				visited[nIdx] = true
				queue = append(queue, nIdx)
			}
		}

		components = append(components, comp)
	}

	return components
}

// SameComponent reports whether a and b belong to the same connected
// non-obstacle component of topo. Returns false if either coordinate is
// out of bounds or an obstacle.
func SameComponent(topo Topology, a, b CellCoord) bool {
	aIdx, ok := topo.IndexOf(a)
	if !ok || topo.CellAt(aIdx).Obstacle {
		return false
	}
	bIdx, ok := topo.IndexOf(b)
	if !ok || topo.CellAt(bIdx).Obstacle {
		return false
	}
	if aIdx == bIdx {
		return true
	}

	visited := make([]bool, topo.Len())
	queue := []int{aIdx}
	visited[aIdx] = true
	for qi := 0; qi < len(queue); qi++ {
		idx := queue[qi]
		if idx == bIdx {
			return true
		}
		for _, nIdx := range topo.Neighbors(idx) {
			if visited[nIdx] || topo.CellAt(nIdx).Obstacle {
				continue
			}
			visited[nIdx] = true
			queue = append(queue, nIdx)
		}
	}
	return false
}

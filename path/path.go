// Package path reconstructs a concrete cell sequence from the parent
// chain a propagate engine leaves behind after Run, grounded on
// PathExtractor.cpp's parent-walk.
package path

import "github.com/katalvlaran/gridwave/field"

// ExtractPath walks the parent chain from goalIdx back to its root
// source, returning the cell indices in source-to-goal order. Returns
// an empty slice if goalIdx's cell was never reached (state FAR).
func ExtractPath(topo field.Topology, goalIdx int) []int {
	cell := topo.CellAt(goalIdx)
	if cell.State == field.Far {
		return nil
	}

	var reversed []int
	idx := goalIdx
	for idx != field.NoParent {
		reversed = append(reversed, idx)
		idx = topo.CellAt(idx).Parent
	}

	path := make([]int, len(reversed))
	for i, v := range reversed {
		path[len(reversed)-1-i] = v
	}
	return path
}

// IsValidPath reports whether path is non-empty. It does not re-verify
// adjacency or cost monotonicity; those are guaranteed by the parent
// chain itself when path comes from ExtractPath.
func IsValidPath(path []int) bool {
	return len(path) > 0
}

// SmoothPath returns path unchanged. The reference extractor's smoothing
// hook was never implemented either; this keeps the same shape so a
// smoothing pass can be added later without changing callers.
func SmoothPath(path []int) []int {
	return path
}

// Package adjacency builds the two adjacency representations the
// decomposition pipeline needs: the raw row-to-column incidence of the
// sparsity pattern, and the derived row-to-row dependency graph induced by
// a matching.
//
// Complexity:
//
//   - BuildRowAdjacency: O(nnz + n*max_row_width) (the max_row_width term
//     comes from per-row sorting).
//   - BuildRowDependencyGraph: O(nnz + n*max_row_width) for the same reason.
package adjacency

import (
	"sort"

	"github.com/bcolloran/nalgebra-block-triangularization/pattern"
)

// BuildRowAdjacency returns, for each row i in [0, src.Rows()), the sorted,
// de-duplicated list of columns j where src.At(i, j) is not a structural
// zero under isZero.
func BuildRowAdjacency[T any](src pattern.Source[T], isZero pattern.IsZeroFunc[T]) [][]int {
	// 1) Allocate one slice per row; rows with no nonzeros stay nil, which
	//    is a valid empty adjacency list for downstream stages.
	nrows := src.Rows()
	ncols := src.Cols()
	adj := make([][]int, nrows)

	// 2) Scan every (i, j) position and record structural nonzeros.
	for i := 0; i < nrows; i++ {
		for j := 0; j < ncols; j++ {
			if !isZero(src.At(i, j)) {
				adj[i] = append(adj[i], j)
			}
		}
		// 3) Columns within a row are already strictly increasing from the
		//    left-to-right scan; sort defensively in case a future Source
		//    implementation iterates out of order, and dedup for safety.
		adj[i] = sortDedup(adj[i])
	}

	return adj
}

// BuildRowDependencyGraph returns, for each row i, the sorted,
// de-duplicated list of rows k such that row i has a nonzero in some column
// matched to row k (colToRow[j] == k), excluding self-loops (k == i).
// Unmatched rows still appear as nodes with possibly empty out-edges; edges
// targeting unmatched columns are omitted because such columns have no
// back-reference to a row.
func BuildRowDependencyGraph(rowAdj [][]int, colToRow []int) [][]int {
	nrows := len(rowAdj)
	graph := make([][]int, nrows)

	for i, cols := range rowAdj {
		for _, j := range cols {
			// 1) Skip columns outside the matching's domain or unmatched.
			if j < 0 || j >= len(colToRow) {
				continue
			}
			k := colToRow[j]
			if k == pattern.NoneIndex {
				continue
			}
			// 2) Drop self-loops: a row matched to one of its own
			//    nonzeros contributes no inter-row dependency.
			if k == i {
				continue
			}
			graph[i] = append(graph[i], k)
		}
		graph[i] = sortDedup(graph[i])
	}

	return graph
}

// sortDedup sorts ints ascending and removes adjacent duplicates in place,
// returning the (possibly shorter) slice.
func sortDedup(xs []int) []int {
	if len(xs) < 2 {
		return xs
	}
	sort.Ints(xs)
	out := xs[:1]
	for _, x := range xs[1:] {
		if x != out[len(out)-1] {
			out = append(out, x)
		}
	}

	return out
}

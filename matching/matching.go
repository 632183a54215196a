// Package matching computes a maximum-cardinality bipartite matching
// between rows and columns of a sparsity pattern using Hopcroft-Karp.
//
// Algorithm (mirrors flow.Dinic's phase structure: layer, then
// blocking-augment, repeat until the layering finds nothing new):
//
//  1. BFS layering from every free row, advancing row->col->row until a
//     free (unmatched) column is reached.
//  2. DFS augmentation along the strictly-layered graph from every free
//     row, flipping the matching along each successful path.
//  3. Repeat until a BFS phase finds no augmenting path.
//
// Complexity: O(E * sqrt(V)). Determinism: row-adjacency lists are
// iterated in their stored (ascending) order in both BFS and DFS, so the
// resulting matching is reproducible across runs.
package matching

import (
	"context"
	"math"

	"github.com/bcolloran/nalgebra-block-triangularization/pattern"
)

// Options configures MaximumMatching. The zero value is ready to use.
type Options struct {
	ctx context.Context
}

// Option mutates Options.
type Option func(*Options)

// WithCancelContext sets a cancellation context checked between BFS/DFS
// phases (never mid-DFS, so a single augmenting path always completes
// once started). Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

func defaultOptions() Options {
	return Options{ctx: context.Background()}
}

const infinity = math.MaxInt32 / 4

// MaximumMatching computes a maximum-cardinality matching between the rows
// described by rowAdj (row -> sorted ascending list of incident columns)
// and numCols columns. Zero rows or zero columns yields an empty matching.
func MaximumMatching(rowAdj [][]int, numCols int, opts ...Option) pattern.Matching {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	nRows := len(rowAdj)
	rowToCol := make([]int, nRows)
	for i := range rowToCol {
		rowToCol[i] = pattern.NoneIndex
	}
	colToRow := make([]int, numCols)
	for j := range colToRow {
		colToRow[j] = pattern.NoneIndex
	}

	if nRows == 0 || numCols == 0 {
		return pattern.Matching{RowToCol: rowToCol, ColToRow: colToRow, Size: 0}
	}

	dist := make([]int, nRows)
	size := 0

	for {
		if err := o.ctx.Err(); err != nil {
			break
		}
		if !bfsLayer(rowAdj, rowToCol, colToRow, dist) {
			break
		}
		for u := 0; u < nRows; u++ {
			if rowToCol[u] == pattern.NoneIndex {
				if dfsAugment(u, rowAdj, rowToCol, colToRow, dist) {
					size++
				}
			}
		}
	}

	return pattern.Matching{RowToCol: rowToCol, ColToRow: colToRow, Size: size}
}

// bfsLayer assigns layer 0 to every free row and advances row->col->row via
// the current matching, recording the minimal distance to each reached row.
// Layering stops at the first layer in which an unmatched ("sink") column is
// discovered; rows beyond that layer are left at infinity so dfsAugment only
// follows shortest augmenting paths. Returns true iff a sink was discovered.
func bfsLayer(rowAdj [][]int, rowToCol, colToRow, dist []int) bool {
	queue := make([]int, 0, len(rowAdj))
	for u := 0; u < len(rowAdj); u++ {
		if rowToCol[u] == pattern.NoneIndex {
			dist[u] = 0
			queue = append(queue, u)
		} else {
			dist[u] = infinity
		}
	}

	sinkLayer := infinity
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		if dist[u] > sinkLayer {
			break
		}
		for _, v := range rowAdj[u] {
			if u2 := colToRow[v]; u2 != pattern.NoneIndex {
				if dist[u2] == infinity {
					dist[u2] = dist[u] + 1
					queue = append(queue, u2)
				}
			} else if sinkLayer == infinity {
				sinkLayer = dist[u]
			}
		}
	}
	for _, u := range queue {
		if dist[u] > sinkLayer {
			dist[u] = infinity
		}
	}

	return sinkLayer != infinity
}

// dfsAugment attempts to extend an augmenting path from row u strictly
// through increasing BFS layers toward a free column. On success it flips
// the matching along the discovered path.
func dfsAugment(u int, rowAdj [][]int, rowToCol, colToRow, dist []int) bool {
	for _, v := range rowAdj[u] {
		u2 := colToRow[v]
		if u2 == pattern.NoneIndex {
			rowToCol[u] = v
			colToRow[v] = u

			return true
		}
		if dist[u2] == dist[u]+1 && dfsAugment(u2, rowAdj, rowToCol, colToRow, dist) {
			rowToCol[u] = v
			colToRow[v] = u

			return true
		}
	}
	dist[u] = infinity

	return false
}

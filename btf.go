// Package btf computes a block upper-triangular structural decomposition
// of a sparse matrix's nonzero pattern: two permutations that, applied to
// rows and columns respectively, group the matrix into diagonal blocks
// with all off-diagonal coupling above the block diagonal.
//
// The pipeline, leaves first:
//
//	Sparsity(M)
//	  -> adjacency.BuildRowAdjacency        row -> columns
//	  -> matching.MaximumMatching           row <-> col bijection
//	  -> adjacency.BuildRowDependencyGraph   row -> row, via matching
//	  -> scc.Tarjan + scc.Condensation       components + condensation DAG
//	  -> ordering.TopoSortWithTiebreak       component order
//	  -> ordering.DeriveRowOrder/DeriveColOrder
//	  -> permutation.SequenceFromOrder       swap sequences Pr, Pc
//
// Each stage consumes only the previous stage's output plus, where noted,
// the original sparsity pattern, matching the layering in the pattern,
// adjacency, matching, scc, ordering and permutation packages.
package btf

import (
	"context"
	"fmt"

	"github.com/bcolloran/nalgebra-block-triangularization/adjacency"
	"github.com/bcolloran/nalgebra-block-triangularization/matching"
	"github.com/bcolloran/nalgebra-block-triangularization/ordering"
	"github.com/bcolloran/nalgebra-block-triangularization/pattern"
	"github.com/bcolloran/nalgebra-block-triangularization/permutation"
	"github.com/bcolloran/nalgebra-block-triangularization/scc"
)

// Options configures a decomposition run. The zero value is the default:
// silent, non-cancellable.
type Options struct {
	verbose bool
	ctx     context.Context
}

// Option mutates Options; see WithVerbose and WithCancelContext.
type Option func(*Options)

// WithVerbose enables fmt.Printf progress lines at the matching and SCC
// phases, mirroring the teacher's FlowOptions.Verbose.
func WithVerbose() Option {
	return func(o *Options) { o.verbose = true }
}

// WithCancelContext lets a caller abort a long-running decomposition
// between the matching phase's BFS/DFS rounds. It is forwarded verbatim to
// matching.MaximumMatching; if the context is done once matching returns,
// UpperBlockTriangularStructure returns the context's error.
func WithCancelContext(ctx context.Context) Option {
	return func(o *Options) { o.ctx = ctx }
}

func defaultOptions() Options {
	return Options{ctx: context.Background()}
}

// UpperTriangularPermutations runs the full decomposition pipeline and
// returns the row and column permutation sequences (Pr, Pc) as swap
// sequences over the matched subset, ready for a host adapter (see
// btfmat) to apply to a concrete matrix type.
func UpperTriangularPermutations[T any](src pattern.Source[T], isZero pattern.IsZeroFunc[T], opts ...Option) ([]permutation.Transposition, []permutation.Transposition, error) {
	structure, err := UpperBlockTriangularStructure(src, isZero, opts...)
	if err != nil {
		return nil, nil, err
	}

	rowSwaps, err := permutation.SequenceFromOrder(structure.RowOrder)
	if err != nil {
		return nil, nil, fmt.Errorf("btf: row order: %w", err)
	}
	colSwaps, err := permutation.SequenceFromOrder(structure.ColOrder)
	if err != nil {
		return nil, nil, fmt.Errorf("btf: col order: %w", err)
	}

	return rowSwaps, colSwaps, nil
}

// UpperBlockTriangularStructure runs the full decomposition pipeline and
// returns the diagnostic Structure record: matching size, block sizes in
// topological order, matched row/column orders, and the row->component
// map.
func UpperBlockTriangularStructure[T any](src pattern.Source[T], isZero pattern.IsZeroFunc[T], opts ...Option) (pattern.Structure, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rows, cols := src.Rows(), src.Cols()
	if rows == 0 || cols == 0 {
		return pattern.Structure{}, nil
	}

	rowAdj := adjacency.BuildRowAdjacency(src, isZero)

	if o.verbose {
		fmt.Printf("btf: running maximum matching on %d rows x %d cols\n", rows, cols)
	}
	m := matching.MaximumMatching(rowAdj, cols, matching.WithCancelContext(o.ctx))
	if o.ctx != nil {
		if err := o.ctx.Err(); err != nil {
			return pattern.Structure{}, fmt.Errorf("btf: matching: %w", err)
		}
	}

	if m.Size == 0 {
		return pattern.Structure{MatchingSize: 0}, nil
	}

	depGraph := adjacency.BuildRowDependencyGraph(rowAdj, m.ColToRow)

	if o.verbose {
		fmt.Printf("btf: running Tarjan on %d rows\n", rows)
	}
	componentOf, componentMembers := scc.Tarjan(depGraph)
	condensation := scc.Condensation(depGraph, componentOf, len(componentMembers))

	// Tie-break sizing uses the full (matched + unmatched) component size,
	// matching what Tarjan actually partitioned; unmatched rows are
	// filtered out only once the final row order is assembled, since
	// spec §6 exposes orders over the matched subset only.
	fullBlockSizes := make([]int, len(componentMembers))
	for c, members := range componentMembers {
		fullBlockSizes[c] = len(members)
	}

	componentOrder := ordering.TopoSortWithTiebreak(condensation, fullBlockSizes)
	rowOrder := ordering.DeriveRowOrder(componentOrder, componentMembers)
	rowOrder = dropUnmatched(rowOrder, m.RowToCol)
	colOrder := ordering.DeriveColOrder(rowOrder, m.RowToCol)

	orderedBlockSizes := make([]int, 0, len(componentOrder))
	for _, c := range componentOrder {
		matchedInBlock := 0
		for _, row := range componentMembers[c] {
			if m.RowToCol[row] != pattern.NoneIndex {
				matchedInBlock++
			}
		}
		if matchedInBlock > 0 {
			orderedBlockSizes = append(orderedBlockSizes, matchedInBlock)
		}
	}

	componentOfRow := make([]int, rows)
	for i := range componentOfRow {
		componentOfRow[i] = pattern.NoneIndex
	}
	for row, c := range componentOf {
		componentOfRow[row] = c
	}

	return pattern.Structure{
		MatchingSize:   m.Size,
		BlockSizes:     orderedBlockSizes,
		RowOrder:       rowOrder,
		ColOrder:       colOrder,
		ComponentOfRow: componentOfRow,
	}, nil
}

// dropUnmatched filters out rows that matching left unmatched: scc.Tarjan
// runs over the dependency graph, which is defined on every row index, but
// the emitted row order (spec §6) covers only the matched subset.
func dropUnmatched(rowOrder []int, rowToCol []int) []int {
	out := make([]int, 0, len(rowOrder))
	for _, r := range rowOrder {
		if rowToCol[r] != pattern.NoneIndex {
			out = append(out, r)
		}
	}

	return out
}

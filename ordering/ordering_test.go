package ordering_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bcolloran/nalgebra-block-triangularization/ordering"
)

// TestTopoSortWithTiebreak_Empty covers the empty condensation.
func TestTopoSortWithTiebreak_Empty(t *testing.T) {
	order := ordering.TopoSortWithTiebreak(nil, nil)
	assert.Empty(t, order)
}

// TestTopoSortWithTiebreak_PrefersSmallBlocks checks that among two
// in-degree-zero components, the smaller block is emitted first.
func TestTopoSortWithTiebreak_PrefersSmallBlocks(t *testing.T) {
	// Two independent components, no edges between them; component 0 has
	// block size 3, component 1 has block size 1.
	condensation := [][]int{{}, {}}
	blockSizes := []int{3, 1}
	order := ordering.TopoSortWithTiebreak(condensation, blockSizes)
	assert.Equal(t, []int{1, 0}, order)
}

// TestTopoSortWithTiebreak_TiesBreakByID checks that equal block sizes
// fall back to ascending component id.
func TestTopoSortWithTiebreak_TiesBreakByID(t *testing.T) {
	condensation := [][]int{{}, {}, {}}
	blockSizes := []int{2, 2, 2}
	order := ordering.TopoSortWithTiebreak(condensation, blockSizes)
	assert.Equal(t, []int{0, 1, 2}, order)
}

// TestTopoSortWithTiebreak_RespectsEdges checks that a dependency edge is
// honored even when it conflicts with the size tie-break: the successor
// component cannot be emitted until its predecessor is.
func TestTopoSortWithTiebreak_RespectsEdges(t *testing.T) {
	// component 0 (size 5) -> component 1 (size 1): 1 would be preferred by
	// size alone, but must wait for 0.
	condensation := [][]int{{1}, {}}
	blockSizes := []int{5, 1}
	order := ordering.TopoSortWithTiebreak(condensation, blockSizes)
	assert.Equal(t, []int{0, 1}, order)
}

// TestTopoSortWithTiebreak_RespectsEdgesTransitively is a slightly larger
// diamond-shaped DAG: for every condensation edge u->v, the source
// component u is emitted before the target component v.
func TestTopoSortWithTiebreak_RespectsEdgesTransitively(t *testing.T) {
	// 0 -> 1, 0 -> 2, 1 -> 3, 2 -> 3
	condensation := [][]int{{1, 2}, {3}, {3}, {}}
	blockSizes := []int{1, 1, 1, 1}
	order := ordering.TopoSortWithTiebreak(condensation, blockSizes)
	pos := make(map[int]int, len(order))
	for i, c := range order {
		pos[c] = i
	}
	for u, succs := range condensation {
		for _, v := range succs {
			assert.Less(t, pos[u], pos[v])
		}
	}
}

// TestDeriveRowOrder_ConcatenatesInOrder checks that members are
// concatenated per componentOrder, preserving Tarjan's in-SCC emission
// order (no re-sorting).
func TestDeriveRowOrder_ConcatenatesInOrder(t *testing.T) {
	componentMembers := [][]int{{5, 2}, {0}, {7, 1, 3}}
	rowOrder := ordering.DeriveRowOrder([]int{1, 2, 0}, componentMembers)
	assert.Equal(t, []int{0, 7, 1, 3, 5, 2}, rowOrder)
}

// TestDeriveColOrder_MatchesRowToCol checks the col order is exactly the
// matched column for each row, in row order.
func TestDeriveColOrder_MatchesRowToCol(t *testing.T) {
	rowToCol := []int{2, 0, 1, 3}
	colOrder := ordering.DeriveColOrder([]int{3, 1, 0, 2}, rowToCol)
	assert.Equal(t, []int{3, 0, 2, 1}, colOrder)
}

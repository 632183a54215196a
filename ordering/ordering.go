// Package ordering turns the SCC condensation into a deterministic
// topological order of components, and derives the final row/column
// orders from it.
//
// TopoSortWithTiebreak uses Kahn's algorithm driven by a container/heap
// priority queue keyed by (blockSize, componentID) ascending, in the same
// five-method Len/Less/Swap/Push/Pop shape the teacher's dijkstra package
// uses for its own priority queue.
package ordering

import (
	"container/heap"
)

// TopoSortWithTiebreak produces a topological order of component ids
// [0, len(condensation)) that prefers small blocks first among otherwise
// incomparable components. If the priority queue empties before every
// component is emitted -- which can only happen if condensation contained
// a cycle, impossible for a correctly built condensation -- the order
// falls back to the identity permutation so downstream stages still
// receive a valid permutation of components.
func TopoSortWithTiebreak(condensation [][]int, blockSizes []int) []int {
	n := len(condensation)

	indeg := make([]int, n)
	for _, succs := range condensation {
		for _, v := range succs {
			indeg[v]++
		}
	}

	pq := make(componentPQ, 0, n)
	for c := 0; c < n; c++ {
		if indeg[c] == 0 {
			pq = append(pq, componentItem{size: blockSizes[c], id: c})
		}
	}
	heap.Init(&pq)

	order := make([]int, 0, n)
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(componentItem)
		order = append(order, item.id)
		for _, v := range condensation[item.id] {
			indeg[v]--
			if indeg[v] == 0 {
				heap.Push(&pq, componentItem{size: blockSizes[v], id: v})
			}
		}
	}

	if len(order) != n {
		// Defensive fallback per spec §4.4: a correctly built condensation
		// is always acyclic, so this branch is unreachable in practice.
		order = make([]int, n)
		for i := range order {
			order[i] = i
		}
	}

	return order
}

// DeriveRowOrder concatenates componentMembers[c] for c in componentOrder,
// preserving the in-SCC emission order Tarjan produced.
func DeriveRowOrder(componentOrder []int, componentMembers [][]int) []int {
	total := 0
	for _, c := range componentOrder {
		total += len(componentMembers[c])
	}
	rowOrder := make([]int, 0, total)
	for _, c := range componentOrder {
		rowOrder = append(rowOrder, componentMembers[c]...)
	}

	return rowOrder
}

// DeriveColOrder emits, for each row in rowOrder, the column it is matched
// to. rowOrder is expected to contain only matched rows, so every lookup
// succeeds; the returned slice has the same length as rowOrder.
func DeriveColOrder(rowOrder []int, rowToCol []int) []int {
	colOrder := make([]int, len(rowOrder))
	for i, r := range rowOrder {
		colOrder[i] = rowToCol[r]
	}

	return colOrder
}

// componentItem is one entry of the tie-break priority queue: a component
// id keyed by (size, id) ascending.
type componentItem struct {
	size int
	id   int
}

// componentPQ is a min-heap of componentItem ordered by (size, id)
// ascending, matching dijkstra.nodePQ's Len/Less/Swap/Push/Pop shape.
type componentPQ []componentItem

func (pq componentPQ) Len() int { return len(pq) }

func (pq componentPQ) Less(i, j int) bool {
	if pq[i].size != pq[j].size {
		return pq[i].size < pq[j].size
	}

	return pq[i].id < pq[j].id
}

func (pq componentPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *componentPQ) Push(x interface{}) { *pq = append(*pq, x.(componentItem)) }

func (pq *componentPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

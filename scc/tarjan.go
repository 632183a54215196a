// Package scc discovers strongly connected components of a directed graph
// via an iterative Tarjan (explicit frame stack, no recursion) and builds
// the resulting condensation DAG.
//
// Complexity: Tarjan is O(V + E); Condensation is O(V + E) plus an
// O(d log d) sort per source component for de-duplication.
package scc

import "sort"

// frame is one entry of the explicit work stack replacing a recursive
// strongconnect(v) call: it pairs a node with an iterator into its
// successor list, so the traversal can be suspended and resumed exactly
// where a recursive call would have been.
type frame struct {
	node int
	next int // index into graph[node] of the next successor to examine
}

// Tarjan computes the strongly connected components of graph (an adjacency
// list on nodes [0, len(graph))). It returns componentOf, mapping each node
// to its component id, and componentMembers, the members of each component
// in the order they were popped off the open stack (reverse discovery
// order). Component ids are assigned in the order SCCs are
// popped off the open stack, which is reverse topological order of the
// condensation: for an edge u -> v with componentOf[u] != componentOf[v],
// componentOf[u] > componentOf[v].
func Tarjan(graph [][]int) (componentOf []int, componentMembers [][]int) {
	n := len(graph)
	componentOf = make([]int, n)
	for i := range componentOf {
		componentOf[i] = -1
	}
	if n == 0 {
		return componentOf, nil
	}

	index := make([]int, n)
	lowlink := make([]int, n)
	onStack := make([]bool, n)
	for i := range index {
		index[i] = -1
	}

	var open []int // the "open" stack: nodes visited but not yet assigned to an SCC
	counter := 0

	for root := 0; root < n; root++ {
		if index[root] != -1 {
			continue
		}

		// Explicit work stack of (node, successor-iterator) frames,
		// standing in for the recursive strongconnect(root) call.
		work := []frame{{node: root, next: 0}}
		index[root] = counter
		lowlink[root] = counter
		counter++
		open = append(open, root)
		onStack[root] = true

		for len(work) > 0 {
			top := &work[len(work)-1]
			v := top.node

			if top.next < len(graph[v]) {
				w := graph[v][top.next]
				top.next++

				switch {
				case index[w] == -1:
					// Descend: push a new frame for w, as a recursive call would.
					index[w] = counter
					lowlink[w] = counter
					counter++
					open = append(open, w)
					onStack[w] = true
					work = append(work, frame{node: w, next: 0})
				case onStack[w]:
					if index[w] < lowlink[v] {
						lowlink[v] = index[w]
					}
				}

				continue
			}

			// All successors of v examined: pop v's frame. If v is the
			// root of an SCC, pop the open stack down to and including v.
			work = work[:len(work)-1]
			if len(work) > 0 {
				parent := work[len(work)-1].node
				if lowlink[v] < lowlink[parent] {
					lowlink[parent] = lowlink[v]
				}
			}

			if lowlink[v] == index[v] {
				var members []int
				for {
					w := open[len(open)-1]
					open = open[:len(open)-1]
					onStack[w] = false
					members = append(members, w)
					if w == v {
						break
					}
				}
				cid := len(componentMembers)
				for _, w := range members {
					componentOf[w] = cid
				}
				componentMembers = append(componentMembers, members)
			}
		}
	}

	return componentOf, componentMembers
}

// Condensation builds the DAG on component ids induced by graph and
// componentOf: for each source component c, it collects the set of target
// components reachable via a single cross-component edge, sorted and
// de-duplicated. The result is acyclic by construction.
func Condensation(graph [][]int, componentOf []int, numComponents int) [][]int {
	dag := make([][]int, numComponents)
	for u, succs := range graph {
		cu := componentOf[u]
		for _, v := range succs {
			cv := componentOf[v]
			if cu != cv {
				dag[cu] = append(dag[cu], cv)
			}
		}
	}
	for c := range dag {
		dag[c] = sortDedup(dag[c])
	}

	return dag
}

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

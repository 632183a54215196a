// Package btf computes block upper-triangular decompositions of sparse
// matrix sparsity patterns: given a matrix's nonzero locations, it
// produces row and column permutations that group the matrix into
// diagonal blocks of mutually-dependent rows/columns, with all coupling
// between blocks pointing strictly one way.
//
// The library is a pure, deterministic, in-memory function of the input
// pattern. It has no knowledge of a host matrix type beyond the
// pattern.Source[T] contract (shape plus a zero predicate) and emits plain
// integer orders and transposition sequences; converting those into a
// specific linear-algebra library's permutation object is left to the
// caller.
//
// Under the hood the pipeline is organized as a chain of small packages,
// each owning one stage:
//
//	pattern/     — shared types: Source, Matching, Structure, sentinel errors
//	adjacency/   — row-to-column incidence, and the row-to-row dependency graph
//	matching/    — Hopcroft-Karp maximum bipartite matching
//	scc/         — iterative Tarjan strongly-connected-components + condensation
//	ordering/    — deterministic topological order with a size-then-id tie-break
//	permutation/ — target order -> sequence of pairwise swaps
//	btfmat/      — an in-memory dense matrix, for exercising the pipeline in tests
package btf

// Package permutation converts a target order (new position -> original
// index) into the sequence of pairwise swaps that realizes it when applied
// left-to-right starting from the identity.
//
// This is the boundary described in the design notes: the host library's
// own permutation representation (e.g. nalgebra's PermutationSequence) is
// out of scope; Transposition is this core's neutral, dependency-free
// output type that any adapter can translate.
package permutation

import "github.com/bcolloran/nalgebra-block-triangularization/pattern"

// Transposition is one swap(p, q) applied during the realization of a
// target permutation.
type Transposition struct {
	P, Q int
}

// SequenceFromOrder converts order (order[p] == original index ending up
// at position p) into the sequence of transpositions that realize it,
// starting from the identity. order must be a permutation of
// [0, len(order)); violating this is a programmer error and returns
// pattern.ErrNotPermutation rather than panicking or silently corrupting
// output.
func SequenceFromOrder(order []int) ([]Transposition, error) {
	n := len(order)
	if !isValidPermutation(order) {
		return nil, pattern.ErrNotPermutation
	}

	current := make([]int, n) // position -> element currently there
	posOf := make([]int, n)   // element -> its current position
	for i := 0; i < n; i++ {
		current[i] = i
		posOf[i] = i
	}

	var swaps []Transposition
	for p := 0; p < n; p++ {
		desired := order[p]
		q := posOf[desired]
		if p == q {
			continue
		}
		swaps = append(swaps, Transposition{P: p, Q: q})

		a, b := current[p], current[q]
		current[p], current[q] = current[q], current[p]
		posOf[a], posOf[b] = q, p
	}

	return swaps, nil
}

// isValidPermutation reports whether order contains every index in
// [0, len(order)) exactly once.
func isValidPermutation(order []int) bool {
	n := len(order)
	seen := make([]bool, n)
	for _, x := range order {
		if x < 0 || x >= n || seen[x] {
			return false
		}
		seen[x] = true
	}

	return true
}

// Package btfmat adapts the core's integer row/column orders to a concrete
// in-memory dense matrix, so the decomposition can be checked end-to-end --
// the same thing original_source/src/lib.rs's doc example does against an
// nalgebra matrix. This is test/demonstration infrastructure only: the
// decomposition core (pattern, adjacency, matching, scc, ordering,
// permutation, btf) never imports this package, matching spec §1's
// boundary that the host permutation/matrix representation is an external
// collaborator's concern.
package btfmat

import "github.com/bcolloran/nalgebra-block-triangularization/permutation"

// ApplyRowSwaps returns a clone of src with rows swapped pairwise per
// swaps, applied left-to-right -- the same replay semantics
// permutation.SequenceFromOrder's swaps are defined by.
func ApplyRowSwaps(src Matrix, swaps []permutation.Transposition) (Matrix, error) {
	dst, err := cloneToDense(src)
	if err != nil {
		return nil, err
	}
	for _, s := range swaps {
		if err := swapRows(dst, s.P, s.Q); err != nil {
			return nil, err
		}
	}

	return dst, nil
}

// ApplyColSwaps returns a clone of src with columns swapped pairwise per
// swaps, applied left-to-right.
func ApplyColSwaps(src Matrix, swaps []permutation.Transposition) (Matrix, error) {
	dst, err := cloneToDense(src)
	if err != nil {
		return nil, err
	}
	for _, s := range swaps {
		if err := swapCols(dst, s.P, s.Q); err != nil {
			return nil, err
		}
	}

	return dst, nil
}

// UndoRowSwaps reverses ApplyRowSwaps: each transposition is its own
// inverse, so replaying the same sequence in reverse order recovers the
// original arrangement.
func UndoRowSwaps(src Matrix, swaps []permutation.Transposition) (Matrix, error) {
	return ApplyRowSwaps(src, reversed(swaps))
}

// UndoColSwaps reverses ApplyColSwaps.
func UndoColSwaps(src Matrix, swaps []permutation.Transposition) (Matrix, error) {
	return ApplyColSwaps(src, reversed(swaps))
}

func reversed(swaps []permutation.Transposition) []permutation.Transposition {
	out := make([]permutation.Transposition, len(swaps))
	for i, s := range swaps {
		out[len(swaps)-1-i] = s
	}

	return out
}

func cloneToDense(src Matrix) (*Dense, error) {
	dst, err := NewDense(src.Rows(), src.Cols())
	if err != nil {
		return nil, err
	}
	for r := 0; r < src.Rows(); r++ {
		for c := 0; c < src.Cols(); c++ {
			v, err := src.At(r, c)
			if err != nil {
				return nil, err
			}
			if err := dst.Set(r, c, v); err != nil {
				return nil, err
			}
		}
	}

	return dst, nil
}

func swapRows(m *Dense, p, q int) error {
	if p == q {
		return nil
	}
	for c := 0; c < m.Cols(); c++ {
		pv, err := m.At(p, c)
		if err != nil {
			return err
		}
		qv, err := m.At(q, c)
		if err != nil {
			return err
		}
		if err := m.Set(p, c, qv); err != nil {
			return err
		}
		if err := m.Set(q, c, pv); err != nil {
			return err
		}
	}

	return nil
}

func swapCols(m *Dense, p, q int) error {
	if p == q {
		return nil
	}
	for r := 0; r < m.Rows(); r++ {
		rp, err := m.At(r, p)
		if err != nil {
			return err
		}
		rq, err := m.At(r, q)
		if err != nil {
			return err
		}
		if err := m.Set(r, p, rq); err != nil {
			return err
		}
		if err := m.Set(r, q, rp); err != nil {
			return err
		}
	}

	return nil
}

// ApplyRowPermutation returns a new matrix whose row i is src's row
// rowOrder[i], for every i in [0, len(rowOrder)). rowOrder need not cover
// every row of src; rows of src not listed in rowOrder are dropped.
func ApplyRowPermutation(src Matrix, rowOrder []int) (Matrix, error) {
	cols := src.Cols()
	dst, err := NewDense(len(rowOrder), cols)
	if err != nil {
		return nil, err
	}
	for newRow, oldRow := range rowOrder {
		for c := 0; c < cols; c++ {
			v, err := src.At(oldRow, c)
			if err != nil {
				return nil, err
			}
			if err := dst.Set(newRow, c, v); err != nil {
				return nil, err
			}
		}
	}

	return dst, nil
}

// ApplyColPermutation returns a new matrix whose column j is src's column
// colOrder[j], for every j in [0, len(colOrder)).
func ApplyColPermutation(src Matrix, colOrder []int) (Matrix, error) {
	rows := src.Rows()
	dst, err := NewDense(rows, len(colOrder))
	if err != nil {
		return nil, err
	}
	for r := 0; r < rows; r++ {
		for newCol, oldCol := range colOrder {
			v, err := src.At(r, oldCol)
			if err != nil {
				return nil, err
			}
			if err := dst.Set(r, newCol, v); err != nil {
				return nil, err
			}
		}
	}

	return dst, nil
}

// IsUpperBlockTriangular reports whether every nonzero of m lies on or
// above the block diagonal induced by blockSizes (spec §8 property 6):
// for every nonzero at (r, c), blockOf(r) <= blockOf(c).
func IsUpperBlockTriangular(m Matrix, blockSizes []int) (bool, error) {
	blockOf := make([]int, 0, m.Rows())
	for b, size := range blockSizes {
		for k := 0; k < size; k++ {
			blockOf = append(blockOf, b)
		}
	}

	rows, cols := m.Rows(), m.Cols()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v, err := m.At(r, c)
			if err != nil {
				return false, err
			}
			if v == 0 {
				continue
			}
			if r >= len(blockOf) || c >= len(blockOf) {
				continue
			}
			if blockOf[r] > blockOf[c] {
				return false, nil
			}
		}
	}

	return true, nil
}

package btfmat

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for Dense, in the teacher's "pkg: message" convention.
var (
	ErrInvalidDimensions = errors.New("btfmat: dimensions must be > 0")
	ErrOutOfRange        = errors.New("btfmat: index out of range")
	ErrNaNInf            = errors.New("btfmat: NaN or Inf encountered")
)

// Matrix is a two-dimensional mutable array of float64 values. Dense is its
// only implementation here; the interface exists so ApplyRowPermutation and
// friends stay agnostic to storage, matching the host's own pattern of
// coding against Matrix rather than *Dense.
type Matrix interface {
	Rows() int
	Cols() int
	At(i, j int) (float64, error)
	Set(i, j int, v float64) error
}

// Dense is a row-major dense matrix with bounds- and finiteness-checked
// accessors. It exists only to let the decomposition core be exercised
// end-to-end against a concrete numeric matrix in tests; the core itself
// never depends on this type.
type Dense struct {
	r, c int
	data []float64
}

var _ Matrix = (*Dense)(nil)

// NewDense allocates a zero-filled r x c matrix.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

func (m *Dense) Rows() int { return m.r }
func (m *Dense) Cols() int { return m.c }

func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col), or ErrOutOfRange for bad indices.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, fmt.Errorf("Dense.At(%d,%d): %w", row, col, err)
	}

	return m.data[off], nil
}

// Set assigns v at (row, col). Rejects NaN/Inf so test fixtures stay finite.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return fmt.Errorf("Dense.Set(%d,%d): %w", row, col, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("Dense.Set(%d,%d): %w", row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

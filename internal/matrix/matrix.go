// Package matrix implements the dense 2-D float64 container used by the
// network engine.
//
// A Matrix is addressed as width (columns) by height (rows) and stored
// row-major in a single flat buffer:
//   - len(Data()) == Width()*Height() at all times
//   - row r is Data()[r*Width() : (r+1)*Width()]
//
// Matrices are mutated in place. Clone returns an independent copy; nothing
// in this package shares buffers between matrices.
package matrix

import (
	"fmt"
	"math"

	"github.com/born-ml/ffnet/internal/random"
)

// Matrix is a dense row-major matrix of float64 values.
//
// Example:
//
//	m, err := matrix.FromSlice(3, 2, []float64{1, 2, 3, 4, 5, 6})
//	// {{1, 2, 3},
//	//  {4, 5, 6}}
type Matrix struct {
	width  int
	height int
	data   []float64
}

// New creates a zero-filled matrix with the given width (columns) and
// height (rows). Zero-sized matrices are allowed.
func New(width, height int) *Matrix {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("matrix.New: negative shape %dx%d", width, height))
	}
	return &Matrix{
		width:  width,
		height: height,
		data:   make([]float64, width*height),
	}
}

// FromSlice creates a matrix from row-major values.
// The slice is copied into the matrix's own buffer.
//
// Returns an error wrapping ErrShapeMismatch if len(values) != width*height.
func FromSlice(width, height int, values []float64) (*Matrix, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("shape %dx%d is negative: %w", width, height, ErrShapeMismatch)
	}
	if len(values) != width*height {
		return nil, fmt.Errorf("shape %dx%d requires %d elements, but got %d: %w",
			width, height, width*height, len(values), ErrShapeMismatch)
	}

	m := New(width, height)
	copy(m.data, values)
	return m, nil
}

// Random creates a matrix whose entries are drawn uniformly from [-1, 1)
// using rng: value = draw/2^64*2 - 1.
func Random(width, height int, rng *random.Generator) *Matrix {
	m := New(width, height)
	for i := range m.data {
		m.data[i] = float64(rng.Uint64())/math.MaxUint64*2.0 - 1.0
	}
	return m
}

// Width returns the number of columns.
func (m *Matrix) Width() int {
	return m.width
}

// Height returns the number of rows.
func (m *Matrix) Height() int {
	return m.height
}

// Len returns the number of elements (Width()*Height()).
func (m *Matrix) Len() int {
	return len(m.data)
}

// Data returns the underlying row-major buffer.
//
// WARNING: the slice aliases the matrix; writes through it modify the matrix.
func (m *Matrix) Data() []float64 {
	return m.data
}

// SameShape reports whether m and other have identical width and height.
func (m *Matrix) SameShape(other *Matrix) bool {
	return m.width == other.width && m.height == other.height
}

// Row returns row index as a mutable view into the matrix.
//
// Returns an error wrapping ErrIndexOutOfRange if index is not in [0, Height()).
func (m *Matrix) Row(index int) ([]float64, error) {
	if index < 0 || index >= m.height {
		return nil, fmt.Errorf("row %d of %d: %w", index, m.height, ErrIndexOutOfRange)
	}
	return m.data[index*m.width : (index+1)*m.width : (index+1)*m.width], nil
}

// At returns the element at (row, col).
// Panics if either index is out of bounds.
func (m *Matrix) At(row, col int) float64 {
	return m.data[m.offset(row, col)]
}

// Set sets the element at (row, col).
// Panics if either index is out of bounds.
func (m *Matrix) Set(row, col int, value float64) {
	m.data[m.offset(row, col)] = value
}

func (m *Matrix) offset(row, col int) int {
	if row < 0 || row >= m.height || col < 0 || col >= m.width {
		panic(fmt.Sprintf("index (%d, %d) out of bounds for %dx%d matrix", row, col, m.width, m.height))
	}
	return row*m.width + col
}

// Fill sets every entry to value.
// Returns the matrix itself for method chaining.
func (m *Matrix) Fill(value float64) *Matrix {
	for i := range m.data {
		m.data[i] = value
	}
	return m
}

// Zero sets every entry to 0.
func (m *Matrix) Zero() *Matrix {
	clear(m.data)
	return m
}

// Clone creates a deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	c := New(m.width, m.height)
	copy(c.data, m.data)
	return c
}

// ToVector flattens the matrix row-major into a new slice.
func (m *Matrix) ToVector() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)
	return out
}

package matrix

import "gonum.org/v1/gonum/mat"

// Dense copies m into a gonum dense matrix of Height() rows and Width() columns.
// Returns nil for zero-sized matrices, which gonum cannot represent.
func (m *Matrix) Dense() *mat.Dense {
	if len(m.data) == 0 {
		return nil
	}
	return mat.NewDense(m.height, m.width, m.ToVector())
}

// FromDense copies any gonum matrix into a new Matrix.
func FromDense(d mat.Matrix) *Matrix {
	rows, cols := d.Dims()
	m := New(cols, rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			m.data[y*cols+x] = d.At(y, x)
		}
	}
	return m
}

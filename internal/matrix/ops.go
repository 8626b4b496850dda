package matrix

import "fmt"

// Dot accumulates the matrix product lhs·rhs into m.
//
// Shapes (width x height):
//   - lhs: k x n
//   - rhs: p x k
//   - m:   p x n
//
// m is NOT cleared first: m[y][x] += Σ_i lhs[y][i]*rhs[i][x]. Call Zero
// beforehand if a fresh product is wanted.
//
// Returns an error wrapping ErrShapeMismatch on incompatible shapes.
func (m *Matrix) Dot(lhs, rhs *Matrix) error {
	if lhs.width != rhs.height {
		return fmt.Errorf("dot: lhs width %d != rhs height %d: %w", lhs.width, rhs.height, ErrShapeMismatch)
	}
	if m.width != rhs.width || m.height != lhs.height {
		return fmt.Errorf("dot: output is %dx%d, expected %dx%d: %w",
			m.width, m.height, rhs.width, lhs.height, ErrShapeMismatch)
	}

	k := lhs.width
	for y := 0; y < m.height; y++ {
		lrow := lhs.data[y*k : (y+1)*k]
		out := m.data[y*m.width : (y+1)*m.width]
		for x := range out {
			sum := out[x]
			for i, l := range lrow {
				sum += l * rhs.data[i*rhs.width+x]
			}
			out[x] = sum
		}
	}
	return nil
}

// AddAssign adds other to m elementwise, in place.
//
// Returns an error wrapping ErrShapeMismatch unless shapes are identical.
func (m *Matrix) AddAssign(other *Matrix) error {
	if !m.SameShape(other) {
		return fmt.Errorf("add: %dx%d vs %dx%d: %w", m.width, m.height, other.width, other.height, ErrShapeMismatch)
	}
	for i, v := range other.data {
		m.data[i] += v
	}
	return nil
}

// AddScaled performs m += alpha*other elementwise, in place.
//
// Returns an error wrapping ErrShapeMismatch unless shapes are identical.
func (m *Matrix) AddScaled(alpha float64, other *Matrix) error {
	if !m.SameShape(other) {
		return fmt.Errorf("add scaled: %dx%d vs %dx%d: %w", m.width, m.height, other.width, other.height, ErrShapeMismatch)
	}
	for i, v := range other.data {
		m.data[i] += alpha * v
	}
	return nil
}

// Map applies fn to every entry in place.
// Returns the matrix itself for method chaining.
func (m *Matrix) Map(fn func(float64) float64) *Matrix {
	for i, v := range m.data {
		m.data[i] = fn(v)
	}
	return m
}

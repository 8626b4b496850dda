package matrix

import "errors"

var (
	// ErrShapeMismatch is returned when operand shapes are incompatible, e.g.
	// AddAssign on different shapes or Dot where lhs.Width() != rhs.Height().
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrIndexOutOfRange indicates a row index outside [0, Height()).
	ErrIndexOutOfRange = errors.New("matrix: index out of range")
)

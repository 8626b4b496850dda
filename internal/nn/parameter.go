package nn

import (
	"github.com/born-ml/ffnet/internal/matrix"
)

// Parameter is a trainable matrix paired with its gradient accumulator.
//
// The gradient always has the same shape as the value. It is summed over
// every training sample of an epoch and cleared by ZeroGrad.
type Parameter struct {
	name  string
	value *matrix.Matrix
	grad  *matrix.Matrix
}

// NewParameter wraps value and allocates a zeroed gradient of the same shape.
func NewParameter(name string, value *matrix.Matrix) *Parameter {
	return &Parameter{
		name:  name,
		value: value,
		grad:  matrix.New(value.Width(), value.Height()),
	}
}

// Name returns the parameter name (e.g. "1.weight").
func (p *Parameter) Name() string {
	return p.name
}

// Value returns the parameter matrix.
func (p *Parameter) Value() *matrix.Matrix {
	return p.value
}

// Grad returns the gradient accumulator.
func (p *Parameter) Grad() *matrix.Matrix {
	return p.grad
}

// ZeroGrad clears the gradient accumulator.
func (p *Parameter) ZeroGrad() {
	p.grad.Zero()
}

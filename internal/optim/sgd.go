package optim

import (
	"fmt"
)

// SGD implements gradient descent without momentum.
//
// Update rule:
//
//	param = param - lr * gradient
//
// The gradient is used as accumulated, not averaged over samples.
type SGD struct {
	lr float64
}

// SGDConfig holds configuration for SGD.
type SGDConfig struct {
	LR float64 // Learning rate; zero makes Step a no-op update
}

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	return &SGD{lr: config.LR}
}

// Step performs a single update on every parameter.
//
// Returns an error wrapping matrix.ErrShapeMismatch if a gradient does not
// match its value's shape; parameters before the failing one are already
// updated.
func (s *SGD) Step(params []Param) error {
	for i, p := range params {
		if err := p.Value().AddScaled(-s.lr, p.Grad()); err != nil {
			return fmt.Errorf("sgd: parameter %d: %w", i, err)
		}
	}
	return nil
}

// ZeroGrad clears the gradients of params.
func (s *SGD) ZeroGrad(params []Param) {
	for _, p := range params {
		p.Grad().Zero()
	}
}

// LR returns the current learning rate.
func (s *SGD) LR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}

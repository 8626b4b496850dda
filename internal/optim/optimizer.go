// Package optim implements the parameter update step used by network
// training.
//
// Only plain gradient descent is provided:
//
//	value = value - lr * grad
//
// Gradients are expected to be accumulated by the caller before Step.
//
// Example usage:
//
//	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.01})
//	for epoch := 0; epoch < epochs; epoch++ {
//	    if err := net.ComputeGradients(); err != nil {
//	        return err
//	    }
//	    if err := sgd.Step(params); err != nil {
//	        return err
//	    }
//	}
package optim

import (
	"github.com/born-ml/ffnet/internal/matrix"
)

// Param is a trainable value with a gradient of the same shape.
type Param interface {
	Value() *matrix.Matrix
	Grad() *matrix.Matrix
}

// Optimizer updates parameters from their accumulated gradients.
type Optimizer interface {
	// Step applies one update to every parameter.
	Step(params []Param) error

	// ZeroGrad clears every parameter's gradient.
	ZeroGrad(params []Param)

	// LR returns the current learning rate.
	LR() float64
}

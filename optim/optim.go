// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/ffnet/internal/nn"
	"github.com/born-ml/ffnet/internal/optim"
)

// Optimizer updates parameters from their accumulated gradients.
type Optimizer = optim.Optimizer

// Param is a trainable value with a gradient of the same shape.
type Param = optim.Param

// SGD represents gradient descent without momentum.
type SGD = optim.SGD

// SGDConfig contains configuration for SGD.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.01})
func NewSGD(config SGDConfig) *SGD {
	return optim.NewSGD(config)
}

// Params converts network parameters to the optimizer's Param interface.
func Params(params []*nn.Parameter) []Param {
	out := make([]Param, len(params))
	for i, p := range params {
		out[i] = p
	}
	return out
}

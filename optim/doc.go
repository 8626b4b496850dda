// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the gradient-descent update step.
//
// # Overview
//
// SGD applies value -= lr * grad to every parameter. Gradients are summed
// over the whole training set by the network before each Step, so one Step
// is one epoch of full-batch gradient descent.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/ffnet/nn"
//	    "github.com/born-ml/ffnet/optim"
//	)
//
//	func train(net *nn.Network, epochs int) error {
//	    sgd := optim.NewSGD(optim.SGDConfig{LR: 0.01})
//	    params := optim.Params(net.Parameters())
//	    for epoch := 0; epoch < epochs; epoch++ {
//	        if err := net.ComputeGradients(); err != nil {
//	            return err
//	        }
//	        if err := sgd.Step(params); err != nil {
//	            return err
//	        }
//	    }
//	    return nil
//	}
//
// nn.Network.Learn runs exactly this loop.
package optim

// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the feed-forward network.
//
// # Overview
//
// This package contains:
//   - Network: ordered stack of fully connected layers plus a training set
//   - Layer: per-layer activations, parameters and error signals
//   - Activation: Identity, ReLU, LeakyReLU
//   - Parameter: a matrix paired with its gradient accumulator
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/ffnet/nn"
//	    "github.com/born-ml/ffnet/random"
//	)
//
//	func main() {
//	    net, _ := nn.NewNetwork(2, random.New(42))
//	    _ = net.AppendLayer(20, nn.ReLU)
//	    _ = net.AppendLayer(1, nn.Identity)
//
//	    _ = net.AddSample([]float64{0, 0}, []float64{0})
//	    _ = net.AddSample([]float64{0, 1}, []float64{1})
//	    _ = net.AddSample([]float64{1, 0}, []float64{1})
//	    _ = net.AddSample([]float64{1, 1}, []float64{1})
//
//	    _ = net.Learn(500, 0.01)
//
//	    _ = net.Run([]float64{1, 0})
//	    fmt.Println(net.Result())
//	}
//
// # Training
//
// Learn performs full-batch gradient descent: per epoch the gradients of all
// samples are summed, then one update is applied. The output error signal is
// y - target, which is the exact squared-error gradient only for an
// Identity output layer.
//
// # Errors
//
// Shape violations wrap matrix.ErrShapeMismatch. They indicate a
// construction mistake by the caller; the failing operation stops at the
// first violation and returns it.
package nn

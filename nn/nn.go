// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/ffnet/internal/nn"
	"github.com/born-ml/ffnet/random"
)

// Network is an ordered stack of layers plus its training set.
type Network = nn.Network

// Layer is one stage of a Network.
type Layer = nn.Layer

// Parameter is a trainable matrix paired with its gradient accumulator.
type Parameter = nn.Parameter

// Activation selects a layer's elementwise function.
type Activation = nn.Activation

// Activations
const (
	Identity  = nn.Identity
	ReLU      = nn.ReLU
	LeakyReLU = nn.LeakyReLU
)

// Errors returned by network operations.
var (
	ErrInvalidLayer       = nn.ErrInvalidLayer
	ErrArchitectureFrozen = nn.ErrArchitectureFrozen
	ErrNoLayers           = nn.ErrNoLayers
	ErrInvalidEpochs      = nn.ErrInvalidEpochs
	ErrUnknownActivation  = nn.ErrUnknownActivation
)

// NewNetwork creates a network with an input layer of width inputs.
// A nil rng selects random.Default().
//
// Example:
//
//	net, err := nn.NewNetwork(2, random.New(42))
func NewNetwork(inputs int, rng *random.Generator) (*Network, error) {
	return nn.NewNetwork(inputs, rng)
}

// ParseActivation maps "identity", "relu" or "leaky_relu" to an Activation.
func ParseActivation(name string) (Activation, error) {
	return nn.ParseActivation(name)
}

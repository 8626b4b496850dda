// Package nn implements the layered feed-forward network: construction,
// forward inference, backpropagation and full-batch gradient descent.
//
// A Network is built in two phases:
//   - architecture: NewNetwork fixes the input width, AppendLayer stacks
//     fully connected layers, each with its own Activation
//   - use: AddSample, Learn, Run and Result
//
// The first Run or Learn freezes the architecture.
//
// Example:
//
//	net, _ := nn.NewNetwork(2, random.New(42))
//	_ = net.AppendLayer(20, nn.ReLU)
//	_ = net.AppendLayer(1, nn.Identity)
//	_ = net.AddSample([]float64{0, 1}, []float64{1})
//	_ = net.Learn(500, 0.01)
//	_ = net.Run([]float64{0, 1})
//	fmt.Println(net.Result())
//
// A Network is not safe for concurrent use.
package nn

import (
	"fmt"

	"github.com/born-ml/ffnet/internal/matrix"
	"github.com/born-ml/ffnet/internal/random"
)

// sample is one (input, target) training pair.
type sample struct {
	input  []float64
	target []float64
}

// Network is an ordered stack of layers plus its training set.
// Layer 0 is the input layer; the last layer is the output layer.
type Network struct {
	layers  []*Layer
	samples []sample
	rng     *random.Generator
	frozen  bool
}

// NewNetwork creates a network with an input layer of width inputs.
//
// rng initialises the weights and biases of appended layers; nil selects
// random.Default().
func NewNetwork(inputs int, rng *random.Generator) (*Network, error) {
	if inputs <= 0 {
		return nil, fmt.Errorf("input width %d: %w", inputs, ErrInvalidLayer)
	}
	if rng == nil {
		rng = random.Default()
	}
	return &Network{
		layers: []*Layer{newInputLayer(inputs)},
		rng:    rng,
	}, nil
}

// AppendLayer stacks a fully connected layer of the given width on top of
// the current output layer. Its weights and biases are drawn uniformly from
// [-1, 1).
func (n *Network) AppendLayer(neurons int, act Activation) error {
	if n.frozen {
		return ErrArchitectureFrozen
	}
	if neurons <= 0 {
		return fmt.Errorf("layer width %d: %w", neurons, ErrInvalidLayer)
	}
	if !act.Valid() {
		return fmt.Errorf("%v: %w", act, ErrInvalidLayer)
	}

	prev := n.layers[len(n.layers)-1]
	n.layers = append(n.layers, newLayer(len(n.layers), prev.neurons, neurons, act, n.rng))
	return nil
}

// AddSample appends a training pair. Both slices are copied.
//
// The input length is checked here. The target length is checked against
// the output layer by ComputeGradients, since layers may still be appended.
func (n *Network) AddSample(input, target []float64) error {
	if len(input) != n.layers[0].neurons {
		return fmt.Errorf("sample input has %d values, network expects %d: %w",
			len(input), n.layers[0].neurons, matrix.ErrShapeMismatch)
	}
	n.samples = append(n.samples, sample{
		input:  append([]float64(nil), input...),
		target: append([]float64(nil), target...),
	})
	return nil
}

// NumSamples returns the number of training pairs.
func (n *Network) NumSamples() int {
	return len(n.samples)
}

// NumLayers returns the number of layers, including the input layer.
func (n *Network) NumLayers() int {
	return len(n.layers)
}

// Layer returns layer index (0 is the input layer).
// Panics if index is out of bounds.
func (n *Network) Layer(index int) *Layer {
	if index < 0 || index >= len(n.layers) {
		panic(fmt.Sprintf("Network.Layer: index %d out of bounds (%d layers)", index, len(n.layers)))
	}
	return n.layers[index]
}

// Layers returns the layers in order. The slice is a copy; the layers are not.
func (n *Network) Layers() []*Layer {
	return append([]*Layer(nil), n.layers...)
}

// Parameters returns the weight and bias of every layer after the input
// layer, in layer order.
func (n *Network) Parameters() []*Parameter {
	params := make([]*Parameter, 0, 2*(len(n.layers)-1))
	for _, l := range n.layers[1:] {
		params = append(params, l.weight, l.bias)
	}
	return params
}

// Run performs an inference forward pass. Read the output with Result.
//
// Returns an error wrapping matrix.ErrShapeMismatch if len(input) differs
// from the input width.
func (n *Network) Run(input []float64) error {
	return n.forward(input, false)
}

// Result returns the output layer's values from the last forward pass.
func (n *Network) Result() []float64 {
	return n.layers[len(n.layers)-1].y.ToVector()
}

// forward loads input into layer 0 and evaluates every following layer in
// order. Each layer reads only its predecessor's output.
func (n *Network) forward(input []float64, training bool) error {
	in := n.layers[0]
	if len(input) != in.neurons {
		return fmt.Errorf("input has %d values, network expects %d: %w",
			len(input), in.neurons, matrix.ErrShapeMismatch)
	}
	n.frozen = true

	copy(in.y.Data(), input)

	for i := 1; i < len(n.layers); i++ {
		if err := n.layers[i].forward(n.layers[i-1], training); err != nil {
			return fmt.Errorf("layer %d: %w", i, err)
		}
	}
	return nil
}

package nn

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/ffnet/internal/matrix"
	"github.com/born-ml/ffnet/internal/optim"
)

// Learn trains the network with full-batch gradient descent.
//
// Each epoch sums the gradients of every sample (ComputeGradients) and then
// applies a single update, W -= learningRate*gradW and b -= learningRate*gradB.
// Zero epochs leave the network untouched.
//
// Any shape error aborts training; parameters keep the values of the last
// completed epoch.
func (n *Network) Learn(epochs int, learningRate float64) error {
	if epochs < 0 {
		return fmt.Errorf("%d epochs: %w", epochs, ErrInvalidEpochs)
	}
	if len(n.layers) < 2 {
		return ErrNoLayers
	}

	sgd := optim.NewSGD(optim.SGDConfig{LR: learningRate})
	params := n.optimParams()

	for epoch := 0; epoch < epochs; epoch++ {
		if err := n.ComputeGradients(); err != nil {
			return fmt.Errorf("epoch %d: %w", epoch, err)
		}
		if err := sgd.Step(params); err != nil {
			return fmt.Errorf("epoch %d: %w", epoch, err)
		}
	}
	return nil
}

// ComputeGradients clears every gradient accumulator and sums the gradient
// of the squared error over all samples, in insertion order.
//
// The output delta is y - target regardless of the output activation, which
// is exact for an Identity output layer only.
func (n *Network) ComputeGradients() error {
	if len(n.layers) < 2 {
		return ErrNoLayers
	}
	n.frozen = true

	for _, p := range n.Parameters() {
		p.ZeroGrad()
	}

	out := n.layers[len(n.layers)-1]
	for s, smp := range n.samples {
		if len(smp.target) != out.neurons {
			return fmt.Errorf("sample %d target has %d values, output layer has %d: %w",
				s, len(smp.target), out.neurons, matrix.ErrShapeMismatch)
		}
		if err := n.forward(smp.input, true); err != nil {
			return fmt.Errorf("sample %d: %w", s, err)
		}

		d, y := out.delta.Data(), out.y.Data()
		for i := range d {
			d[i] = y[i] - smp.target[i]
		}

		for l := len(n.layers) - 2; l >= 1; l-- {
			n.layers[l].backpropagate(n.layers[l+1])
		}

		for l := 1; l < len(n.layers); l++ {
			n.layers[l].accumulate(n.layers[l-1])
		}
	}
	return nil
}

// Loss returns the sum over all samples of the squared output error,
// evaluated with an inference forward pass.
func (n *Network) Loss() (float64, error) {
	out := n.layers[len(n.layers)-1]
	diff := make([]float64, out.neurons)

	var loss float64
	for s, smp := range n.samples {
		if len(smp.target) != out.neurons {
			return 0, fmt.Errorf("sample %d target has %d values, output layer has %d: %w",
				s, len(smp.target), out.neurons, matrix.ErrShapeMismatch)
		}
		if err := n.Run(smp.input); err != nil {
			return 0, fmt.Errorf("sample %d: %w", s, err)
		}
		floats.SubTo(diff, out.y.Data(), smp.target)
		loss += floats.Dot(diff, diff)
	}
	return loss, nil
}

func (n *Network) optimParams() []optim.Param {
	params := n.Parameters()
	out := make([]optim.Param, len(params))
	for i, p := range params {
		out[i] = p
	}
	return out
}

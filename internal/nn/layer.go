package nn

import (
	"fmt"

	"github.com/born-ml/ffnet/internal/matrix"
	"github.com/born-ml/ffnet/internal/random"
)

// Layer is one stage of a Network.
//
// All per-neuron state is stored as width-1 column matrices of height
// Neurons(). The input layer (index 0) only holds y, the raw features; its
// u, delta, uDiff and parameters are zero-sized.
type Layer struct {
	neurons int

	u *matrix.Matrix // pre-activation
	y *matrix.Matrix // post-activation

	weight *Parameter // width prevNeurons x height neurons
	bias   *Parameter // width 1 x height neurons

	delta *matrix.Matrix // error signal
	uDiff *matrix.Matrix // activation derivative at u

	activation Activation
}

func newInputLayer(inputs int) *Layer {
	return &Layer{
		neurons: inputs,
		u:       matrix.New(0, 0),
		y:       matrix.New(1, inputs),
		weight:  NewParameter("0.weight", matrix.New(0, 0)),
		bias:    NewParameter("0.bias", matrix.New(0, 0)),
		delta:   matrix.New(0, 0),
		uDiff:   matrix.New(0, 0),
	}
}

func newLayer(index, prevNeurons, neurons int, act Activation, rng *random.Generator) *Layer {
	return &Layer{
		neurons:    neurons,
		u:          matrix.New(1, neurons),
		y:          matrix.New(1, neurons),
		weight:     NewParameter(fmt.Sprintf("%d.weight", index), matrix.Random(prevNeurons, neurons, rng)),
		bias:       NewParameter(fmt.Sprintf("%d.bias", index), matrix.Random(1, neurons, rng)),
		delta:      matrix.New(1, neurons),
		uDiff:      matrix.New(1, neurons),
		activation: act,
	}
}

// Neurons returns the layer width.
func (l *Layer) Neurons() int {
	return l.neurons
}

// Weight returns the weight parameter (zero-sized for the input layer).
func (l *Layer) Weight() *Parameter {
	return l.weight
}

// Bias returns the bias parameter (zero-sized for the input layer).
func (l *Layer) Bias() *Parameter {
	return l.bias
}

// Activation returns the activation bound to the layer.
func (l *Layer) Activation() Activation {
	return l.activation
}

// Output returns the post-activation column from the last forward pass.
func (l *Layer) Output() *matrix.Matrix {
	return l.y
}

// Delta returns the error signal from the last backward pass.
func (l *Layer) Delta() *matrix.Matrix {
	return l.delta
}

// forward computes u = W·prev + b and y = f(u) from the previous layer's
// output. With training set it also stores f'(u) in uDiff.
func (l *Layer) forward(prev *Layer, training bool) error {
	l.u.Zero()
	if err := l.u.Dot(l.weight.Value(), prev.y); err != nil {
		return err
	}
	if err := l.u.AddAssign(l.bias.Value()); err != nil {
		return err
	}

	u, y := l.u.Data(), l.y.Data()
	for i, v := range u {
		y[i] = l.activation.Forward(v)
	}

	if training {
		d := l.uDiff.Data()
		for i, v := range u {
			d[i] = l.activation.Derivative(v)
		}
	}
	return nil
}

// backpropagate sets this layer's delta from the next layer's delta:
//
//	delta[i] = (Σ_k next.delta[k] * next.W[k][i]) * uDiff[i]
func (l *Layer) backpropagate(next *Layer) {
	w := next.weight.Value()
	nd := next.delta.Data()
	d, ud := l.delta.Data(), l.uDiff.Data()
	for i := range d {
		sum := 0.0
		for k, dk := range nd {
			sum += dk * w.At(k, i)
		}
		d[i] = sum * ud[i]
	}
}

// accumulate adds this sample's contribution to the gradients:
//
//	gradW[y][x] += delta[y] * prev.y[x]
//	gradB[y]    += delta[y]
func (l *Layer) accumulate(prev *Layer) {
	gw := l.weight.Grad()
	gb := l.bias.Grad().Data()
	py := prev.y.Data()
	for y, dy := range l.delta.Data() {
		row, _ := gw.Row(y)
		for x, px := range py {
			row[x] += dy * px
		}
		gb[y] += dy
	}
}

package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ffnet/internal/matrix"
	"github.com/born-ml/ffnet/internal/nn"
	"github.com/born-ml/ffnet/internal/random"
)

const testSeed = 0x5eed5eed5eed5eed

// newNet builds a network of the given widths; every layer after the input
// uses act except the last, which is Identity.
func newNet(t *testing.T, seed uint64, act nn.Activation, widths ...int) *nn.Network {
	t.Helper()
	net, err := nn.NewNetwork(widths[0], random.New(seed))
	require.NoError(t, err)
	for i, w := range widths[1:] {
		a := act
		if i == len(widths)-2 {
			a = nn.Identity
		}
		require.NoError(t, net.AppendLayer(w, a))
	}
	return net
}

func TestNewNetwork_Invalid(t *testing.T) {
	_, err := nn.NewNetwork(0, nil)
	require.ErrorIs(t, err, nn.ErrInvalidLayer)
}

func TestNewNetwork_DefaultGenerator(t *testing.T) {
	net, err := nn.NewNetwork(2, nil)
	require.NoError(t, err)
	require.NoError(t, net.AppendLayer(3, nn.ReLU))
	assert.Equal(t, 2, net.NumLayers())
}

func TestAppendLayer_Shapes(t *testing.T) {
	net := newNet(t, testSeed, nn.ReLU, 2, 5, 3)

	in := net.Layer(0)
	assert.Equal(t, 2, in.Neurons())
	assert.Zero(t, in.Weight().Value().Len())
	assert.Zero(t, in.Bias().Value().Len())
	assert.Equal(t, 1, in.Output().Width())
	assert.Equal(t, 2, in.Output().Height())

	for i, prev := range []int{2, 5} {
		l := net.Layer(i + 1)
		w := l.Weight().Value()
		assert.Equal(t, prev, w.Width(), "layer %d weight width", i+1)
		assert.Equal(t, l.Neurons(), w.Height(), "layer %d weight height", i+1)
		assert.Equal(t, 1, l.Bias().Value().Width())
		assert.Equal(t, l.Neurons(), l.Bias().Value().Height())
		assert.True(t, w.SameShape(l.Weight().Grad()))
		assert.True(t, l.Bias().Value().SameShape(l.Bias().Grad()))
	}

	assert.Equal(t, nn.ReLU, net.Layer(1).Activation())
	assert.Equal(t, nn.Identity, net.Layer(2).Activation())
	assert.Panics(t, func() { net.Layer(3) })
}

func TestAppendLayer_InitFromGenerator(t *testing.T) {
	net := newNet(t, testSeed, nn.ReLU, 2, 3)

	rng := random.New(testSeed)
	wantW := matrix.Random(2, 3, rng)
	wantB := matrix.Random(1, 3, rng)

	assert.Equal(t, wantW.ToVector(), net.Layer(1).Weight().Value().ToVector())
	assert.Equal(t, wantB.ToVector(), net.Layer(1).Bias().Value().ToVector())
}

func TestAppendLayer_Invalid(t *testing.T) {
	net := newNet(t, testSeed, nn.ReLU, 2)

	require.ErrorIs(t, net.AppendLayer(0, nn.ReLU), nn.ErrInvalidLayer)
	require.ErrorIs(t, net.AppendLayer(3, nn.Activation(9)), nn.ErrInvalidLayer)
	assert.Equal(t, 1, net.NumLayers())
}

func TestAppendLayer_FrozenAfterRun(t *testing.T) {
	net := newNet(t, testSeed, nn.ReLU, 2, 3, 1)
	require.NoError(t, net.Run([]float64{1, 2}))

	require.ErrorIs(t, net.AppendLayer(4, nn.ReLU), nn.ErrArchitectureFrozen)
}

func TestAddSample_InputMismatch(t *testing.T) {
	net := newNet(t, testSeed, nn.ReLU, 2, 3, 1)

	require.ErrorIs(t, net.AddSample([]float64{1}, []float64{0}), matrix.ErrShapeMismatch)
	assert.Zero(t, net.NumSamples())

	require.NoError(t, net.AddSample([]float64{1, 2}, []float64{0}))
	assert.Equal(t, 1, net.NumSamples())
}

func TestRun_InputMismatch(t *testing.T) {
	net := newNet(t, testSeed, nn.ReLU, 2, 3, 1)

	require.ErrorIs(t, net.Run([]float64{1, 2, 3}), matrix.ErrShapeMismatch)
}

// TestRun_Linear checks the forward pass against a hand-computed value.
func TestRun_Linear(t *testing.T) {
	net := newNet(t, testSeed, nn.ReLU, 2, 1)
	l := net.Layer(1)
	copy(l.Weight().Value().Data(), []float64{2, -1})
	copy(l.Bias().Value().Data(), []float64{0.5})

	require.NoError(t, net.Run([]float64{3, 4}))
	assert.Equal(t, []float64{2.5}, net.Result())
}

func TestRun_ActivationApplied(t *testing.T) {
	net, err := nn.NewNetwork(1, random.New(testSeed))
	require.NoError(t, err)
	require.NoError(t, net.AppendLayer(2, nn.ReLU))
	l := net.Layer(1)
	copy(l.Weight().Value().Data(), []float64{1, -1})
	l.Bias().Value().Zero()

	require.NoError(t, net.Run([]float64{3}))
	assert.Equal(t, []float64{3, 0}, net.Result())

	require.NoError(t, net.Run([]float64{-3}))
	assert.Equal(t, []float64{0, 3}, net.Result())
}

func TestRun_Deterministic(t *testing.T) {
	net := newNet(t, testSeed, nn.LeakyReLU, 3, 8, 8, 2)
	input := []float64{0.25, -1, 0.5}

	require.NoError(t, net.Run(input))
	first := net.Result()

	for i := 0; i < 5; i++ {
		require.NoError(t, net.Run(input))
		assert.Equal(t, first, net.Result())
	}

	other := newNet(t, testSeed, nn.LeakyReLU, 3, 8, 8, 2)
	require.NoError(t, other.Run(input))
	assert.Equal(t, first, other.Result())
}

func TestRun_InputLayerOnly(t *testing.T) {
	net := newNet(t, testSeed, nn.ReLU, 3)

	require.NoError(t, net.Run([]float64{1, 2, 3}))
	assert.Equal(t, []float64{1, 2, 3}, net.Result())
}

func TestParameters_Names(t *testing.T) {
	net := newNet(t, testSeed, nn.ReLU, 2, 3, 1)

	var names []string
	for _, p := range net.Parameters() {
		names = append(names, p.Name())
	}
	assert.Equal(t, []string{"1.weight", "1.bias", "2.weight", "2.bias"}, names)
	assert.Len(t, net.Layers(), 3)
}

func TestString(t *testing.T) {
	net := newNet(t, testSeed, nn.ReLU, 2, 1)
	l := net.Layer(1)
	copy(l.Weight().Value().Data(), []float64{1, -0.5})
	copy(l.Bias().Value().Data(), []float64{2})

	want := "0:\n" +
		"    neurons: 2\n" +
		"    weight: \n{}\n" +
		"    bias: \n{}\n" +
		"1:\n" +
		"    neurons: 1\n" +
		"    weight: \n{{1, -0.5}}\n" +
		"    bias: \n{{2}}\n"
	assert.Equal(t, want, net.String())
}

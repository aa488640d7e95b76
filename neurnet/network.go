package neurnet

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultNeuronMutateProb is the chance that Mutate perturbs any given neuron.
const DefaultNeuronMutateProb = 0.25

var (
	// ErrInvalidTopology is returned when a network is built with a non-positive layer size.
	ErrInvalidTopology = errors.New("invalid topology")
	// ErrInputSizeMismatch is returned when Activate receives the wrong number of inputs.
	ErrInputSizeMismatch = errors.New("input size mismatch")
)

// Network is a layered, fully connected feed-forward network.
// The first layer is the input layer, the last is the output layer.
//
// Activate only reads the weights, so concurrent Activate calls are safe as
// long as nobody calls Mutate at the same time.
type Network struct {
	layers []Layer
}

// New builds a network with the given input, output and hidden layer sizes
// and links every adjacent pair of layers with random weights drawn from src.
func New(src rand.Source, inputSize, outputSize int, hiddenSizes ...int) (*Network, error) {
	if inputSize <= 0 {
		return nil, fmt.Errorf("%w: input layer size must be positive, got %d", ErrInvalidTopology, inputSize)
	}
	if outputSize <= 0 {
		return nil, fmt.Errorf("%w: output layer size must be positive, got %d", ErrInvalidTopology, outputSize)
	}
	for i, size := range hiddenSizes {
		if size <= 0 {
			return nil, fmt.Errorf("%w: hidden layer %d size must be positive, got %d", ErrInvalidTopology, i, size)
		}
	}

	layers := make([]Layer, 0, len(hiddenSizes)+2)
	layers = append(layers, newLayer(inputSize))
	for _, size := range hiddenSizes {
		layers = append(layers, newLayer(size))
	}
	layers = append(layers, newLayer(outputSize))

	net := &Network{layers: layers}
	net.linkLayers(src)
	return net, nil
}

// linkLayers links each layer to its successor, front to back.
func (net *Network) linkLayers(src rand.Source) {
	last := len(net.layers) - 1
	for i := 0; i < last; i++ {
		net.layers[i].link(i+1, net.layers[i+1].Size(), src)
	}
	net.layers[last].link(noLayer, 0, src)
}

// Clone returns an independent deep copy with identical topology and weights.
func (net *Network) Clone() *Network {
	layers := make([]Layer, len(net.layers))
	next := noLayer
	for i := len(net.layers) - 1; i >= 0; i-- {
		layers[i] = net.layers[i].copyLayer(next)
		next = i
	}
	return &Network{layers: layers}
}

// InputSize returns the number of neurons in the input layer.
func (net *Network) InputSize() int {
	return net.layers[0].Size()
}

// OutputSize returns the number of neurons in the output layer.
func (net *Network) OutputSize() int {
	return net.layers[len(net.layers)-1].Size()
}

// Sizes returns the topology: the neuron count of every layer, input first.
func (net *Network) Sizes() []int {
	sizes := make([]int, len(net.layers))
	for i := range net.layers {
		sizes[i] = net.layers[i].Size()
	}
	return sizes
}

// Layer returns the layer at index i.
func (net *Network) Layer(i int) *Layer {
	return &net.layers[i]
}

// NumLayers returns the number of layers, input and output included.
func (net *Network) NumLayers() int {
	return len(net.layers)
}

// newScratch allocates one accumulator per neuron for a single activation.
func (net *Network) newScratch() [][]accumulator {
	scratch := make([][]accumulator, len(net.layers))
	for i := range net.layers {
		scratch[i] = make([]accumulator, net.layers[i].Size())
	}
	return scratch
}

// Activate feeds inputs through the network and returns the output layer's values.
// Each neuron outputs the weighted average of its inputs; a neuron whose incoming
// weights sum to zero outputs NaN, which then flows on to its successors.
func (net *Network) Activate(inputs []float64) ([]float64, error) {
	if len(inputs) != net.InputSize() {
		return nil, fmt.Errorf("%w: got %d inputs, network has %d input neurons", ErrInputSizeMismatch, len(inputs), net.InputSize())
	}

	scratch := net.newScratch()

	// Prime the input layer directly so each input neuron outputs its value unchanged.
	for i, v := range inputs {
		scratch[0][i] = accumulator{totalInput: v, totalWeight: 1}
	}

	for i := 0; i < len(net.layers)-1; i++ {
		layer := &net.layers[i]
		layer.propagate(scratch[i], scratch[layer.next])
	}

	outAcc := scratch[len(scratch)-1]
	outputs := make([]float64, len(outAcc))
	for i := range outAcc {
		outputs[i] = outAcc[i].output()
	}
	return outputs, nil
}

// Mutate perturbs the network in place: every neuron outside the output layer
// is mutated with probability DefaultNeuronMutateProb.
func (net *Network) Mutate(src rand.Source, effect float64) {
	net.MutateWithProb(src, effect, DefaultNeuronMutateProb)
}

// MutateWithProb is Mutate with an explicit per-neuron mutation probability.
func (net *Network) MutateWithProb(src rand.Source, effect, prob float64) {
	gate := distuv.Bernoulli{P: prob, Src: src}
	for i := 0; i < len(net.layers)-1; i++ {
		layer := &net.layers[i]
		for j := range layer.neurons {
			if gate.Rand() == 1 {
				layer.neurons[j].mutate(src, effect)
			}
		}
	}
}

package neurnet

import (
	"errors"
	"fmt"
)

// ErrInvalidSnapshot is returned when a snapshot does not describe a valid network.
var ErrInvalidSnapshot = errors.New("invalid snapshot")

// Snapshot is a read-only copy of a network's weights, indexed as
// Layers[layer][neuron][synapse]. Output-layer neurons have empty synapse lists.
// It is what the visualizer reads and what checkpoints store.
type Snapshot struct {
	Layers [][][]float64
}

// Sizes returns the neuron count of every layer in the snapshot.
func (s Snapshot) Sizes() []int {
	sizes := make([]int, len(s.Layers))
	for i, layer := range s.Layers {
		sizes[i] = len(layer)
	}
	return sizes
}

// Snapshot returns a copy of the network's topology and synapse weights.
func (net *Network) Snapshot() Snapshot {
	s := Snapshot{Layers: make([][][]float64, len(net.layers))}
	for i := range net.layers {
		layer := &net.layers[i]
		s.Layers[i] = make([][]float64, layer.Size())
		for j := range layer.neurons {
			s.Layers[i][j] = layer.neurons[j].Synapses()
		}
	}
	return s
}

// FromSnapshot rebuilds a network from a snapshot, keeping its weights as they are.
func FromSnapshot(s Snapshot) (*Network, error) {
	if len(s.Layers) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 layers, got %d", ErrInvalidSnapshot, len(s.Layers))
	}

	layers := make([]Layer, len(s.Layers))
	last := len(s.Layers) - 1
	for i, neurons := range s.Layers {
		if len(neurons) == 0 {
			return nil, fmt.Errorf("%w: layer %d has no neurons", ErrInvalidSnapshot, i)
		}
		want := 0
		next := noLayer
		if i < last {
			want = len(s.Layers[i+1])
			next = i + 1
		}

		layer := newLayer(len(neurons))
		layer.next = next
		for j, synapses := range neurons {
			if len(synapses) != want {
				return nil, fmt.Errorf("%w: neuron %d of layer %d has %d synapses, want %d", ErrInvalidSnapshot, j, i, len(synapses), want)
			}
			if want > 0 {
				layer.neurons[j].synapses = make([]float64, want)
				copy(layer.neurons[j].synapses, synapses)
			}
		}
		layers[i] = layer
	}
	return &Network{layers: layers}, nil
}

package neurnet

import (
	"golang.org/x/exp/rand"
)

// noLayer marks a layer without a successor (the output layer).
const noLayer = -1

// Layer is an ordered, fixed-size group of neurons. The link to the following
// layer is an index into the owning network's layer slice.
type Layer struct {
	neurons []Neuron
	next    int
}

// newLayer creates an unlinked layer with size neurons.
func newLayer(size int) Layer {
	return Layer{
		neurons: make([]Neuron, size),
		next:    noLayer,
	}
}

// Size returns the number of neurons in the layer.
func (l *Layer) Size() int {
	return len(l.neurons)
}

// Neuron returns the neuron at index i.
func (l *Layer) Neuron(i int) *Neuron {
	return &l.neurons[i]
}

// copyLayer deep-copies the layer's neurons and points the copy at next.
// Synapse values are kept; nothing is re-randomized.
func (l *Layer) copyLayer(next int) Layer {
	neurons := make([]Neuron, len(l.neurons))
	for i := range l.neurons {
		neurons[i] = l.neurons[i].copyNeuron()
	}
	return Layer{neurons: neurons, next: next}
}

// link records the following layer and, when there is one, gives every neuron
// nextSize freshly randomized synapses. Any previously learned weights are lost.
func (l *Layer) link(next, nextSize int, src rand.Source) {
	l.next = next
	if next == noLayer {
		return
	}
	for i := range l.neurons {
		l.neurons[i].linkTo(nextSize, src)
	}
}

// propagate pushes this layer's outputs into the next layer's accumulators.
// All of next is reset before any neuron writes to it.
func (l *Layer) propagate(cur, next []accumulator) {
	for i := range next {
		next[i].reset()
	}
	for i := range l.neurons {
		l.neurons[i].propagate(&cur[i], next)
	}
}

package neurnet

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// --------------------------- accumulator ---------------------------

// accumulator holds the running totals a neuron collects during a single
// forward pass. It lives in per-activation scratch, never on the Neuron.
type accumulator struct {
	totalInput  float64
	totalWeight float64
}

// reset zeroes both totals.
func (a *accumulator) reset() {
	a.totalInput = 0
	a.totalWeight = 0
}

// input adds one weighted contribution from an upstream neuron.
func (a *accumulator) input(value, weight float64) {
	a.totalInput += value * weight
	a.totalWeight += weight
}

// output returns the weighted average of everything fed in since the last reset.
// With no accumulated weight this is 0/0 and yields NaN; callers see the NaN
// rather than a panic.
func (a *accumulator) output() float64 {
	return a.totalInput / a.totalWeight
}

// --------------------------- Neuron ---------------------------

// Neuron is a scalar unit holding the weights of its outgoing connections.
// Neurons in the output layer have no synapses.
type Neuron struct {
	synapses []float64 // One weight per neuron in the next layer
}

// String returns a string representation of the Neuron.
func (n *Neuron) String() string {
	return fmt.Sprintf("Neuron(Synapses: %v)", n.synapses)
}

// Synapses returns a copy of the neuron's outgoing weights.
func (n *Neuron) Synapses() []float64 {
	out := make([]float64, len(n.synapses))
	copy(out, n.synapses)
	return out
}

// copyNeuron creates a deep copy of the Neuron.
func (n *Neuron) copyNeuron() Neuron {
	if n.synapses == nil {
		return Neuron{}
	}
	synapses := make([]float64, len(n.synapses))
	copy(synapses, n.synapses)
	return Neuron{synapses: synapses}
}

// linkTo replaces the synapses with size fresh weights drawn from U[0,1).
func (n *Neuron) linkTo(size int, src rand.Source) {
	dist := distuv.Uniform{Min: 0, Max: 1, Src: src}
	n.synapses = make([]float64, size)
	for i := range n.synapses {
		n.synapses[i] = dist.Rand()
	}
}

// propagate broadcasts this neuron's output into every accumulator of the
// next layer, weighted per destination.
func (n *Neuron) propagate(acc *accumulator, next []accumulator) {
	output := acc.output()
	for i, weight := range n.synapses {
		next[i].input(output, weight)
	}
}

// mutate perturbs every synapse by a delta drawn from U[-effect, effect]
// and folds the result back into [0,1].
func (n *Neuron) mutate(src rand.Source, effect float64) {
	dist := distuv.Uniform{Min: -effect, Max: effect, Src: src}
	for i, weight := range n.synapses {
		n.synapses[i] = fold(weight + dist.Rand())
	}
}

// fold reflects an out-of-range weight back into [0,1]. Negative values are
// negated and values above one become 1 - (w mod 1). This is not clamping.
func fold(w float64) float64 {
	if w < 0 {
		w = -w
	}
	if w > 1 {
		w = 1 - math.Mod(w, 1)
	}
	return w
}

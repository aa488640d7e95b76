package neurnet

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ScoreFunc evaluates a candidate network. Lower scores are better.
type ScoreFunc func(net *Network) (float64, error)

// Sample is one test case: an input vector and the expected values for the
// first len(Targets) outputs.
type Sample struct {
	Inputs  []float64
	Targets []float64
}

// AbsoluteError returns a ScoreFunc that sums, over all samples, the absolute
// difference between each target and the matching output.
func AbsoluteError(samples []Sample) ScoreFunc {
	return func(net *Network) (float64, error) {
		score := 0.0
		for i, s := range samples {
			outputs, err := net.Activate(s.Inputs)
			if err != nil {
				return math.NaN(), fmt.Errorf("sample %d: %w", i, err)
			}
			if len(s.Targets) > len(outputs) {
				return math.NaN(), fmt.Errorf("sample %d: %d targets for %d outputs", i, len(s.Targets), len(outputs))
			}
			score += floats.Distance(outputs[:len(s.Targets)], s.Targets, 1)
		}
		return score, nil
	}
}

// SampleRange builds samples for a one-dimensional target function. For every
// x = start + i*step below stop it feeds [x, 0, ..., 0] (inputSize wide) and
// expects f(x) on the first output.
func SampleRange(start, stop, step float64, inputSize int, f func(x float64) float64) []Sample {
	var samples []Sample
	if step <= 0 || inputSize <= 0 {
		return samples
	}
	for i := 0; ; i++ {
		x := start + float64(i)*step
		if x >= stop {
			break
		}
		inputs := make([]float64, inputSize)
		inputs[0] = x
		samples = append(samples, Sample{Inputs: inputs, Targets: []float64{f(x)}})
	}
	return samples
}

// Package layout turns a network snapshot into drawing coordinates.
// It does no drawing itself; a visualizer renders the circles and lines.
package layout

import (
	"github.com/baldhumanity/neurnet-go/neurnet"
)

// Geometry of the diagram, in pixels.
const (
	LayerSpacing  = 128 // Horizontal distance between layers
	NeuronSpacing = 64  // Vertical distance between neurons of a layer
	NeuronSize    = 32  // Diameter of a neuron circle
	StrokeScale   = 10  // Line width per unit of synapse weight
)

// Circle is a neuron, positioned by the top-left corner of its bounding box.
type Circle struct {
	Layer, Index int
	X, Y         int
	Diameter     int
}

// Line is a synapse drawn between the centers of two neurons.
type Line struct {
	FromLayer, FromIndex, ToIndex int
	X1, Y1, X2, Y2                int
	Weight                        float64
	Stroke                        float64
}

// Diagram holds everything a visualizer needs to draw a network.
type Diagram struct {
	Width, Height int
	Circles       []Circle
	Lines         []Line
}

// Compute lays out every neuron and synapse of the snapshot.
func Compute(s neurnet.Snapshot) Diagram {
	maxNeurons := 0
	for _, layer := range s.Layers {
		if len(layer) > maxNeurons {
			maxNeurons = len(layer)
		}
	}
	if len(s.Layers) == 0 || maxNeurons == 0 {
		return Diagram{}
	}

	half := NeuronSize / 2
	d := Diagram{
		Width:  NeuronSize + (len(s.Layers)-1)*LayerSpacing + 1,
		Height: NeuronSize + (maxNeurons-1)*NeuronSpacing + 1,
	}

	for i, layer := range s.Layers {
		for j, synapses := range layer {
			for k, w := range synapses {
				d.Lines = append(d.Lines, Line{
					FromLayer: i,
					FromIndex: j,
					ToIndex:   k,
					X1:        half + i*LayerSpacing,
					Y1:        half + j*NeuronSpacing,
					X2:        half + (i+1)*LayerSpacing,
					Y2:        half + k*NeuronSpacing,
					Weight:    w,
					Stroke:    w * StrokeScale,
				})
			}
		}
	}

	for i, layer := range s.Layers {
		for j := range layer {
			d.Circles = append(d.Circles, Circle{
				Layer:    i,
				Index:    j,
				X:        i * LayerSpacing,
				Y:        j * NeuronSpacing,
				Diameter: NeuronSize,
			})
		}
	}
	return d
}

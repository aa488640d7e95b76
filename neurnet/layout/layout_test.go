package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/baldhumanity/neurnet-go/neurnet"
)

func TestComputeSmallNetwork(t *testing.T) {
	snap := neurnet.Snapshot{Layers: [][][]float64{
		{{0.5, 1.0}},
		{{}, {}},
	}}

	d := Compute(snap)

	assert.Equal(t, 161, d.Width)
	assert.Equal(t, 97, d.Height)
	assert.Equal(t, []Circle{
		{Layer: 0, Index: 0, X: 0, Y: 0, Diameter: 32},
		{Layer: 1, Index: 0, X: 128, Y: 0, Diameter: 32},
		{Layer: 1, Index: 1, X: 128, Y: 64, Diameter: 32},
	}, d.Circles)
	assert.Equal(t, []Line{
		{FromLayer: 0, FromIndex: 0, ToIndex: 0, X1: 16, Y1: 16, X2: 144, Y2: 16, Weight: 0.5, Stroke: 5},
		{FromLayer: 0, FromIndex: 0, ToIndex: 1, X1: 16, Y1: 16, X2: 144, Y2: 80, Weight: 1.0, Stroke: 10},
	}, d.Lines)
}

func TestComputeFromNetwork(t *testing.T) {
	net, err := neurnet.New(rand.NewSource(1), 3, 3, 2, 2, 2)
	require.NoError(t, err)

	d := Compute(net.Snapshot())

	assert.Equal(t, 32+4*128+1, d.Width)
	assert.Equal(t, 32+2*64+1, d.Height)
	assert.Len(t, d.Circles, 3+2+2+2+3)
	assert.Len(t, d.Lines, 3*2+2*2+2*2+2*3)
	for _, l := range d.Lines {
		assert.InDelta(t, l.Weight*StrokeScale, l.Stroke, 1e-12)
	}
}

func TestComputeEmpty(t *testing.T) {
	assert.Equal(t, Diagram{}, Compute(neurnet.Snapshot{}))
}

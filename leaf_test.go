package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func computeLeafLayout(t *testing.T, style Style, measure MeasureFunc, available SizeAvailableSpace) *Layout {
	t.Helper()
	tree := NewTree()
	var node NodeID
	if measure != nil {
		node = tree.NewLeafWithMeasure(style, measure)
	} else {
		node = tree.NewLeaf(style)
	}
	require.NoError(t, tree.ComputeLayout(node, available))
	l, err := tree.Layout(node)
	require.NoError(t, err)
	return l
}

func TestLeafWithoutMeasureUsesStyleSize(t *testing.T) {
	s := DefaultStyle()
	s.Size = Size[Dimension]{Width: DimLen(50), Height: DimLen(30)}
	l := computeLeafLayout(t, s, nil, SizeAvailableSpace{Width: Definite(200), Height: Definite(200)})
	assert.Equal(t, float64(50), l.Size.Width)
	assert.Equal(t, float64(30), l.Size.Height)
}

func TestLeafWithoutMeasureAndNoSizeCollapsesToZero(t *testing.T) {
	s := DefaultStyle()
	l := computeLeafLayout(t, s, nil, SizeAvailableSpace{Width: Definite(200), Height: Definite(200)})
	assert.Equal(t, float64(0), l.Size.Width)
	assert.Equal(t, float64(0), l.Size.Height)
}

func TestLeafWithMeasureFunctionSizesFromContent(t *testing.T) {
	s := DefaultStyle()
	measure := func(known SizeOpt, available SizeAvailableSpace) SizeF {
		return SizeF{Width: 77, Height: 22}
	}
	l := computeLeafLayout(t, s, measure, SizeAvailableSpace{Width: Definite(200), Height: Definite(200)})
	assert.Equal(t, float64(77), l.Size.Width)
	assert.Equal(t, float64(22), l.Size.Height)
}

func TestLeafStyleSizeBecomesKnownDimensionsForMeasure(t *testing.T) {
	s := DefaultStyle()
	s.Size = Size[Dimension]{Width: DimLen(999), Height: DimLen(999)}
	measure := func(known SizeOpt, available SizeAvailableSpace) SizeF {
		w, _ := known.Width.Get()
		h, _ := known.Height.Get()
		return SizeF{Width: w, Height: h}
	}
	// With no parent-supplied known_dimensions, the resolved style size
	// itself becomes the known_dimensions passed to measure.
	l := computeLeafLayout(t, s, measure, SizeAvailableSpace{Width: Definite(200), Height: Definite(200)})
	assert.Equal(t, float64(999), l.Size.Width)
	assert.Equal(t, float64(999), l.Size.Height)
}

func TestLeafClampsToMinMax(t *testing.T) {
	s := DefaultStyle()
	s.Size = Size[Dimension]{Width: DimLen(500), Height: DimLen(500)}
	s.MaxSize = Size[Dimension]{Width: DimLen(100), Height: DimAutoV()}
	l := computeLeafLayout(t, s, nil, SizeAvailableSpace{Width: Definite(1000), Height: Definite(1000)})
	assert.Equal(t, float64(100), l.Size.Width)
}

func TestLeafAspectRatioFillsMissingAxis(t *testing.T) {
	s := DefaultStyle()
	s.Size = Size[Dimension]{Width: DimLen(100), Height: DimAutoV()}
	s.AspectRatio = Some(2) // width/height == 2
	l := computeLeafLayout(t, s, nil, SizeAvailableSpace{Width: Definite(1000), Height: Definite(1000)})
	assert.Equal(t, float64(100), l.Size.Width)
	assert.Equal(t, float64(50), l.Size.Height)
}

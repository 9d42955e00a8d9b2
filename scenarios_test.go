package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These exercise the universal invariants and worked scenarios a layout
// engine of this shape is expected to satisfy, independent of which
// algorithm a given node dispatches to.

func TestInvariantLayoutSizeIsNonNegativeAndFinite(t *testing.T) {
	tree := NewTree()
	s := DefaultStyle()
	s.MinSize = Size[Dimension]{Width: DimLen(-50), Height: DimAutoV()}
	leaf := tree.NewLeaf(s)
	require.NoError(t, tree.ComputeLayout(leaf, SizeAvailableSpace{Width: Definite(100), Height: Definite(100)}))
	l, err := tree.Layout(leaf)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, l.Size.Width, float64(0))
	assert.GreaterOrEqual(t, l.Size.Height, float64(0))
}

func TestInvariantFixedSizeLeafIgnoresAvailableSpace(t *testing.T) {
	s := DefaultStyle()
	s.Size = Size[Dimension]{Width: DimLen(40), Height: DimLen(25)}
	for _, avail := range []SizeAvailableSpace{
		{Width: Definite(1000), Height: Definite(1000)},
		{Width: MinContent, Height: MinContent},
		{Width: MaxContent, Height: MaxContent},
	} {
		l := computeLeafLayout(t, s, nil, avail)
		assert.Equal(t, float64(40), l.Size.Width)
		assert.Equal(t, float64(25), l.Size.Height)
	}
}

func TestInvariantMinOverridesMaxWhenMaxBelowMin(t *testing.T) {
	s := DefaultStyle()
	s.Size = Size[Dimension]{Width: DimLen(500), Height: DimAutoV()}
	s.MinSize = Size[Dimension]{Width: DimLen(100), Height: DimAutoV()}
	s.MaxSize = Size[Dimension]{Width: DimLen(50), Height: DimAutoV()}
	l := computeLeafLayout(t, s, nil, SizeAvailableSpace{Width: Definite(1000), Height: Definite(1000)})
	assert.Equal(t, float64(100), l.Size.Width)
}

func TestInvariantDisplayNoneDoesNotAffectSiblingLayout(t *testing.T) {
	root := DefaultStyle()
	root.Display = DisplayBlock

	withoutHidden, idWithout := buildAndLayout(t, NodeSpec{
		Style:    root,
		Children: []NodeSpec{blockLeaf(50, 20)},
	}, SizeAvailableSpace{Width: Definite(200), Height: Definite(200)})
	siblingWithout, err := withoutHidden.Layout(withoutHidden.ChildAt(idWithout, 0))
	require.NoError(t, err)

	hidden := DefaultStyle()
	hidden.Display = DisplayNone
	hidden.Size = Size[Dimension]{Width: DimLen(1000), Height: DimLen(1000)}

	withHidden, idWith := buildAndLayout(t, NodeSpec{
		Style:    root,
		Children: []NodeSpec{{Style: hidden}, blockLeaf(50, 20)},
	}, SizeAvailableSpace{Width: Definite(200), Height: Definite(200)})
	siblingWith, err := withHidden.Layout(withHidden.ChildAt(idWith, 1))
	require.NoError(t, err)

	assert.Equal(t, siblingWithout.Size, siblingWith.Size)
	assert.Equal(t, siblingWithout.Location, siblingWith.Location)
}

func TestInvariantAspectRatioDerivesMissingAxis(t *testing.T) {
	s := DefaultStyle()
	s.Size = Size[Dimension]{Width: DimLen(60), Height: DimAutoV()}
	s.AspectRatio = Some(3) // width/height == 3
	l := computeLeafLayout(t, s, nil, SizeAvailableSpace{Width: Definite(1000), Height: Definite(1000)})
	assert.Equal(t, float64(60), l.Size.Width)
	assert.InDelta(t, 20, l.Size.Height, 1e-9)
}

func TestScenarioMinOverridesStyleSizeOnLeaf(t *testing.T) {
	s := DefaultStyle()
	s.Size = Size[Dimension]{Width: DimLen(50), Height: DimLen(50)}
	s.MinSize = Size[Dimension]{Width: DimLen(100), Height: DimLen(100)}
	l := computeLeafLayout(t, s, nil, SizeAvailableSpace{Width: Definite(100), Height: Definite(100)})
	assert.Equal(t, SizeF{Width: 100, Height: 100}, l.Size)
}

func TestScenarioBlockMarginCollapseAcrossThreeChildren(t *testing.T) {
	root := DefaultStyle()
	root.Display = DisplayBlock
	root.Size = Size[Dimension]{Width: DimLen(50), Height: DimAutoV()}

	a := DefaultStyle()
	a.Size = Size[Dimension]{Width: DimAutoV(), Height: DimLen(10)}
	a.Margin = Rect[LengthPercentageAuto]{Bottom: LengthA(10)}

	b := DefaultStyle()
	b.MinSize = Size[Dimension]{Width: DimAutoV(), Height: DimLen(1)}
	b.Margin = Rect[LengthPercentageAuto]{Top: LengthA(10), Bottom: LengthA(10)}

	c := DefaultStyle()
	c.Size = Size[Dimension]{Width: DimAutoV(), Height: DimLen(10)}
	c.Margin = Rect[LengthPercentageAuto]{Top: LengthA(10)}

	tree, rootID := buildAndLayout(t, NodeSpec{
		Style:    root,
		Children: []NodeSpec{{Style: a}, {Style: b}, {Style: c}},
	}, SizeAvailableSpace{Width: Definite(50), Height: MaxContent})

	rootLayout, err := tree.Layout(rootID)
	require.NoError(t, err)
	assert.Equal(t, float64(41), rootLayout.Size.Height)

	l0, err := tree.Layout(tree.ChildAt(rootID, 0))
	require.NoError(t, err)
	assert.Equal(t, float64(0), l0.Location.Y)

	l1, err := tree.Layout(tree.ChildAt(rootID, 1))
	require.NoError(t, err)
	assert.Equal(t, float64(20), l1.Location.Y)
	assert.Equal(t, float64(1), l1.Size.Height)

	l2, err := tree.Layout(tree.ChildAt(rootID, 2))
	require.NoError(t, err)
	assert.Equal(t, float64(31), l2.Location.Y)
}

func TestScenarioFlexRowReversePositionsChildrenFromTheRight(t *testing.T) {
	root := DefaultStyle()
	root.Display = DisplayFlex
	root.FlexDirection = FlexRowReverse
	root.AlignItems = AlignStretch

	leaf := func() NodeSpec {
		s := DefaultStyle()
		s.Size = Size[Dimension]{Width: DimLen(10), Height: DimAutoV()}
		return NodeSpec{Style: s}
	}

	tree, rootID := buildAndLayout(t, NodeSpec{
		Style:    root,
		Children: []NodeSpec{leaf(), leaf(), leaf()},
	}, SizeAvailableSpace{Width: Definite(100), Height: Definite(100)})

	wantX := []float64{90, 80, 70}
	for i, want := range wantX {
		l, err := tree.Layout(tree.ChildAt(rootID, i))
		require.NoError(t, err)
		assert.Equal(t, want, l.Location.X)
		assert.Equal(t, float64(100), l.Size.Height)
	}
}

func TestScenarioFlexShrinkDistributesOverflowEvenOnASingleLine(t *testing.T) {
	root := DefaultStyle()
	root.Display = DisplayFlex
	root.AlignContent = AlignSpaceAround
	root.Size = Size[Dimension]{Width: DimLen(100), Height: DimLen(100)}

	child := func() NodeSpec {
		s := DefaultStyle()
		s.Size = Size[Dimension]{Width: DimLen(50), Height: DimLen(10)}
		return NodeSpec{Style: s}
	}

	tree, rootID := buildAndLayout(t, NodeSpec{
		Style:    root,
		Children: []NodeSpec{child(), child(), child(), child(), child(), child()},
	}, SizeAvailableSpace{Width: MaxContent, Height: MaxContent})

	rootLayout, err := tree.Layout(rootID)
	require.NoError(t, err)
	assert.Equal(t, SizeF{Width: 100, Height: 100}, rootLayout.Size)

	wantWidths := []float64{17, 16, 17, 17, 16, 17}
	wantX := []float64{0, 17, 33, 50, 67, 83}
	total := 0.0
	for i, want := range wantWidths {
		l, err := tree.Layout(tree.ChildAt(rootID, i))
		require.NoError(t, err)
		assert.Equal(t, want, l.Size.Width, "child %d width", i)
		assert.Equal(t, float64(10), l.Size.Height, "child %d height", i)
		assert.Equal(t, wantX[i], l.Location.X, "child %d x", i)
		assert.Equal(t, float64(0), l.Location.Y, "child %d y", i)
		total += l.Size.Width
	}
	assert.Equal(t, float64(100), total, "the distributed widths must still sum to the container width")
}

func TestScenarioGridAbsoluteChildrenPositionAgainstThePaddingBox(t *testing.T) {
	root := DefaultStyle()
	root.Display = DisplayGrid
	root.GridTemplateRows = []NonRepeatedTrackSizingFunction{FixedTrack(40), FixedTrack(40), FixedTrack(40)}
	root.GridTemplateColumns = []NonRepeatedTrackSizingFunction{FixedTrack(40), FixedTrack(40), FixedTrack(40)}
	root.Padding = Rect[LengthPercentage]{Left: Length(40), Right: Length(20), Top: Length(10), Bottom: Length(30)}

	absoluteChild := func(inset Rect[LengthPercentageAuto]) NodeSpec {
		s := DefaultStyle()
		s.Position = PositionAbsolute
		s.Margin = Rect[LengthPercentageAuto]{Left: LengthA(4), Right: LengthA(2), Top: LengthA(1), Bottom: LengthA(3)}
		s.Inset = inset
		return NodeSpec{Style: s}
	}

	inFlowLeaves := make([]NodeSpec, 7)
	for i := range inFlowLeaves {
		inFlowLeaves[i] = gridLeaf()
	}

	children := append([]NodeSpec{
		absoluteChild(Rect[LengthPercentageAuto]{Left: LengthAuto(), Right: LengthA(0), Top: LengthA(0), Bottom: LengthAuto()}),
		absoluteChild(Rect[LengthPercentageAuto]{Left: LengthA(10), Right: LengthAuto(), Top: LengthAuto(), Bottom: LengthA(10)}),
	}, inFlowLeaves...)

	tree, rootID := buildAndLayout(t, NodeSpec{
		Style:    root,
		Children: children,
	}, SizeAvailableSpace{Width: MaxContent, Height: MaxContent})

	rootLayout, err := tree.Layout(rootID)
	require.NoError(t, err)
	assert.Equal(t, SizeF{Width: 180, Height: 160}, rootLayout.Size)

	node0, err := tree.Layout(tree.ChildAt(rootID, 0))
	require.NoError(t, err)
	assert.Equal(t, SizeF{}, node0.Size)
	assert.Equal(t, PointF{X: 178, Y: 1}, node0.Location)

	node1, err := tree.Layout(tree.ChildAt(rootID, 1))
	require.NoError(t, err)
	assert.Equal(t, SizeF{}, node1.Size)
	assert.Equal(t, PointF{X: 14, Y: 147}, node1.Location)
}

func TestScenarioRoundingLeavesNoGapBetweenCenteredSiblings(t *testing.T) {
	root := DefaultStyle()
	root.Display = DisplayFlex
	root.JustifyContent = AlignCenter

	leaf := func() NodeSpec {
		s := DefaultStyle()
		s.Size = Size[Dimension]{Width: DimLen(100.3), Height: DimLen(10)}
		return NodeSpec{Style: s}
	}

	tree, rootID := buildAndLayout(t, NodeSpec{
		Style:    root,
		Children: []NodeSpec{leaf(), leaf()},
	}, SizeAvailableSpace{Width: Definite(963.3333), Height: Definite(50)})

	a, err := tree.Layout(tree.ChildAt(rootID, 0))
	require.NoError(t, err)
	b, err := tree.Layout(tree.ChildAt(rootID, 1))
	require.NoError(t, err)

	assert.Equal(t, a.Location.X+a.Size.Width, b.Location.X, "rounding must not open a gap between adjacent siblings")
}

package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeNewLeafAndChildren(t *testing.T) {
	tree := NewTree()
	a := tree.NewLeaf(DefaultStyle())
	b := tree.NewLeaf(DefaultStyle())
	root, err := tree.NewWithChildren(DefaultStyle(), []NodeID{a, b})
	require.NoError(t, err)

	assert.Equal(t, 2, tree.ChildCount(root))
	assert.Equal(t, a, tree.ChildAt(root, 0))
	assert.Equal(t, b, tree.ChildAt(root, 1))

	parent, ok := tree.Parent(a)
	assert.True(t, ok)
	assert.Equal(t, root, parent)
}

func TestTreeStaleNodeIDRejectedAfterRemove(t *testing.T) {
	tree := NewTree()
	a := tree.NewLeaf(DefaultStyle())
	root, err := tree.NewWithChildren(DefaultStyle(), []NodeID{a})
	require.NoError(t, err)

	require.NoError(t, tree.RemoveChild(root, a))
	require.NoError(t, tree.Remove(a))

	// a's slot is now free; allocate a fresh node and confirm it reuses the
	// slot index but with a bumped generation, so the old handle is invalid.
	c := tree.NewLeaf(DefaultStyle())
	assert.Equal(t, a.slotIndex(), c.slotIndex())
	assert.NotEqual(t, a, c)

	_, err = tree.Children(a)
	assert.ErrorIs(t, err, ErrInvalidInputNodeSentinel)
}

func TestTreeSetChildrenAggregatesInvalidChildren(t *testing.T) {
	tree := NewTree()
	root := tree.NewLeaf(DefaultStyle())
	bogus1 := NodeID(999)
	bogus2 := NodeID(888)

	err := tree.SetChildren(root, []NodeID{bogus1, bogus2})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidChildNodeSentinel)
	// Both bad references must be reported, not just the first.
	assert.Contains(t, err.Error(), "2 errors")

	// The parent must be left untouched since validation failed atomically.
	assert.Equal(t, 0, tree.ChildCount(root))
}

func TestTreeSetChildrenReparents(t *testing.T) {
	tree := NewTree()
	a := tree.NewLeaf(DefaultStyle())
	b := tree.NewLeaf(DefaultStyle())
	oldParent, err := tree.NewWithChildren(DefaultStyle(), []NodeID{a})
	require.NoError(t, err)
	newParent := tree.NewLeaf(DefaultStyle())

	require.NoError(t, tree.SetChildren(newParent, []NodeID{a, b}))

	assert.Equal(t, 0, tree.ChildCount(oldParent))
	assert.Equal(t, 2, tree.ChildCount(newParent))
	parent, ok := tree.Parent(a)
	assert.True(t, ok)
	assert.Equal(t, newParent, parent)
}

func TestTreeMarkDirtyPropagatesToRoot(t *testing.T) {
	tree := NewTree()
	leaf := tree.NewLeaf(DefaultStyle())
	mid, err := tree.NewWithChildren(DefaultStyle(), []NodeID{leaf})
	require.NoError(t, err)
	root, err := tree.NewWithChildren(DefaultStyle(), []NodeID{mid})
	require.NoError(t, err)

	require.NoError(t, tree.ComputeLayout(root, SizeAvailableSpace{
		Width:  Definite(100),
		Height: Definite(100),
	}))

	dirty, err := tree.Dirty(root)
	require.NoError(t, err)
	assert.False(t, dirty, "cache should be populated right after ComputeLayout")

	require.NoError(t, tree.MarkDirty(leaf))

	dirty, err = tree.Dirty(root)
	require.NoError(t, err)
	assert.True(t, dirty, "marking a leaf dirty must clear every ancestor's cache up to the root")
}

func TestTreeDisplayContentsSplicesChildren(t *testing.T) {
	tree := NewTree()
	grandchild1 := tree.NewLeaf(DefaultStyle())
	grandchild2 := tree.NewLeaf(DefaultStyle())

	contentsStyle := DefaultStyle()
	contentsStyle.Display = DisplayContents
	contentsChild, err := tree.NewWithChildren(contentsStyle, []NodeID{grandchild1, grandchild2})
	require.NoError(t, err)

	ordinaryChild := tree.NewLeaf(DefaultStyle())

	root, err := tree.NewWithChildren(DefaultStyle(), []NodeID{contentsChild, ordinaryChild})
	require.NoError(t, err)

	// The Contents node itself must disappear from the effective child list,
	// replaced in-place by its own children.
	assert.Equal(t, 3, tree.ChildCount(root))
	assert.Equal(t, []NodeID{grandchild1, grandchild2, ordinaryChild}, tree.ChildIDs(root))

	// Its raw (pre-splice) children are unaffected.
	raw, err := tree.Children(root)
	require.NoError(t, err)
	assert.Equal(t, []NodeID{contentsChild, ordinaryChild}, raw)
}

func TestTreeComputeLayoutRoundsByDefault(t *testing.T) {
	tree := NewTree()
	leafStyle := DefaultStyle()
	leafStyle.Size = Size[Dimension]{Width: DimLen(10.4), Height: DimLen(10.6)}
	leaf := tree.NewLeaf(leafStyle)

	require.NoError(t, tree.ComputeLayout(leaf, SizeAvailableSpace{
		Width:  Definite(100),
		Height: Definite(100),
	}))

	l, err := tree.Layout(leaf)
	require.NoError(t, err)
	assert.Equal(t, float64(10), l.Size.Width)
	assert.Equal(t, float64(11), l.Size.Height)
}

func TestTreeComputeLayoutSkipsRoundingWhenDisabled(t *testing.T) {
	tree := NewTree()
	tree.SetConfig(Config{UseRounding: false})
	leafStyle := DefaultStyle()
	leafStyle.Size = Size[Dimension]{Width: DimLen(10.4), Height: DimLen(10.6)}
	leaf := tree.NewLeaf(leafStyle)

	require.NoError(t, tree.ComputeLayout(leaf, SizeAvailableSpace{
		Width:  Definite(100),
		Height: Definite(100),
	}))

	l, err := tree.Layout(leaf)
	require.NoError(t, err)
	assert.InDelta(t, 10.4, l.Size.Width, 1e-9)
	assert.InDelta(t, 10.6, l.Size.Height, 1e-9)
}

func TestTreeBuildAndFlexLayout(t *testing.T) {
	tree := NewTree()

	leafSpec := func(w, h float64) NodeSpec {
		s := DefaultStyle()
		s.Size = Size[Dimension]{Width: DimLen(w), Height: DimLen(h)}
		return NodeSpec{Style: s}
	}

	rootStyle := DefaultStyle()
	rootStyle.Display = DisplayFlex
	rootStyle.JustifyContent = AlignSpaceBetween

	root, err := tree.Build(NodeSpec{
		Style:    rootStyle,
		Children: []NodeSpec{leafSpec(10, 10), leafSpec(10, 10)},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, tree.ChildCount(root))
	assert.Equal(t, 3, tree.TotalNodeCount())

	require.NoError(t, tree.ComputeLayout(root, SizeAvailableSpace{
		Width:  Definite(100),
		Height: Definite(50),
	}))

	first, err := tree.Layout(tree.ChildAt(root, 0))
	require.NoError(t, err)
	second, err := tree.Layout(tree.ChildAt(root, 1))
	require.NoError(t, err)

	assert.Equal(t, float64(0), first.Location.X)
	assert.Equal(t, float64(90), second.Location.X, "space-between must push the last child to the far edge")
}

func TestTreeRemoveChildAtIndexDetachesWithoutDeleting(t *testing.T) {
	tree := NewTree()
	a := tree.NewLeaf(DefaultStyle())
	b := tree.NewLeaf(DefaultStyle())
	root, err := tree.NewWithChildren(DefaultStyle(), []NodeID{a, b})
	require.NoError(t, err)

	removed, err := tree.RemoveChildAtIndex(root, 0)
	require.NoError(t, err)
	assert.Equal(t, a, removed)
	assert.Equal(t, 1, tree.ChildCount(root))
	assert.Equal(t, b, tree.ChildAt(root, 0))

	_, ok := tree.Parent(a)
	assert.False(t, ok, "removed child must be detached, not deleted")
	_, err = tree.Children(a)
	assert.NoError(t, err, "removed child's own slot must still be alive")
}

func TestTreeReplaceChildAtIndexOutOfBounds(t *testing.T) {
	tree := NewTree()
	a := tree.NewLeaf(DefaultStyle())
	root, err := tree.NewWithChildren(DefaultStyle(), []NodeID{a})
	require.NoError(t, err)

	_, err = tree.ReplaceChildAtIndex(root, 5, a)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrChildIndexOutOfBoundsSentinel)
}

package layout

// Dispatch implements the compute_child_layout behavior. Every concrete
// tree owner's PartialLayoutTree.ComputeChildLayout should simply call this
// (it is the one recursion entrypoint every algorithm calls back into via
// the tree interface, ), optionally wrapped with tracing.
func Dispatch(tree PartialLayoutTree, node NodeID, input LayoutInput) LayoutOutput {
	return dispatchTraced(nil, tree, node, input)
}

func dispatchTraced(tr Tracer, tree PartialLayoutTree, node NodeID, input LayoutInput) LayoutOutput {
	// Step 1: hidden run mode sweeps the whole subtree regardless of the
	// node's own display, clearing caches and writing zero-sized layouts.
	if input.RunMode == PerformHiddenLayout {
		cache := tree.CacheMut(node)
		cache.Clear()
		*tree.UnroundedLayoutMut(node) = Layout{}
		for i := 0; i < tree.ChildCount(node); i++ {
			child := tree.ChildAt(node, i)
			tree.ComputeChildLayout(child, input)
		}
		return LayoutOutput{}
	}

	hasChildren := tree.ChildCount(node) > 0
	// A childless node always behaves as though PerformLayout was
	// requested for caching purposes.
	cacheRunMode := input.RunMode
	if !hasChildren {
		cacheRunMode = PerformLayout
	}

	cache := tree.CacheMut(node)
	if cached, ok := cache.Get(input.KnownDimensions, input.AvailableSpace, cacheRunMode); ok {
		return cached
	}

	style := tree.Style(node)
	var algo LayoutAlgorithm
	switch {
	case style.Display == DisplayNone:
		algo = hiddenAlgorithm{}
	case style.Display == DisplayContents:
		algo = hiddenAlgorithm{}
	case style.Display == DisplayFlex && hasChildren:
		algo = flexboxAlgorithm{}
	case style.Display == DisplayGrid && hasChildren:
		algo = gridAlgorithm{}
	case style.Display == DisplayBlock && hasChildren:
		algo = blockAlgorithm{}
	default:
		algo = leafAlgorithm{}
	}

	if tr != nil {
		tr.Enter(node)
		tr.Algorithm(algo.Name())
	}

	var output LayoutOutput
	switch input.RunMode {
	case PerformLayout:
		output = algo.PerformLayout(tree, node, input)
	case ComputeSize:
		output = LayoutOutputFromSize(algo.MeasureSize(tree, node, input))
	}

	cache.Store(input.KnownDimensions, input.ParentSize, input.AvailableSpace, cacheRunMode, input.SizingMode, output)

	if tr != nil {
		tr.Result(output.Size)
		tr.Exit()
	}

	return output
}

// Tracer is the minimal hook dispatch calls into; internal/tracelog.Tracer
// implements it. The core defines the interface but never imports the
// logging package itself — only the other direction, with internal/tracelog
// importing this package to know NodeID/SizeF and to attach to a *Tree.
type Tracer interface {
	Enter(node NodeID)
	Algorithm(name string)
	Result(size SizeF)
	Exit()
}

// hiddenAlgorithm implements display:None (zero box, subtree swept) and is
// also used defensively for display:Contents nodes reached directly — the
// tree owner is expected to splice Contents children into the parent's
// iteration so this path is normally unreachable for them.
type hiddenAlgorithm struct{}

func (hiddenAlgorithm) Name() string { return "HIDDEN" }

func (hiddenAlgorithm) PerformLayout(tree PartialLayoutTree, node NodeID, input LayoutInput) LayoutOutput {
	for i := 0; i < tree.ChildCount(node); i++ {
		child := tree.ChildAt(node, i)
		tree.ComputeChildLayout(child, LayoutInput{
			AvailableSpace: Size[AvailableSpace]{Width: MaxContent, Height: MaxContent},
			RunMode:        PerformHiddenLayout,
			SizingMode:     InherentSize,
		})
	}
	return LayoutOutput{}
}

func (hiddenAlgorithm) MeasureSize(tree PartialLayoutTree, node NodeID, input LayoutInput) SizeF {
	return SizeF{}
}

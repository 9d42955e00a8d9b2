package layout

// leafAlgorithm implements the LayoutAlgorithm contract for any node with no
// children, regardless of its display — "anything + no children -> leaf".
// It sizes an optional measure function.
type leafAlgorithm struct{}

func (leafAlgorithm) Name() string { return "LEAF" }

func (leafAlgorithm) PerformLayout(tree PartialLayoutTree, node NodeID, input LayoutInput) LayoutOutput {
	style := tree.Style(node)
	measure := tree.MeasureFuncOf(node)
	return computeLeaf(style, measure, input)
}

func (leafAlgorithm) MeasureSize(tree PartialLayoutTree, node NodeID, input LayoutInput) SizeF {
	style := tree.Style(node)
	measure := tree.MeasureFuncOf(node)
	return computeLeaf(style, measure, input).Size
}

// computeLeaf sizes a leaf node in full: aspect ratio, style size, clamps,
// and the measure-function branch.
func computeLeaf(style *Style, measure MeasureFunc, input LayoutInput) LayoutOutput {
	aspectRatio := style.AspectRatioValid()
	parentSize := input.ParentSize

	styleSize := MaybeApplyAspectRatio(MaybeResolve(style.Size, parentSize), aspectRatio)
	minSize := MaybeApplyAspectRatio(MaybeResolve(style.MinSize, parentSize), aspectRatio)
	maxSize := MaybeApplyAspectRatio(MaybeResolve(style.MaxSize, parentSize), aspectRatio)
	clampedStyleSize := MaybeClamp(styleSize, minSize, maxSize)

	// known_dimensions passed in by the parent always wins over style, per
	// the contract (the parent has already decided this axis).
	knownDimensions := sizeOr(input.KnownDimensions, clampedStyleSize)

	padding := ResolveOrZeroRectLP(style.Padding, parentSize.Width)
	border := ResolveOrZeroRectLP(style.Border, parentSize.Width)
	scrollbarGutter := RectF{
		Right:  scrollbarOffset(style.Overflow.X, style.ScrollbarWidth),
		Bottom: scrollbarOffset(style.Overflow.Y, style.ScrollbarWidth),
	}
	contentBoxInset := AddRect(AddRect(padding, border), scrollbarGutter)

	if measure != nil {
		knownContentDimensions := knownDimensions.MaybeSub(contentBoxInset.SumAxes())
		availableContentSpace := SizeAvailableSpace{
			Width:  input.AvailableSpace.Width.MaybeSub(contentBoxInset.HorizontalAxisSum()),
			Height: input.AvailableSpace.Height.MaybeSub(contentBoxInset.VerticalAxisSum()),
		}
		measuredContent := measure(knownContentDimensions, availableContentSpace)
		outer := SizeF{
			Width:  measuredContent.Width + contentBoxInset.HorizontalAxisSum(),
			Height: measuredContent.Height + contentBoxInset.VerticalAxisSum(),
		}
		// known axes are pinned exactly; only the unknown ones take the
		// measured+inset value before the final clamp.
		preClamp := SizeOpt{
			Width:  knownDimensions.Width.Or(Some(outer.Width)),
			Height: knownDimensions.Height.Or(Some(outer.Height)),
		}
		final := MaybeClamp(preClamp, minSize, maxSize)
		size := SizeF{Width: final.Width.OrZero(), Height: final.Height.OrZero()}
		return LayoutOutput{
			Size:           size,
			ContentSize:    size,
			FirstBaselines: Point[Opt]{X: None, Y: Some(size.Height)},
		}
	}

	// No measure function: the leaf is never stretched by itself —
	// an unresolved axis falls back to 0, not to the parent's size.
	final := MaybeClamp(SizeOpt{
		Width:  knownDimensions.Width.Or(Some(0)),
		Height: knownDimensions.Height.Or(Some(0)),
	}, minSize, maxSize)
	size := SizeF{Width: final.Width.OrZero(), Height: final.Height.OrZero()}

	hasExplicitHeight := style.Size.Height.Kind != DimAuto
	canCollapseThrough := size.Height == 0 && padding.Top == 0 && padding.Bottom == 0 &&
		border.Top == 0 && border.Bottom == 0 && !hasExplicitHeight

	return LayoutOutput{
		Size:                      size,
		ContentSize:               size,
		FirstBaselines:            Point[Opt]{X: None, Y: Some(size.Height)},
		MarginsCanCollapseThrough: canCollapseThrough,
	}
}

func sizeOr(a, b SizeOpt) SizeOpt {
	return SizeOpt{Width: a.Width.Or(b.Width), Height: a.Height.Or(b.Height)}
}

func scrollbarOffset(o Overflow, width float64) float64 {
	if o == OverflowScroll {
		return width
	}
	return 0
}

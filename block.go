package layout

// blockAlgorithm implements the one-pass downward block layout: vertical
// margin collapsing, auto-margin resolution, and absolute positioning.
type blockAlgorithm struct{}

func (blockAlgorithm) Name() string { return "BLOCK" }

func (blockAlgorithm) PerformLayout(tree PartialLayoutTree, node NodeID, input LayoutInput) LayoutOutput {
	return computeBlock(tree, node, input)
}

func (blockAlgorithm) MeasureSize(tree PartialLayoutTree, node NodeID, input LayoutInput) SizeF {
	return computeBlock(tree, node, input).Size
}

// blockItem is the intermediate per-child bookkeeping of "Item generation".
type blockItem struct {
	nodeID NodeID
	order  uint32

	size    SizeOpt
	minSize SizeOpt
	maxSize SizeOpt

	position Position
	inset    Rect[LengthPercentageAuto]
	margin   Rect[LengthPercentageAuto]

	computedSize         SizeF
	staticPosition       PointF
	canBeCollapsedThrough bool
	baseline             Opt
}

func computeBlock(tree PartialLayoutTree, nodeID NodeID, input LayoutInput) LayoutOutput {
	style := tree.Style(nodeID)
	parentSize := input.ParentSize
	aspectRatio := style.AspectRatioValid()

	margin := ResolveOrZeroRect(style.Margin, parentSize.Width)
	minSize := MaybeApplyAspectRatio(MaybeResolve(style.MinSize, parentSize), aspectRatio)
	maxSize := MaybeApplyAspectRatio(MaybeResolve(style.MaxSize, parentSize), aspectRatio)
	clampedStyleSize := MaybeClamp(MaybeApplyAspectRatio(MaybeResolve(style.Size, parentSize), aspectRatio), minSize, maxSize)

	// If both min and max are set and max <= min, that pins the axis.
	minMaxDefiniteSize := zipMinMaxPins(minSize, maxSize)

	availableSpaceBasedSize := SizeOpt{
		Width:  input.AvailableSpace.Width.IntoOption().Map(func(v float64) float64 { return v - margin.HorizontalAxisSum() }),
		Height: None,
	}

	styledBasedKnownDimensions := sizeOr(sizeOr(sizeOr(input.KnownDimensions, minMaxDefiniteSize), clampedStyleSize), availableSpaceBasedSize)

	if input.RunMode == ComputeSize {
		if w, wok := styledBasedKnownDimensions.Width.Get(); wok {
			if h, hok := styledBasedKnownDimensions.Height.Get(); hok {
				return LayoutOutputFromSize(SizeF{Width: w, Height: h})
			}
		}
	}

	return computeBlockInner(tree, nodeID, styledBasedKnownDimensions, input)
}

func zipMinMaxPins(min, max SizeOpt) SizeOpt {
	pin := func(mn, mx Opt) Opt {
		mnv, mnok := mn.Get()
		mxv, mxok := mx.Get()
		if mnok && mxok && mxv <= mnv {
			return Some(mnv)
		}
		return None
	}
	return SizeOpt{Width: pin(min.Width, max.Width), Height: pin(min.Height, max.Height)}
}

func computeBlockInner(tree PartialLayoutTree, nodeID NodeID, knownDimensions SizeOpt, input LayoutInput) LayoutOutput {
	style := tree.Style(nodeID)
	parentSize := input.ParentSize
	aspectRatio := style.AspectRatioValid()

	minSize := MaybeApplyAspectRatio(MaybeResolve(style.MinSize, parentSize), aspectRatio)
	maxSize := MaybeApplyAspectRatio(MaybeResolve(style.MaxSize, parentSize), aspectRatio)
	padding := ResolveOrZeroRectLP(style.Padding, parentSize.Width)
	border := ResolveOrZeroRectLP(style.Border, parentSize.Width)

	scrollbarGutter := RectF{
		Right:  scrollbarOffset(style.Overflow.X, style.ScrollbarWidth),
		Bottom: scrollbarOffset(style.Overflow.Y, style.ScrollbarWidth),
	}
	contentBoxInset := AddRect(AddRect(padding, border), scrollbarGutter)

	vmc := input.VerticalMarginsAreCollapsible
	ownMarginsCollapseWithChildren := Line[bool]{
		Start: vmc.Start && !style.Overflow.Y.IsScrollContainer() && style.Position == PositionRelative &&
			padding.Top == 0 && border.Top == 0,
		End: vmc.End && !style.Overflow.Y.IsScrollContainer() && style.Position == PositionRelative &&
			padding.Bottom == 0 && border.Bottom == 0 && style.Size.Height.Kind == DimAuto,
	}
	hasStylesPreventingCollapseThrough := style.Display != DisplayBlock ||
		style.Overflow.Y.IsScrollContainer() ||
		style.Position == PositionAbsolute ||
		padding.Top > 0 || padding.Bottom > 0 || border.Top > 0 || border.Bottom > 0

	items := generateBlockItems(tree, nodeID, sizeOptSub(knownDimensions, contentBoxInset))

	containerOuterWidth, wok := knownDimensions.Width.Get()
	if !wok {
		availableWidth := input.AvailableSpace.Width.MaybeSub(contentBoxInset.HorizontalAxisSum())
		intrinsicWidth := determineContentBasedContainerWidth(tree, items, availableWidth) + contentBoxInset.HorizontalAxisSum()
		containerOuterWidth = clampDefinite(intrinsicWidth, minSize.Width, maxSize.Width)
	}

	if input.RunMode == ComputeSize {
		if h, hok := knownDimensions.Height.Get(); hok {
			return LayoutOutputFromSize(SizeF{Width: containerOuterWidth, Height: h})
		}
	}

	resolvedPadding := ResolveOrZeroRectLP(style.Padding, Some(containerOuterWidth))
	resolvedBorder := ResolveOrZeroRectLP(style.Border, Some(containerOuterWidth))
	resolvedContentBoxInset := AddRect(AddRect(resolvedPadding, resolvedBorder), scrollbarGutter)

	intrinsicOuterHeight, firstChildTopMarginSet, lastChildBottomMarginSet := performFinalLayoutOnInFlowChildren(
		tree, items, containerOuterWidth, resolvedContentBoxInset, resolvedBorder, ownMarginsCollapseWithChildren,
	)

	containerOuterHeight, hok := knownDimensions.Height.Get()
	if !hok {
		containerOuterHeight = clampDefinite(intrinsicOuterHeight, minSize.Height, maxSize.Height)
	}
	finalOuterSize := SizeF{Width: containerOuterWidth, Height: containerOuterHeight}

	if input.RunMode == ComputeSize {
		return LayoutOutputFromSize(finalOuterSize)
	}

	absolutePositionInset := AddRect(resolvedBorder, scrollbarGutter)
	absolutePositionArea := finalOuterSize.Sub(absolutePositionInset)
	absolutePositionOffset := PointF{X: absolutePositionInset.Left, Y: absolutePositionInset.Top}
	performAbsoluteLayoutOnAbsoluteChildren(tree, items, absolutePositionArea, absolutePositionOffset)

	// Hidden children are swept so their caches/layouts clear but they stay
	// in the child order.
	childCount := tree.ChildCount(nodeID)
	for i := 0; i < childCount; i++ {
		child := tree.ChildAt(nodeID, i)
		if tree.Style(child).Display == DisplayNone {
			*tree.UnroundedLayoutMut(child) = LayoutWithOrder(uint32(i))
			tree.ComputeChildLayout(child, LayoutInput{
				AvailableSpace: SizeAvailableSpace{Width: MaxContent, Height: MaxContent},
				RunMode:        PerformHiddenLayout,
				SizingMode:     InherentSize,
			})
		}
	}

	var firstVerticalBaseline Opt
	for _, item := range items {
		if item.position != PositionAbsolute {
			bl := item.baseline.OrElse(item.computedSize.Height)
			firstVerticalBaseline = Some(item.staticPosition.Y + resolvedBorder.Top + bl)
			break
		}
	}

	allInFlowCanCollapseThrough := true
	for _, item := range items {
		if item.position != PositionAbsolute && !item.canBeCollapsedThrough {
			allInFlowCanCollapseThrough = false
			break
		}
	}
	canBeCollapsedThrough := !hasStylesPreventingCollapseThrough && allInFlowCanCollapseThrough

	rawMargin := style.Margin
	topMargin := firstChildTopMarginSet
	if !ownMarginsCollapseWithChildren.Start {
		topMargin = CollapsibleMarginSetFromMargin(rawMargin.Top.ResolveOrZero(parentSize.Width.OrZero()))
	}
	bottomMargin := lastChildBottomMarginSet
	if !ownMarginsCollapseWithChildren.End {
		bottomMargin = CollapsibleMarginSetFromMargin(rawMargin.Bottom.ResolveOrZero(parentSize.Width.OrZero()))
	}

	return LayoutOutput{
		Size:                      finalOuterSize,
		ContentSize:               finalOuterSize,
		FirstBaselines:            Point[Opt]{X: None, Y: firstVerticalBaseline},
		TopMargin:                 topMargin,
		BottomMargin:              bottomMargin,
		MarginsCanCollapseThrough: canBeCollapsedThrough,
	}
}

func clampDefinite(v float64, min, max Opt) float64 {
	if mx, ok := max.Get(); ok {
		if mn, ok := min.Get(); ok && mn > mx {
			mx = mn
		}
		if v > mx {
			v = mx
		}
	}
	if mn, ok := min.Get(); ok && v < mn {
		v = mn
	}
	return v
}

// sizeOptSub subtracts a Rect's axis sums from a SizeOpt, leaving indefinite axes indefinite.
func sizeOptSub(s SizeOpt, inset RectF) SizeOpt {
	return SizeOpt{
		Width:  s.Width.Map(func(v float64) float64 { return v - inset.HorizontalAxisSum() }),
		Height: s.Height.Map(func(v float64) float64 { return v - inset.VerticalAxisSum() }),
	}
}

func generateBlockItems(tree PartialLayoutTree, node NodeID, nodeInnerSize SizeOpt) []*blockItem {
	count := tree.ChildCount(node)
	items := make([]*blockItem, 0, count)
	order := uint32(0)
	for i := 0; i < count; i++ {
		child := tree.ChildAt(node, i)
		style := tree.Style(child)
		if style.Display == DisplayNone {
			continue
		}
		aspectRatio := style.AspectRatioValid()
		items = append(items, &blockItem{
			nodeID:   child,
			order:    order,
			size:     MaybeApplyAspectRatio(MaybeResolve(style.Size, nodeInnerSize), aspectRatio),
			minSize:  MaybeApplyAspectRatio(MaybeResolve(style.MinSize, nodeInnerSize), aspectRatio),
			maxSize:  MaybeApplyAspectRatio(MaybeResolve(style.MaxSize, nodeInnerSize), aspectRatio),
			position: style.Position,
			inset:    style.Inset,
			margin:   style.Margin,
		})
		order++
	}
	return items
}

func determineContentBasedContainerWidth(tree PartialLayoutTree, items []*blockItem, availableWidth AvailableSpace) float64 {
	availableSpace := SizeAvailableSpace{Width: availableWidth, Height: MinContent}
	maxChildWidth := 0.0
	for _, item := range items {
		if item.position == PositionAbsolute {
			continue
		}
		known := MaybeClamp(item.size, item.minSize, item.maxSize)
		itemMarginSum := ResolveOrZeroRect(item.margin, availableSpace.Width.IntoOption()).HorizontalAxisSum()

		width, wok := known.Width.Get()
		if !wok {
			out := tree.ComputeChildLayout(item.nodeID, LayoutInput{
				KnownDimensions: known,
				ParentSize:      sizeNone(),
				AvailableSpace:  SizeAvailableSpace{Width: availableSpace.Width.MaybeSub(itemMarginSum), Height: availableSpace.Height},
				RunMode:         PerformLayout,
				SizingMode:      InherentSize,
				VerticalMarginsAreCollapsible: Line[bool]{Start: true, End: true},
			})
			width = out.Size.Width + itemMarginSum
		}
		if width > maxChildWidth {
			maxChildWidth = width
		}
	}
	return maxChildWidth
}

func performFinalLayoutOnInFlowChildren(
	tree PartialLayoutTree,
	items []*blockItem,
	containerOuterWidth float64,
	resolvedContentBoxInset RectF,
	resolvedBorder RectF,
	ownMarginsCollapseWithChildren Line[bool],
) (float64, CollapsibleMarginSet, CollapsibleMarginSet) {
	containerInnerWidth := containerOuterWidth - resolvedContentBoxInset.HorizontalAxisSum()
	parentSize := SizeOpt{Width: Some(containerOuterWidth), Height: None}
	availableSpace := SizeAvailableSpace{Width: Definite(containerInnerWidth), Height: MinContent}

	// staticPosition is measured from the absolute-positioning containing
	// block's origin (the padding edge, i.e. just inside the border), not
	// from this node's own border-box origin — so it subtracts the border.
	areaRelativeLeft := resolvedContentBoxInset.Left - resolvedBorder.Left
	areaRelativeTop := resolvedContentBoxInset.Top - resolvedBorder.Top

	committedYOffset := resolvedContentBoxInset.Top
	firstChildTopMarginSet := CollapsibleMarginSet{}
	activeSet := CollapsibleMarginSet{}
	isCollapsingWithFirst := true

	for _, item := range items {
		if item.position == PositionAbsolute {
			item.staticPosition = PointF{X: areaRelativeLeft, Y: committedYOffset - resolvedBorder.Top}
			continue
		}

		itemMargin := resolveRectToOption(item.margin, containerOuterWidth)
		itemNonAutoMargin := Rect[float64]{
			Left:   itemMargin.Left.OrZero(),
			Right:  itemMargin.Right.OrZero(),
			Top:    itemMargin.Top.OrZero(),
			Bottom: itemMargin.Bottom.OrZero(),
		}
		itemNonAutoXMarginSum := itemNonAutoMargin.Left + itemNonAutoMargin.Right

		known := MaybeClamp(item.size, item.minSize, item.maxSize)
		if _, ok := known.Width.Get(); !ok {
			known.Width = Some(containerInnerWidth - itemNonAutoXMarginSum)
		}

		itemLayout := tree.ComputeChildLayout(item.nodeID, LayoutInput{
			KnownDimensions: known,
			ParentSize:      parentSize,
			AvailableSpace:  Size[AvailableSpace]{Width: availableSpace.Width.MaybeSub(itemNonAutoXMarginSum), Height: availableSpace.Height},
			RunMode:         PerformLayout,
			SizingMode:      InherentSize,
			VerticalMarginsAreCollapsible: Line[bool]{Start: true, End: true},
		})
		finalSize := itemLayout.Size

		topMarginSet := itemLayout.TopMargin.CollapseWithMargin(itemMargin.Top.OrZero())
		bottomMarginSet := itemLayout.BottomMargin.CollapseWithMargin(itemMargin.Bottom.OrZero())

		freeXSpace := maxF(0, containerInnerWidth-finalSize.Width-itemNonAutoXMarginSum)
		autoMarginCount := boolToInt(!itemMargin.Left.Valid) + boolToInt(!itemMargin.Right.Valid)
		xAxisAutoMarginSize := 0.0
		if autoMarginCount == 2 && !item.size.Width.Valid {
			xAxisAutoMarginSize = 0
		} else if autoMarginCount > 0 {
			xAxisAutoMarginSize = freeXSpace / float64(autoMarginCount)
		}
		resolvedMargin := RectF{
			Left:   itemMargin.Left.OrElse(xAxisAutoMarginSize),
			Right:  itemMargin.Right.OrElse(xAxisAutoMarginSize),
			Top:    topMarginSet.Resolve(),
			Bottom: bottomMarginSet.Resolve(),
		}

		inset := resolveInset(item.inset, containerInnerWidth, 0)
		insetOffsetX := inset.Left.Or(inset.Right.Map(func(v float64) float64 { return -v })).OrZero()
		insetOffsetY := inset.Top.Or(inset.Bottom.Map(func(v float64) float64 { return -v })).OrZero()

		yMarginOffset := 0.0
		if !(isCollapsingWithFirst && ownMarginsCollapseWithChildren.Start) {
			yMarginOffset = activeSet.CollapseWithMargin(resolvedMargin.Top).Resolve()
		}

		item.computedSize = itemLayout.Size
		item.baseline = itemLayout.FirstBaselines.Y
		item.canBeCollapsedThrough = itemLayout.MarginsCanCollapseThrough
		item.staticPosition = PointF{
			X: areaRelativeLeft,
			Y: committedYOffset + activeSet.Resolve() - resolvedBorder.Top,
		}

		*tree.UnroundedLayoutMut(item.nodeID) = Layout{
			Order: item.order,
			Size:  itemLayout.Size,
			Location: PointF{
				X: resolvedContentBoxInset.Left + insetOffsetX + resolvedMargin.Left,
				Y: committedYOffset + insetOffsetY + yMarginOffset,
			},
		}

		if isCollapsingWithFirst {
			if item.canBeCollapsedThrough {
				firstChildTopMarginSet = firstChildTopMarginSet.CollapseWithSet(topMarginSet).CollapseWithSet(bottomMarginSet)
			} else {
				firstChildTopMarginSet = firstChildTopMarginSet.CollapseWithSet(topMarginSet)
				isCollapsingWithFirst = false
			}
		}

		if item.canBeCollapsedThrough {
			activeSet = activeSet.CollapseWithSet(topMarginSet).CollapseWithSet(bottomMarginSet)
		} else {
			committedYOffset += itemLayout.Size.Height + yMarginOffset
			activeSet = bottomMarginSet
		}
	}

	lastChildBottomMarginSet := activeSet
	bottomYMarginOffset := 0.0
	if !ownMarginsCollapseWithChildren.End {
		bottomYMarginOffset = lastChildBottomMarginSet.Resolve()
	}

	committedYOffset += resolvedContentBoxInset.Bottom + bottomYMarginOffset
	contentHeight := maxF(0, committedYOffset)
	return contentHeight, firstChildTopMarginSet, lastChildBottomMarginSet
}

// performAbsoluteLayoutOnAbsoluteChildren implements the absolute
// positioning rule. Note: the margin.bottom non-auto-margin computation
// must use margin.Bottom — not margin.Left, a mistake some CSS layout
// engines carry from copy-pasted per-axis logic.
func performAbsoluteLayoutOnAbsoluteChildren(tree PartialLayoutTree, items []*blockItem, areaSize SizeF, areaOffset PointF) {
	areaWidth := areaSize.Width
	areaHeight := areaSize.Height

	for _, item := range items {
		if item.position != PositionAbsolute {
			continue
		}
		childStyle := tree.Style(item.nodeID)
		if childStyle.Display == DisplayNone || childStyle.Position != PositionAbsolute {
			continue
		}

		aspectRatio := childStyle.AspectRatioValid()
		margin := resolveRectToOption(childStyle.Margin, areaWidth)
		padding := ResolveOrZeroRectLP(childStyle.Padding, Some(areaWidth))
		border := ResolveOrZeroRectLP(childStyle.Border, Some(areaWidth))
		paddingBorderSum := AddRect(padding, border).SumAxes()

		left := childStyle.Inset.Left.ResolveToOption(areaWidth)
		right := childStyle.Inset.Right.ResolveToOption(areaWidth)
		top := childStyle.Inset.Top.ResolveToOption(areaHeight)
		bottom := childStyle.Inset.Bottom.ResolveToOption(areaHeight)

		styleSize := MaybeApplyAspectRatio(MaybeResolve(childStyle.Size, areaSizeOpt(areaSize)), aspectRatio)
		minSize := MaybeApplyAspectRatio(MaybeResolve(childStyle.MinSize, areaSizeOpt(areaSize)), aspectRatio)
		minSize = MaybeMax(minSize, SizeOpt{Width: Some(paddingBorderSum.Width), Height: Some(paddingBorderSum.Height)})
		maxSize := MaybeApplyAspectRatio(MaybeResolve(childStyle.MaxSize, areaSizeOpt(areaSize)), aspectRatio)
		knownDimensions := MaybeClamp(styleSize, minSize, maxSize)

		if _, wok := knownDimensions.Width.Get(); !wok {
			if lv, lok := left.Get(); lok {
				if rv, rok := right.Get(); rok {
					newWidth := areaWidth - margin.Left.OrZero() - margin.Right.OrZero() - lv - rv
					knownDimensions.Width = Some(maxF(newWidth, 0))
					knownDimensions = MaybeClamp(MaybeApplyAspectRatio(knownDimensions, aspectRatio), minSize, maxSize)
				}
			}
		}
		if _, hok := knownDimensions.Height.Get(); !hok {
			if tv, tok := top.Get(); tok {
				if bv, bok := bottom.Get(); bok {
					newHeight := areaHeight - margin.Top.OrZero() - margin.Bottom.OrZero() - tv - bv
					knownDimensions.Height = Some(maxF(newHeight, 0))
					knownDimensions = MaybeClamp(MaybeApplyAspectRatio(knownDimensions, aspectRatio), minSize, maxSize)
				}
			}
		}

		measured := tree.ComputeChildLayout(item.nodeID, LayoutInput{
			KnownDimensions: knownDimensions,
			ParentSize:      areaSizeOpt(areaSize),
			AvailableSpace: Size[AvailableSpace]{
				Width:  Definite(clampDefinite(areaWidth, minSize.Width, maxSize.Width)),
				Height: Definite(clampDefinite(areaHeight, minSize.Height, maxSize.Height)),
			},
			RunMode:    PerformLayout,
			SizingMode: ContentSize,
		})
		finalSize := SizeF{
			Width:  clampDefinite(knownDimensions.Width.OrElse(measured.Size.Width), minSize.Width, maxSize.Width),
			Height: clampDefinite(knownDimensions.Height.OrElse(measured.Size.Height), minSize.Height, maxSize.Height),
		}

		_, leftSet := left.Get()
		_, rightSet := right.Get()
		_, topSet := top.Get()
		_, bottomSet := bottom.Get()
		nonAutoMargin := RectF{
			Left:   boolF(leftSet) * margin.Left.OrZero(),
			Right:  boolF(rightSet) * margin.Right.OrZero(),
			Top:    boolF(topSet) * margin.Top.OrZero(),
			Bottom: boolF(bottomSet) * margin.Bottom.OrZero(), // NOT margin.Left — see the Open Question note above
		}

		absoluteAutoMarginSpaceX := finalSize.Width
		if rightSet {
			absoluteAutoMarginSpaceX = areaSize.Width - right.OrZero() - left.OrZero()
		}
		absoluteAutoMarginSpaceY := finalSize.Height
		if bottomSet {
			absoluteAutoMarginSpaceY = areaSize.Height - bottom.OrZero() - top.OrZero()
		}
		freeSpaceW := absoluteAutoMarginSpaceX - finalSize.Width - nonAutoMargin.HorizontalAxisSum()
		freeSpaceH := absoluteAutoMarginSpaceY - finalSize.Height - nonAutoMargin.VerticalAxisSum()

		autoMarginW := 0.0
		amCountW := boolToInt(!margin.Left.Valid) + boolToInt(!margin.Right.Valid)
		if amCountW == 2 && (!styleSize.Width.Valid || styleSize.Width.Value >= freeSpaceW) {
			autoMarginW = 0
		} else if amCountW > 0 {
			autoMarginW = freeSpaceW / float64(amCountW)
		}
		autoMarginH := 0.0
		amCountH := boolToInt(!margin.Top.Valid) + boolToInt(!margin.Bottom.Valid)
		if amCountH == 2 && (!styleSize.Height.Valid || styleSize.Height.Value >= freeSpaceH) {
			autoMarginH = 0
		} else if amCountH > 0 {
			autoMarginH = freeSpaceH / float64(amCountH)
		}

		resolvedMargin := RectF{
			Left:   margin.Left.OrElse(autoMarginW),
			Right:  margin.Right.OrElse(autoMarginW),
			Top:    margin.Top.OrElse(autoMarginH),
			Bottom: margin.Bottom.OrElse(autoMarginH),
		}

		offsetX := item.staticPosition.X + resolvedMargin.Left
		if lv, ok := left.Get(); ok {
			offsetX = lv + resolvedMargin.Left
		} else if rv, ok := right.Get(); ok {
			offsetX = areaSize.Width - finalSize.Width - rv - resolvedMargin.Right
		}
		offsetY := item.staticPosition.Y + resolvedMargin.Top
		if tv, ok := top.Get(); ok {
			offsetY = tv + resolvedMargin.Top
		} else if bv, ok := bottom.Get(); ok {
			offsetY = areaSize.Height - finalSize.Height - bv - resolvedMargin.Bottom
		}

		*tree.UnroundedLayoutMut(item.nodeID) = Layout{
			Order:    item.order,
			Size:     finalSize,
			Location: PointF{X: areaOffset.X + offsetX, Y: areaOffset.Y + offsetY},
		}
	}
}

func areaSizeOpt(s SizeF) SizeOpt { return SizeOpt{Width: Some(s.Width), Height: Some(s.Height)} }

func resolveRectToOption(r Rect[LengthPercentageAuto], basis float64) Rect[Opt] {
	return Rect[Opt]{
		Left:   r.Left.ResolveToOption(basis),
		Right:  r.Right.ResolveToOption(basis),
		Top:    r.Top.ResolveToOption(basis),
		Bottom: r.Bottom.ResolveToOption(basis),
	}
}

func resolveInset(r Rect[LengthPercentageAuto], widthBasis, heightBasis float64) Rect[Opt] {
	return Rect[Opt]{
		Left:   r.Left.ResolveToOption(widthBasis),
		Right:  r.Right.ResolveToOption(widthBasis),
		Top:    r.Top.ResolveToOption(heightBasis),
		Bottom: r.Bottom.ResolveToOption(heightBasis),
	}
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func boolF(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

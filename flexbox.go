package layout

// flexboxAlgorithm implements item generation, line wrapping, the
// flexible-length resolution loop, cross-axis stretch/alignment, and
// justify/align-content distribution. Grounded on the two-phase
// distribute/layout shape of flexlayout.go's VerticalLayout/HorizontalLayout,
// generalized from that fixed-axis pair into one direction-parametrized
// algorithm that also resolves flex-grow/flex-shrink instead of a single
// pass of leftover-space division.
type flexboxAlgorithm struct{}

func (flexboxAlgorithm) Name() string { return "FLEX" }

func (flexboxAlgorithm) PerformLayout(tree PartialLayoutTree, node NodeID, input LayoutInput) LayoutOutput {
	return computeFlexbox(tree, node, input)
}

func (flexboxAlgorithm) MeasureSize(tree PartialLayoutTree, node NodeID, input LayoutInput) SizeF {
	return computeFlexbox(tree, node, input).Size
}

type flexItem struct {
	nodeID NodeID
	order  uint32

	minMain, maxMain   Opt
	minCross, maxCross Opt

	marginMain  Rect2  // start/end along the main axis
	marginCross Rect2  // start/end along the cross axis

	flexGrow   float64
	flexShrink float64
	alignSelf  Align

	position Position
	inset    Rect[LengthPercentageAuto]
	margin   Rect[LengthPercentageAuto]

	hypotheticalMainSize  float64
	hypotheticalCrossSize float64
	scaledShrinkFactor    float64
	targetMainSize        float64
	frozen                bool
	violation             float64

	crossSize      float64
	offsetMain     float64
	offsetCross    float64
	baseline       Opt
	computedSize   SizeF
	staticPosition PointF
}

// Rect2 is a (start, end) pair of optional margin values along one axis,
// with the "is this an auto margin" bit preserved separately from the
// zero-valued resolution used during flexible-length resolution.
type Rect2 struct {
	Start, End         Opt
	StartAuto, EndAuto bool
}

func (r Rect2) sum() float64 { return r.Start.OrZero() + r.End.OrZero() }

type flexLine struct {
	items       []*flexItem
	crossSize   float64
	offsetCross float64
}

func computeFlexbox(tree PartialLayoutTree, nodeID NodeID, input LayoutInput) LayoutOutput {
	style := tree.Style(nodeID)
	parentSize := input.ParentSize
	aspectRatio := style.AspectRatioValid()

	margin := ResolveOrZeroRect(style.Margin, parentSize.Width)
	padding := ResolveOrZeroRectLP(style.Padding, parentSize.Width)
	border := ResolveOrZeroRectLP(style.Border, parentSize.Width)
	scrollbarGutter := RectF{
		Right:  scrollbarOffset(style.Overflow.X, style.ScrollbarWidth),
		Bottom: scrollbarOffset(style.Overflow.Y, style.ScrollbarWidth),
	}
	contentBoxInset := AddRect(AddRect(padding, border), scrollbarGutter)

	minSize := MaybeApplyAspectRatio(MaybeResolve(style.MinSize, parentSize), aspectRatio)
	maxSize := MaybeApplyAspectRatio(MaybeResolve(style.MaxSize, parentSize), aspectRatio)
	styleSize := MaybeApplyAspectRatio(MaybeResolve(style.Size, parentSize), aspectRatio)
	clampedStyleSize := MaybeClamp(styleSize, minSize, maxSize)

	knownDimensions := sizeOr(input.KnownDimensions, clampedStyleSize)
	availableSpaceBasedSize := SizeOpt{
		Width:  input.AvailableSpace.Width.IntoOption().Map(func(v float64) float64 { return v - margin.HorizontalAxisSum() }),
		Height: input.AvailableSpace.Height.IntoOption().Map(func(v float64) float64 { return v - margin.VerticalAxisSum() }),
	}
	knownDimensions = sizeOr(knownDimensions, availableSpaceBasedSize)

	if input.RunMode == ComputeSize {
		if w, wok := knownDimensions.Width.Get(); wok {
			if h, hok := knownDimensions.Height.Get(); hok {
				return LayoutOutputFromSize(SizeF{Width: w, Height: h})
			}
		}
	}

	return computeFlexboxInner(tree, nodeID, style, knownDimensions, minSize, maxSize, contentBoxInset, border, scrollbarGutter, input)
}

func computeFlexboxInner(
	tree PartialLayoutTree,
	nodeID NodeID,
	style *Style,
	knownDimensions SizeOpt,
	minSize, maxSize SizeOpt,
	contentBoxInset RectF,
	border RectF,
	scrollbarGutter RectF,
	input LayoutInput,
) LayoutOutput {
	dir := style.FlexDirection
	isRow := dir.isRow()
	isReverse := dir.isReverse()
	wrap := style.FlexWrap != NoWrap
	wrapReverse := style.FlexWrap == WrapReverse

	contentBoxSize := sizeOptSub(knownDimensions, contentBoxInset)
	contentMain, contentCross := mainCrossOpt(contentBoxSize, isRow)

	availableSpace := Size[AvailableSpace]{
		Width:  availableSpaceForAxis(contentBoxSize.Width, input.AvailableSpace.Width, contentBoxInset.HorizontalAxisSum()),
		Height: availableSpaceForAxis(contentBoxSize.Height, input.AvailableSpace.Height, contentBoxInset.VerticalAxisSum()),
	}
	availMain, availCross := mainCrossAvailableSpace(availableSpace, isRow)

	gapMain, gapCross := resolveGap(style.Gap, contentBoxSize, isRow)

	items, absoluteItems := generateFlexItems(tree, nodeID, style, contentBoxSize, availableSpace, isRow)

	mainSizeForWrap, hasMainBound := wrapBound(contentMain, availMain)
	lines := collectFlexLines(items, mainSizeForWrap, hasMainBound, wrap, gapMain)

	for _, line := range lines {
		lineMain := mainSizeForLine(line, contentMain, gapMain)
		resolveFlexibleLengths(line, lineMain, gapMain)
	}

	for _, line := range lines {
		for _, item := range line.items {
			crossKnown := item.crossSizeIfStretchOrDefinite(contentCross)
			_, measured := measureFlexItemContent(tree, item, item.targetMainSize, crossKnown, availCross, isRow)
			item.hypotheticalCrossSize = clampDefinite(measured, item.minCross, item.maxCross)
		}
	}

	totalCross := 0.0
	for i, line := range lines {
		cs := 0.0
		for _, item := range line.items {
			if item.hypotheticalCrossSize > cs {
				cs = item.hypotheticalCrossSize
			}
		}
		if len(lines) == 1 {
			if v, ok := contentCross.Get(); ok && cs < v {
				cs = v
			}
		}
		line.crossSize = cs
		totalCross += cs
		if i > 0 {
			totalCross += gapCross
		}
	}

	containerCrossSize, crossKnownAlready := contentCross.Get()
	if !crossKnownAlready {
		_, crossAxisMin := mainCrossOpt(minSize, isRow)
		_, crossAxisMax := mainCrossOpt(maxSize, isRow)
		containerCrossSize = clampDefinite(totalCross, crossAxisMin, crossAxisMax)
	}

	distributeAlignContent(lines, style.AlignContent, containerCrossSize, totalCross, gapCross, wrapReverse)

	for _, line := range lines {
		for _, item := range line.items {
			alignItemCross(item, line, style.AlignItems, containerCrossSize)
		}
	}

	for _, line := range lines {
		lineMain := mainSizeForLine(line, contentMain, gapMain)
		justifyMain(line, style.JustifyContent, lineMain, gapMain)
		if isReverse {
			for _, item := range line.items {
				item.offsetMain = lineMain - item.offsetMain - item.targetMainSize
			}
		}
	}

	containerMainSize, mainKnownAlready := contentMain.Get()
	if !mainKnownAlready {
		maxLineMain := 0.0
		for _, line := range lines {
			lm := 0.0
			for i, item := range line.items {
				lm += item.targetMainSize + item.marginMain.sum()
				if i > 0 {
					lm += gapMain
				}
			}
			if lm > maxLineMain {
				maxLineMain = lm
			}
		}
		_, mainAxisMin := mainCrossOpt(minSize, isRow)
		_, mainAxisMax := mainCrossOpt(maxSize, isRow)
		containerMainSize = clampDefinite(maxLineMain, mainAxisMin, mainAxisMax)
	}

	contentBoxOrigin := PointF{X: contentBoxInset.Left, Y: contentBoxInset.Top}

	var firstBaseline Opt
	for _, line := range lines {
		for i, item := range line.items {
			knownMain, knownCross := item.targetMainSize, item.crossSize
			known := sizeFromMainCross(Some(knownMain), Some(knownCross), isRow)
			itemLayout := tree.ComputeChildLayout(item.nodeID, LayoutInput{
				KnownDimensions: known,
				ParentSize:      sizeFromMainCross(Some(mainSizeForLine(line, contentMain, gapMain)), Some(containerCrossSize), isRow),
				AvailableSpace:  sizeFromMainCrossAvailable(Definite(knownMain), Definite(knownCross), isRow),
				RunMode:         PerformLayout,
				SizingMode:      InherentSize,
			})
			item.computedSize = itemLayout.Size
			item.baseline = itemLayout.FirstBaselines.Y

			loc := mainCrossToPoint(item.offsetMain, line.offsetCross+item.offsetCross, isRow)
			*tree.UnroundedLayoutMut(item.nodeID) = Layout{
				Order: item.order,
				Size:  itemLayout.Size,
				Location: PointF{
					X: contentBoxOrigin.X + loc.X,
					Y: contentBoxOrigin.Y + loc.Y,
				},
			}
			item.staticPosition = PointF{
				X: contentBoxOrigin.X - border.Left + loc.X,
				Y: contentBoxOrigin.Y - border.Top + loc.Y,
			}

			if i == 0 && !firstBaseline.Valid {
				bl := item.baseline.OrElse(item.computedSize.Height)
				firstBaseline = Some(loc.Y + bl)
			}
		}
	}

	finalOuterSize := sizeFromMainCross(Some(containerMainSize), Some(containerCrossSize), isRow)
	finalOuterSize.Width += contentBoxInset.HorizontalAxisSum()
	finalOuterSize.Height += contentBoxInset.VerticalAxisSum()

	// Absolutely positioned children's containing block is the padding edge
	// (just inside the border), mirroring block.go's handling.
	areaOffset := PointF{X: border.Left + scrollbarGutter.Left, Y: border.Top + scrollbarGutter.Top}
	areaRelativeOrigin := PointF{
		X: contentBoxOrigin.X - areaOffset.X,
		Y: contentBoxOrigin.Y - areaOffset.Y,
	}
	blockAbsoluteItems := make([]*blockItem, 0, len(absoluteItems))
	for _, it := range absoluteItems {
		blockAbsoluteItems = append(blockAbsoluteItems, &blockItem{
			nodeID:         it.nodeID,
			order:          it.order,
			position:       PositionAbsolute,
			inset:          it.inset,
			margin:         it.margin,
			staticPosition: areaRelativeOrigin,
		})
	}
	absoluteArea := finalOuterSize.Sub(AddRect(border, scrollbarGutter))
	performAbsoluteLayoutOnAbsoluteChildren(tree, blockAbsoluteItems, absoluteArea, areaOffset)

	sweepHiddenChildren(tree, nodeID)

	return LayoutOutput{
		Size:           finalOuterSize,
		ContentSize:    finalOuterSize,
		FirstBaselines: Point[Opt]{X: None, Y: firstBaseline},
	}
}

func sweepHiddenChildren(tree PartialLayoutTree, nodeID NodeID) {
	count := tree.ChildCount(nodeID)
	for i := 0; i < count; i++ {
		child := tree.ChildAt(nodeID, i)
		if tree.Style(child).Display == DisplayNone {
			*tree.UnroundedLayoutMut(child) = LayoutWithOrder(uint32(i))
			tree.ComputeChildLayout(child, LayoutInput{
				AvailableSpace: Size[AvailableSpace]{Width: MaxContent, Height: MaxContent},
				RunMode:        PerformHiddenLayout,
				SizingMode:     InherentSize,
			})
		}
	}
}

func (item *flexItem) crossSizeIfStretchOrDefinite(contentCross Opt) Opt {
	if item.alignSelf == AlignStretch {
		return contentCross
	}
	return None
}

func generateFlexItems(
	tree PartialLayoutTree, node NodeID, style *Style, contentBoxSize SizeOpt, availableSpace SizeAvailableSpace, isRow bool,
) ([]*flexItem, []*flexItem) {
	containerMain, _ := mainCrossOpt(contentBoxSize, isRow)
	containerWidth := contentBoxSize.Width.OrZero()

	count := tree.ChildCount(node)
	items := make([]*flexItem, 0, count)
	absolute := make([]*flexItem, 0)
	order := uint32(0)
	for i := 0; i < count; i++ {
		child := tree.ChildAt(node, i)
		childStyle := tree.Style(child)
		if childStyle.Display == DisplayNone {
			continue
		}
		aspectRatio := childStyle.AspectRatioValid()
		minSize := MaybeApplyAspectRatio(MaybeResolve(childStyle.MinSize, contentBoxSize), aspectRatio)
		maxSize := MaybeApplyAspectRatio(MaybeResolve(childStyle.MaxSize, contentBoxSize), aspectRatio)
		minMain, minCross := mainCrossOpt(minSize, isRow)
		maxMain, maxCross := mainCrossOpt(maxSize, isRow)

		margin := resolveRectToOption(childStyle.Margin, containerWidth)
		marginMain, marginCross := rect2FromRect(margin, childStyle.Margin, isRow)

		item := &flexItem{
			nodeID:      child,
			order:       order,
			minMain:     minMain,
			maxMain:     maxMain,
			minCross:    minCross,
			maxCross:    maxCross,
			marginMain:  marginMain,
			marginCross: marginCross,
			flexGrow:    childStyle.FlexGrow,
			flexShrink:  childStyle.FlexShrink,
			alignSelf:   resolveAlignSelf(childStyle.AlignSelf, style.AlignItems),
			position:    childStyle.Position,
			inset:       childStyle.Inset,
			margin:      childStyle.Margin,
		}
		order++

		if childStyle.Position == PositionAbsolute {
			absolute = append(absolute, item)
			continue
		}

		basis := flexBasisOf(childStyle, containerMain, isRow)
		var hypotheticalMain float64
		if v, ok := basis.Get(); ok {
			hypotheticalMain = v
		} else {
			hypotheticalMain, _ = measureFlexItemContent(tree, item, 0, None, availCrossFor(availableSpace, isRow), isRow)
		}
		item.hypotheticalMainSize = clampDefinite(hypotheticalMain, minMain, maxMain)
		items = append(items, item)
	}
	return items, absolute
}

// resolveAlignSelf implements "align-self: auto" (its unset, zero-value
// state) inheriting the container's align-items.
func resolveAlignSelf(self, parentAlignItems Align) Align {
	if self == AlignStart {
		return parentAlignItems
	}
	return self
}

func flexBasisOf(style *Style, containerMain Opt, isRow bool) Opt {
	if style.FlexBasis.Kind != DimAuto {
		if v, ok := style.FlexBasis.Resolve(containerMain).Get(); ok {
			return Some(v)
		}
	}
	sizeMain, _ := mainCrossDim(style.Size, isRow)
	return sizeMain.Resolve(containerMain)
}

func measureFlexItemContent(tree PartialLayoutTree, item *flexItem, mainSize float64, crossKnown Opt, availCross AvailableSpace, isRow bool) (main, cross float64) {
	known := sizeFromMainCross(Some(mainSize), crossKnown, isRow)
	avail := sizeFromMainCrossAvailable(MaxContent, availCross, isRow)
	out := tree.ComputeChildLayout(item.nodeID, LayoutInput{
		KnownDimensions: known,
		AvailableSpace:  avail,
		RunMode:         ComputeSize,
		SizingMode:      ContentSize,
	})
	return out.Size.MainCross(isRow)
}

func availCrossFor(availableSpace SizeAvailableSpace, isRow bool) AvailableSpace {
	_, cross := mainCrossAvailableSpace(availableSpace, isRow)
	return cross
}

func wrapBound(contentMain Opt, availMain AvailableSpace) (float64, bool) {
	if v, ok := contentMain.Get(); ok {
		return v, true
	}
	if availMain.IsDefinite() {
		return availMain.UnwrapOr(0), true
	}
	return 0, false
}

func collectFlexLines(items []*flexItem, bound float64, hasBound bool, wrap bool, gapMain float64) []*flexLine {
	if !wrap || !hasBound || len(items) == 0 {
		if len(items) == 0 {
			return nil
		}
		return []*flexLine{{items: items}}
	}
	var lines []*flexLine
	var current []*flexItem
	used := 0.0
	for _, item := range items {
		outer := item.hypotheticalMainSize + item.marginMain.sum()
		addGap := 0.0
		if len(current) > 0 {
			addGap = gapMain
		}
		if len(current) > 0 && used+addGap+outer > bound {
			lines = append(lines, &flexLine{items: current})
			current = nil
			used = 0
			addGap = 0
		}
		current = append(current, item)
		used += addGap + outer
	}
	if len(current) > 0 {
		lines = append(lines, &flexLine{items: current})
	}
	return lines
}

func mainSizeForLine(line *flexLine, contentMain Opt, gapMain float64) float64 {
	if v, ok := contentMain.Get(); ok {
		return v
	}
	sum := 0.0
	for i, item := range line.items {
		sum += item.hypotheticalMainSize + item.marginMain.sum()
		if i > 0 {
			sum += gapMain
		}
	}
	return sum
}

// resolveFlexibleLengths implements the CSS "resolve the flexible lengths"
// loop: iteratively distribute remaining main-axis space by
// flex-grow or scaled flex-shrink factor, freezing items whose target
// violates their min/max, until every item is frozen.
func resolveFlexibleLengths(line *flexLine, containerMain float64, gapMain float64) {
	n := len(line.items)
	if n == 0 {
		return
	}
	for _, it := range line.items {
		it.targetMainSize = it.hypotheticalMainSize
		it.frozen = false
		it.scaledShrinkFactor = it.flexShrink * it.hypotheticalMainSize
	}

	usedSpace := gapMain * float64(maxInt(n-1, 0))
	for _, it := range line.items {
		usedSpace += it.hypotheticalMainSize + it.marginMain.sum()
	}
	growing := containerMain-usedSpace > 0

	for _, it := range line.items {
		if growing && it.flexGrow == 0 {
			it.frozen = true
		}
		if !growing && it.flexShrink == 0 {
			it.frozen = true
		}
	}

	for iter := 0; iter <= n; iter++ {
		unfrozenCount := 0
		used := gapMain * float64(maxInt(n-1, 0))
		sumGrow, sumShrink := 0.0, 0.0
		for _, it := range line.items {
			if it.frozen {
				used += it.targetMainSize + it.marginMain.sum()
			} else {
				unfrozenCount++
				used += it.hypotheticalMainSize + it.marginMain.sum()
				sumGrow += it.flexGrow
				sumShrink += it.scaledShrinkFactor
			}
		}
		if unfrozenCount == 0 {
			break
		}
		free := containerMain - used
		totalViolation := 0.0
		for _, it := range line.items {
			if it.frozen {
				continue
			}
			target := it.hypotheticalMainSize
			if growing && sumGrow > 0 {
				target += free * (it.flexGrow / sumGrow)
			} else if !growing && sumShrink > 0 {
				target += free * (it.scaledShrinkFactor / sumShrink)
			}
			clamped := clampDefinite(target, it.minMain, it.maxMain)
			it.violation = clamped - target
			it.targetMainSize = clamped
			totalViolation += it.violation
		}
		if totalViolation == 0 {
			for _, it := range line.items {
				it.frozen = true
			}
			break
		} else if totalViolation > 0 {
			for _, it := range line.items {
				if !it.frozen && it.violation > 0 {
					it.frozen = true
				}
			}
		} else {
			for _, it := range line.items {
				if !it.frozen && it.violation < 0 {
					it.frozen = true
				}
			}
		}
	}
}

func distributeAlignContent(lines []*flexLine, align Align, containerCross, totalCross, gapCross float64, wrapReverse bool) {
	if len(lines) == 0 {
		return
	}
	extra := containerCross - totalCross
	if extra < 0 {
		extra = 0
	}
	n := len(lines)

	var start, between float64
	switch align {
	case AlignCenter:
		start = extra / 2
	case AlignEnd, AlignFlexEnd:
		start = extra
	case AlignSpaceBetween:
		if n > 1 {
			between = extra / float64(n-1)
		}
	case AlignSpaceAround:
		between = extra / float64(n)
		start = between / 2
	case AlignSpaceEvenly:
		between = extra / float64(n+1)
		start = between
	case AlignStretch:
		if n > 0 {
			addPerLine := extra / float64(n)
			for _, l := range lines {
				l.crossSize += addPerLine
			}
		}
	}

	cursor := start
	ordered := lines
	if wrapReverse {
		ordered = make([]*flexLine, len(lines))
		for i, l := range lines {
			ordered[len(lines)-1-i] = l
		}
	}
	for i, l := range ordered {
		l.offsetCross = cursor
		cursor += l.crossSize + gapCross
		if align == AlignSpaceBetween || align == AlignSpaceAround || align == AlignSpaceEvenly {
			cursor += between
		}
		_ = i
	}
}

func alignItemCross(item *flexItem, line *flexLine, containerAlignItems Align, containerCrossSize float64) {
	align := item.alignSelf
	free := line.crossSize - item.hypotheticalCrossSize

	switch align {
	case AlignStretch:
		if !item.marginCross.StartAuto && !item.marginCross.EndAuto {
			item.crossSize = line.crossSize - item.marginCross.sum()
		} else {
			item.crossSize = item.hypotheticalCrossSize
		}
		item.offsetCross = item.marginCross.Start.OrZero()
	case AlignCenter:
		item.crossSize = item.hypotheticalCrossSize
		item.offsetCross = free/2 + item.marginCross.Start.OrZero()
	case AlignEnd, AlignFlexEnd:
		item.crossSize = item.hypotheticalCrossSize
		item.offsetCross = free + item.marginCross.Start.OrZero() - item.marginCross.End.OrZero()
	case AlignBaseline:
		item.crossSize = item.hypotheticalCrossSize
		item.offsetCross = item.marginCross.Start.OrZero()
	default: // AlignStart, AlignFlexStart
		item.crossSize = item.hypotheticalCrossSize
		item.offsetCross = item.marginCross.Start.OrZero()
	}
	_ = containerCrossSize
}

func justifyMain(line *flexLine, justify Align, containerMain float64, gapMain float64) {
	n := len(line.items)
	if n == 0 {
		return
	}
	used := gapMain * float64(maxInt(n-1, 0))
	autoMarginCount := 0
	for _, it := range line.items {
		used += it.targetMainSize + it.marginMain.sum()
		if it.marginMain.StartAuto {
			autoMarginCount++
		}
		if it.marginMain.EndAuto {
			autoMarginCount++
		}
	}
	free := containerMain - used
	if free < 0 {
		free = 0
	}

	if autoMarginCount > 0 {
		per := free / float64(autoMarginCount)
		cursor := 0.0
		for _, it := range line.items {
			start := it.marginMain.Start.OrZero()
			if it.marginMain.StartAuto {
				start = per
			}
			cursor += start
			it.offsetMain = cursor
			cursor += it.targetMainSize
			end := it.marginMain.End.OrZero()
			if it.marginMain.EndAuto {
				end = per
			}
			cursor += end + gapMain
		}
		return
	}

	var start, between float64
	switch justify {
	case AlignCenter:
		start = free / 2
	case AlignEnd, AlignFlexEnd:
		start = free
	case AlignSpaceBetween:
		if n > 1 {
			between = free / float64(n-1)
		}
	case AlignSpaceAround:
		between = free / float64(n)
		start = between / 2
	case AlignSpaceEvenly:
		between = free / float64(n+1)
		start = between
	}

	cursor := start
	for _, it := range line.items {
		cursor += it.marginMain.Start.OrZero()
		it.offsetMain = cursor
		cursor += it.targetMainSize + it.marginMain.End.OrZero() + gapMain + between
	}
}


func rect2FromRect(opt Rect[Opt], raw Rect[LengthPercentageAuto], isRow bool) (main, cross Rect2) {
	if isRow {
		main = Rect2{Start: opt.Left, End: opt.Right, StartAuto: raw.Left.IsAuto(), EndAuto: raw.Right.IsAuto()}
		cross = Rect2{Start: opt.Top, End: opt.Bottom, StartAuto: raw.Top.IsAuto(), EndAuto: raw.Bottom.IsAuto()}
	} else {
		main = Rect2{Start: opt.Top, End: opt.Bottom, StartAuto: raw.Top.IsAuto(), EndAuto: raw.Bottom.IsAuto()}
		cross = Rect2{Start: opt.Left, End: opt.Right, StartAuto: raw.Left.IsAuto(), EndAuto: raw.Right.IsAuto()}
	}
	return
}

func mainCrossOpt(s SizeOpt, isRow bool) (main, cross Opt) {
	if isRow {
		return s.Width, s.Height
	}
	return s.Height, s.Width
}

func mainCrossDim(s Size[Dimension], isRow bool) (main, cross Dimension) {
	if isRow {
		return s.Width, s.Height
	}
	return s.Height, s.Width
}

func mainCrossAvailableSpace(s SizeAvailableSpace, isRow bool) (main, cross AvailableSpace) {
	if isRow {
		return s.Width, s.Height
	}
	return s.Height, s.Width
}

func sizeFromMainCross(main, cross Opt, isRow bool) SizeOpt {
	if isRow {
		return SizeOpt{Width: main, Height: cross}
	}
	return SizeOpt{Width: cross, Height: main}
}

func sizeFromMainCrossAvailable(main, cross AvailableSpace, isRow bool) SizeAvailableSpace {
	if isRow {
		return SizeAvailableSpace{Width: main, Height: cross}
	}
	return SizeAvailableSpace{Width: cross, Height: main}
}

func mainCrossToPoint(main, cross float64, isRow bool) PointF {
	if isRow {
		return PointF{X: main, Y: cross}
	}
	return PointF{X: cross, Y: main}
}

func availableSpaceForAxis(known Opt, outer AvailableSpace, inset float64) AvailableSpace {
	if v, ok := known.Get(); ok {
		return Definite(v)
	}
	return outer.MaybeSub(inset)
}

func resolveGap(gap Size[LengthPercentage], contentBoxSize SizeOpt, isRow bool) (main, cross float64) {
	w := gap.Width.Resolve(contentBoxSize.Width.OrZero())
	h := gap.Height.Resolve(contentBoxSize.Height.OrZero())
	if isRow {
		return w, h
	}
	return h, w
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

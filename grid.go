package layout

import "math"

// gridAlgorithm implements line-based placement (explicit + auto),
// implicit track creation, the per-axis track sizing algorithm, content
// alignment, and absolutely-positioned grid items. It shares the same
// pipeline shape as block.go/flexbox.go (content-box inset -> item
// generation -> per-axis sizing -> final placement -> absolute children)
// generalized to two independently-sized, line-indexed track lists instead
// of one main/cross pair.
type gridAlgorithm struct{}

func (gridAlgorithm) Name() string { return "GRID" }

func (gridAlgorithm) PerformLayout(tree PartialLayoutTree, node NodeID, input LayoutInput) LayoutOutput {
	return computeGrid(tree, node, input)
}

func (gridAlgorithm) MeasureSize(tree PartialLayoutTree, node NodeID, input LayoutInput) SizeF {
	return computeGrid(tree, node, input).Size
}

// gridTrack is one row or column track, or one of the zero-sized edge
// tracks / gutter tracks interleaved between content tracks.
type gridTrack struct {
	isGutter     bool
	min          MinTrackSizingFunction
	max          MaxTrackSizingFunction
	base         float64
	growthLimit  float64 // +Inf when the max function is not definite/fr
	offset       float64 // cumulative start position, filled after sizing
}

type gridItem struct {
	nodeID NodeID
	order  uint32

	rowStart, rowEnd int // content-track indices (0-based, span [start,end))
	colStart, colEnd int

	position Position
	inset    Rect[LengthPercentageAuto]
	margin   Rect[LengthPercentageAuto]
	justifySelf Align
	alignSelf   Align

	rowAuto, colAuto bool // both ends Auto on that axis - needs auto-placement
}

func computeGrid(tree PartialLayoutTree, nodeID NodeID, input LayoutInput) LayoutOutput {
	style := tree.Style(nodeID)
	parentSize := input.ParentSize
	aspectRatio := style.AspectRatioValid()

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
	margin := ResolveOrZeroRect(style.Margin, parentSize.Width)
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

	return computeGridInner(tree, nodeID, style, knownDimensions, minSize, maxSize, contentBoxInset, border, scrollbarGutter, input)
}

func computeGridInner(
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
	contentBoxSize := sizeOptSub(knownDimensions, contentBoxInset)

	items, absoluteItems := generateGridItems(tree, nodeID, style)
	placeGridItems(items, style.GridAutoFlow)

	rowCount, colCount := trackSpanExtent(items, len(style.GridTemplateRows), len(style.GridTemplateColumns))

	rowTracks := buildTracks(style.GridTemplateRows, style.GridAutoRows, rowCount)
	colTracks := buildTracks(style.GridTemplateColumns, style.GridAutoColumns, colCount)

	rowGap := style.Gap.Height.Resolve(contentBoxSize.Height.OrZero())
	colGap := style.Gap.Width.Resolve(contentBoxSize.Width.OrZero())
	applyGutterSize(rowTracks, rowGap)
	applyGutterSize(colTracks, colGap)

	sizeTracks(tree, rowTracks, items, contentBoxSize.Height, true)
	sizeTracks(tree, colTracks, items, contentBoxSize.Width, false)

	totalRowSize := trackListSize(rowTracks)
	totalColSize := trackListSize(colTracks)

	containerHeight, hKnown := contentBoxSize.Height.Get()
	if !hKnown {
		_, rowMax := mainCrossOpt(maxSize, false)
		_, rowMin := mainCrossOpt(minSize, false)
		containerHeight = clampDefinite(totalRowSize, rowMin, rowMax)
	}
	containerWidth, wKnown := contentBoxSize.Width.Get()
	if !wKnown {
		colMin, _ := mainCrossOpt(minSize, true)
		colMax, _ := mainCrossOpt(maxSize, true)
		containerWidth = clampDefinite(totalColSize, colMin, colMax)
	}

	alignTracks(rowTracks, style.AlignContent, containerHeight, totalRowSize)
	alignTracks(colTracks, style.JustifyContent, containerWidth, totalColSize)

	contentBoxOrigin := PointF{X: contentBoxInset.Left, Y: contentBoxInset.Top}

	var firstBaseline Opt
	for idx, item := range items {
		area := itemArea(rowTracks, colTracks, item)
		known := SizeOpt{Width: Some(area.Size.Width), Height: Some(area.Size.Height)}
		itemLayout := tree.ComputeChildLayout(item.nodeID, LayoutInput{
			KnownDimensions: known,
			ParentSize:      SizeOpt{Width: Some(containerWidth), Height: Some(containerHeight)},
			AvailableSpace:  SizeAvailableSpace{Width: Definite(area.Size.Width), Height: Definite(area.Size.Height)},
			RunMode:         PerformLayout,
			SizingMode:      InherentSize,
		})

		loc := alignWithinArea(itemLayout.Size, area, item.justifySelf, item.alignSelf)
		*tree.UnroundedLayoutMut(item.nodeID) = Layout{
			Order: item.order,
			Size:  itemLayout.Size,
			Location: PointF{
				X: contentBoxOrigin.X + loc.X,
				Y: contentBoxOrigin.Y + loc.Y,
			},
		}
		if idx == 0 {
			bl := itemLayout.FirstBaselines.Y.OrElse(itemLayout.Size.Height)
			firstBaseline = Some(loc.Y + bl)
		}
	}

	finalOuterSize := SizeF{
		Width:  containerWidth + contentBoxInset.HorizontalAxisSum(),
		Height: containerHeight + contentBoxInset.VerticalAxisSum(),
	}

	// Absolutely positioned children: an item whose
	// placement is fully Auto on both axes is positioned relative to the
	// padding box like block.go's absolute children; one with an explicit
	// row/column reference is positioned relative to that cell's area.
	absolutePositionInset := AddRect(border, scrollbarGutter)
	paddingBoxArea := finalOuterSize.Sub(absolutePositionInset)
	paddingBoxOffset := PointF{X: absolutePositionInset.Left, Y: absolutePositionInset.Top}

	for _, it := range absoluteItems {
		area := paddingBoxAreaFor(it, rowTracks, colTracks, contentBoxOrigin, absolutePositionInset, paddingBoxArea)
		blockItems := []*blockItem{{
			nodeID:         it.nodeID,
			order:          it.order,
			position:       PositionAbsolute,
			inset:          it.inset,
			margin:         it.margin,
			staticPosition: PointF{},
		}}
		areaOffset := PointF{X: paddingBoxOffset.X + area.offset.X, Y: paddingBoxOffset.Y + area.offset.Y}
		performAbsoluteLayoutOnAbsoluteChildren(tree, blockItems, area.size, areaOffset)
	}

	sweepHiddenChildren(tree, nodeID)

	return LayoutOutput{
		Size:           finalOuterSize,
		ContentSize:    finalOuterSize,
		FirstBaselines: Point[Opt]{X: None, Y: firstBaseline},
	}
}

// absoluteArea is the area an absolutely positioned grid item is measured
// against: either the padding box (both placements Auto) or a named cell
// (offset given relative to the padding box's own origin; computeGrid adds it
// to the padding-box offset to form the area origin the insets resolve from).
type absoluteArea struct {
	size   SizeF
	offset PointF
}

func paddingBoxAreaFor(it *gridItem, rowTracks, colTracks []*gridTrack, contentBoxOrigin PointF, absolutePositionInset RectF, paddingBoxArea SizeF) absoluteArea {
	if it.rowAuto && it.colAuto {
		return absoluteArea{size: paddingBoxArea, offset: PointF{}}
	}
	area := itemArea(rowTracks, colTracks, it)
	cellOrigin := PointF{
		X: contentBoxOrigin.X + area.Location.X - absolutePositionInset.Left,
		Y: contentBoxOrigin.Y + area.Location.Y - absolutePositionInset.Top,
	}
	return absoluteArea{size: area.Size, offset: cellOrigin}
}

func generateGridItems(tree PartialLayoutTree, nodeID NodeID, style *Style) ([]*gridItem, []*gridItem) {
	count := tree.ChildCount(nodeID)
	items := make([]*gridItem, 0, count)
	absolute := make([]*gridItem, 0)
	order := uint32(0)
	explicitRows := len(style.GridTemplateRows)
	explicitCols := len(style.GridTemplateColumns)

	for i := 0; i < count; i++ {
		child := tree.ChildAt(nodeID, i)
		childStyle := tree.Style(child)
		if childStyle.Display == DisplayNone {
			continue
		}

		rowStart, rowEnd, rowAuto := resolvePlacement(childStyle.GridRow, explicitRows)
		colStart, colEnd, colAuto := resolvePlacement(childStyle.GridColumn, explicitCols)

		item := &gridItem{
			nodeID:      child,
			order:       order,
			rowStart:    rowStart,
			rowEnd:      rowEnd,
			colStart:    colStart,
			colEnd:      colEnd,
			rowAuto:     rowAuto,
			colAuto:     colAuto,
			position:    childStyle.Position,
			inset:       childStyle.Inset,
			margin:      childStyle.Margin,
			justifySelf: childStyle.JustifySelf,
			alignSelf:   childStyle.AlignSelf,
		}
		order++

		if childStyle.Position == PositionAbsolute {
			// Absolute grid items never participate in auto-placement or
			// track-sizing contribution.
			absolute = append(absolute, item)
			continue
		}
		items = append(items, item)
	}
	return items, absolute
}

// resolvePlacement converts one axis's (start, end) grid lines into
// 0-based content-track indices [start, end). A boundary
// index space is used where explicit line N (1-based) is boundary N-1, and
// negative lines count from explicitCount+1.
func resolvePlacement(placement GridPlacement, explicitCount int) (start, end int, bothAuto bool) {
	resolveLine := func(l GridLine) (int, bool) {
		if l.IsAuto || l.IsSpan {
			return 0, false
		}
		if l.Line > 0 {
			return l.Line - 1, true
		}
		return explicitCount + 1 + l.Line, true
	}

	startIdx, startOk := resolveLine(placement.Start)
	endIdx, endOk := resolveLine(placement.End)

	switch {
	case startOk && endOk:
		if endIdx <= startIdx {
			endIdx = startIdx + 1
		}
		return startIdx, endIdx, false
	case startOk && placement.End.IsSpan:
		return startIdx, startIdx + maxInt(placement.End.Span, 1), false
	case startOk:
		return startIdx, startIdx + 1, false
	case endOk && placement.Start.IsSpan:
		s := endIdx - maxInt(placement.Start.Span, 1)
		return s, endIdx, false
	case endOk:
		return endIdx - 1, endIdx, false
	default:
		// Both ends Auto (or one Auto + one Span with no anchor): resolved
		// by auto-placement. Span count (if given) is preserved via end-start.
		span := 1
		if placement.Start.IsSpan {
			span = maxInt(placement.Start.Span, 1)
		} else if placement.End.IsSpan {
			span = maxInt(placement.End.Span, 1)
		}
		return 0, span, true
	}
}

// placeGridItems runs auto-placement ( step 1, sparse packing only —
// dense repacking is not implemented) for every item with at least one
// fully-Auto axis, assigning concrete track indices in place.
func placeGridItems(items []*gridItem, flow GridAutoFlow) {
	occupied := map[[2]int]bool{}
	markOccupied := func(rowStart, rowEnd, colStart, colEnd int) {
		for r := rowStart; r < rowEnd; r++ {
			for c := colStart; c < colEnd; c++ {
				occupied[[2]int{r, c}] = true
			}
		}
	}
	fits := func(rowStart, rowEnd, colStart, colEnd int) bool {
		for r := rowStart; r < rowEnd; r++ {
			for c := colStart; c < colEnd; c++ {
				if occupied[[2]int{r, c}] {
					return false
				}
			}
		}
		return true
	}

	// Fixed-placement items (neither axis fully Auto) stake their claim
	// first so Auto items flow around them.
	for _, item := range items {
		if !item.rowAuto && !item.colAuto {
			markOccupied(item.rowStart, item.rowEnd, item.colStart, item.colEnd)
		}
	}

	column := flow.isColumn()
	cursorMain, cursorCross := 0, 0

	for _, item := range items {
		switch {
		case item.rowAuto && item.colAuto:
			rowSpan := item.rowEnd - item.rowStart
			colSpan := item.colEnd - item.colStart
			for {
				var rowStart, colStart int
				if column {
					rowStart, colStart = cursorMain, cursorCross
				} else {
					rowStart, colStart = cursorCross, cursorMain
				}
				rowEnd, colEnd := rowStart+rowSpan, colStart+colSpan
				if fits(rowStart, rowEnd, colStart, colEnd) {
					item.rowStart, item.rowEnd = rowStart, rowEnd
					item.colStart, item.colEnd = colStart, colEnd
					markOccupied(rowStart, rowEnd, colStart, colEnd)
					cursorMain++
					break
				}
				cursorMain++
				if cursorMain > 10000 {
					// Defensive bound: a malformed/cyclic occupancy set
					// should never prevent layout from terminating.
					item.rowStart, item.rowEnd = rowStart, rowEnd
					item.colStart, item.colEnd = colStart, colEnd
					break
				}
			}
		case item.rowAuto:
			rowSpan := item.rowEnd - item.rowStart
			r := 0
			for !fits(r, r+rowSpan, item.colStart, item.colEnd) {
				r++
				if r > 10000 {
					break
				}
			}
			item.rowStart, item.rowEnd = r, r+rowSpan
			markOccupied(item.rowStart, item.rowEnd, item.colStart, item.colEnd)
		case item.colAuto:
			colSpan := item.colEnd - item.colStart
			c := 0
			for !fits(item.rowStart, item.rowEnd, c, c+colSpan) {
				c++
				if c > 10000 {
					break
				}
			}
			item.colStart, item.colEnd = c, c+colSpan
			markOccupied(item.rowStart, item.rowEnd, item.colStart, item.colEnd)
		}
	}
}

func trackSpanExtent(items []*gridItem, explicitRows, explicitCols int) (rowCount, colCount int) {
	rowCount, colCount = explicitRows, explicitCols
	for _, item := range items {
		if item.rowEnd > rowCount {
			rowCount = item.rowEnd
		}
		if item.colEnd > colCount {
			colCount = item.colEnd
		}
	}
	return
}

// buildTracks lays out the content+gutter track list: a
// zero-sized edge track, then for each content track its sizing function
// interleaved with a zero-sized gutter (gap is applied uniformly as the
// gutter's base/growth size), and a trailing zero-sized edge track.
// Implicit tracks beyond the explicit template cycle through the
// grid-auto-{rows,columns} entries in order (or are `auto` if none given).
func buildTracks(explicit []NonRepeatedTrackSizingFunction, autoRepeat []NonRepeatedTrackSizingFunction, count int) []*gridTrack {
	fn := func(i int) NonRepeatedTrackSizingFunction {
		if i < len(explicit) {
			return explicit[i]
		}
		if len(autoRepeat) > 0 {
			return autoRepeat[(i-len(explicit))%len(autoRepeat)]
		}
		return AutoTrack()
	}

	tracks := make([]*gridTrack, 0, count*2+3)
	tracks = append(tracks, &gridTrack{isGutter: true})
	for i := 0; i < count; i++ {
		f := fn(i)
		tracks = append(tracks, &gridTrack{min: f.Min, max: f.Max})
		tracks = append(tracks, &gridTrack{isGutter: true})
	}
	return tracks
}

func applyGutterSize(tracks []*gridTrack, gap float64) {
	for i, t := range tracks {
		if t.isGutter && i != 0 && i != len(tracks)-1 {
			t.base = gap
			t.growthLimit = gap
		}
	}
}

// sizeTracks runs base/growth-limit initialization,
// single-span content-based growth, fr distribution, and maximization.
func sizeTracks(tree PartialLayoutTree, tracks []*gridTrack, items []*gridItem, axisKnown Opt, isRowAxis bool) {
	for _, t := range tracks {
		if t.isGutter {
			continue
		}
		if v, ok := t.min.DefiniteValue(None).Get(); ok {
			t.base = v
		}
		if v, ok := t.max.DefiniteValue(None).Get(); ok {
			t.growthLimit = v
		} else {
			t.growthLimit = posInf
		}
		if t.growthLimit < t.base {
			t.growthLimit = t.base
		}
	}

	// Single-span intrinsic contribution growth: each item directly grows
	// the base size of every content track it spans (a simplification of
	// batch-by-span-count distribution, adequate for the common single-span
	// grid).
	for _, item := range items {
		start, end := item.rowStart, item.rowEnd
		if !isRowAxis {
			start, end = item.colStart, item.colEnd
		}
		if end-start != 1 {
			continue
		}
		trackIdx := contentTrackIndex(start)
		if trackIdx < 0 || trackIdx >= len(tracks) {
			continue
		}
		track := tracks[trackIdx]
		if track.max.IsFr() {
			continue
		}
		if !track.max.IsIntrinsic() {
			continue
		}
		contribution := measureGridItemContent(tree, item, isRowAxis)
		if contribution > track.base {
			track.base = contribution
		}
		if track.growthLimit < track.base {
			track.growthLimit = track.base
		}
	}

	contentTracksUsed := 0.0
	totalFr := 0.0
	for _, t := range tracks {
		if t.isGutter {
			contentTracksUsed += t.base
			continue
		}
		if t.max.IsFr() {
			totalFr += t.max.Fr
			continue
		}
		contentTracksUsed += t.base
	}

	if containerSize, ok := axisKnown.Get(); ok && totalFr > 0 {
		free := containerSize - contentTracksUsed
		if free < 0 {
			free = 0
		}
		perFr := free / totalFr
		for _, t := range tracks {
			if t.isGutter || !t.max.IsFr() {
				continue
			}
			size := perFr * t.max.Fr
			if size > t.base {
				t.base = size
			}
			t.growthLimit = t.base
		}
	} else {
		for _, t := range tracks {
			if !t.isGutter && t.max.IsFr() {
				t.growthLimit = t.base
			}
		}
	}

	// Maximize: distribute remaining container free space (if the axis is
	// definite) equally across growable non-fr content tracks, capped by
	// growth limit.
	if containerSize, ok := axisKnown.Get(); ok {
		used := 0.0
		growable := make([]*gridTrack, 0)
		for _, t := range tracks {
			used += t.base
			if !t.isGutter && !t.max.IsFr() && t.growthLimit > t.base {
				growable = append(growable, t)
			}
		}
		free := containerSize - used
		for free > epsilon && len(growable) > 0 {
			per := free / float64(len(growable))
			progressed := false
			next := growable[:0]
			for _, t := range growable {
				room := t.growthLimit - t.base
				if room <= 0 {
					continue
				}
				add := per
				if add > room {
					add = room
				}
				t.base += add
				free -= add
				if add > 0 {
					progressed = true
				}
				if t.growthLimit > t.base {
					next = append(next, t)
				}
			}
			growable = next
			if !progressed {
				break
			}
		}
	}
}

var posInf = math.Inf(1)

func contentTrackIndex(contentIndex int) int { return contentIndex*2 + 1 }

func measureGridItemContent(tree PartialLayoutTree, item *gridItem, isRowAxis bool) float64 {
	avail := SizeAvailableSpace{Width: MaxContent, Height: MaxContent}
	out := tree.ComputeChildLayout(item.nodeID, LayoutInput{
		AvailableSpace: avail,
		RunMode:        ComputeSize,
		SizingMode:     ContentSize,
	})
	if isRowAxis {
		return out.Size.Height
	}
	return out.Size.Width
}

func trackListSize(tracks []*gridTrack) float64 {
	sum := 0.0
	for _, t := range tracks {
		sum += t.base
	}
	return sum
}

// alignTracks implements gutter-weighted content alignment.
// SpaceBetween/Around/Evenly add only to interior gutters; Start/End/Center
// translate the whole grid by growing the leading/trailing edge track.
func alignTracks(tracks []*gridTrack, align Align, containerSize, totalSize float64) {
	free := containerSize - totalSize
	if free <= 0 || len(tracks) < 2 {
		computeTrackOffsets(tracks)
		return
	}

	interiorGutters := make([]*gridTrack, 0)
	for i := 1; i < len(tracks)-1; i++ {
		if tracks[i].isGutter {
			interiorGutters = append(interiorGutters, tracks[i])
		}
	}

	switch align {
	case AlignCenter:
		tracks[0].base += free / 2
		tracks[len(tracks)-1].base += free / 2
	case AlignEnd, AlignFlexEnd:
		tracks[0].base += free
	case AlignSpaceBetween:
		if n := len(interiorGutters); n > 0 {
			per := free / float64(n)
			for _, g := range interiorGutters {
				g.base += per
			}
		}
	case AlignSpaceAround:
		if n := len(interiorGutters); n > 0 {
			per := free / float64(n)
			for _, g := range interiorGutters {
				g.base += per
			}
			tracks[0].base += per / 2
			tracks[len(tracks)-1].base += per / 2
		}
	case AlignSpaceEvenly:
		n := len(interiorGutters) + 1
		per := free / float64(n)
		for _, g := range interiorGutters {
			g.base += per
		}
		tracks[0].base += per
		tracks[len(tracks)-1].base += per
	case AlignStretch:
		// handled by sizeTracks' maximization pass already; nothing to add here.
	default: // AlignStart, AlignFlexStart
		tracks[len(tracks)-1].base += free
	}

	computeTrackOffsets(tracks)
}

func computeTrackOffsets(tracks []*gridTrack) {
	cursor := 0.0
	for _, t := range tracks {
		t.offset = cursor
		cursor += t.base
	}
}

type itemAreaResult struct {
	Location PointF
	Size     SizeF
}

func itemArea(rowTracks, colTracks []*gridTrack, item *gridItem) itemAreaResult {
	rowFrom := contentTrackIndex(item.rowStart)
	rowTo := contentTrackIndex(item.rowEnd - 1)
	colFrom := contentTrackIndex(item.colStart)
	colTo := contentTrackIndex(item.colEnd - 1)

	top := rowTracks[clampTrackIdx(rowFrom, len(rowTracks))].offset
	bottomTrack := rowTracks[clampTrackIdx(rowTo, len(rowTracks))]
	bottom := bottomTrack.offset + bottomTrack.base

	left := colTracks[clampTrackIdx(colFrom, len(colTracks))].offset
	rightTrack := colTracks[clampTrackIdx(colTo, len(colTracks))]
	right := rightTrack.offset + rightTrack.base

	return itemAreaResult{
		Location: PointF{X: left, Y: top},
		Size:     SizeF{Width: right - left, Height: bottom - top},
	}
}

func clampTrackIdx(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// alignWithinArea implements the justify_self/align_self
// resolution once an item's own laid-out size is known.
func alignWithinArea(size SizeF, area itemAreaResult, justifySelf, alignSelf Align) PointF {
	x := area.Location.X
	y := area.Location.Y
	switch justifySelf {
	case AlignCenter:
		x += (area.Size.Width - size.Width) / 2
	case AlignEnd, AlignFlexEnd:
		x += area.Size.Width - size.Width
	}
	switch alignSelf {
	case AlignCenter:
		y += (area.Size.Height - size.Height) / 2
	case AlignEnd, AlignFlexEnd:
		y += area.Size.Height - size.Height
	}
	return PointF{X: x, Y: y}
}

package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLengthPercentageResolve(t *testing.T) {
	assert.Equal(t, float64(5), Length(5).Resolve(100))
	assert.Equal(t, float64(50), Percent(0.5).Resolve(100))
}

func TestLengthPercentageAutoResolveToOption(t *testing.T) {
	_, ok := LengthAuto().ResolveToOption(100).Get()
	assert.False(t, ok)
	assert.Equal(t, float64(0), LengthAuto().ResolveOrZero(100))

	v, ok := LengthA(10).ResolveToOption(100).Get()
	assert.True(t, ok)
	assert.Equal(t, float64(10), v)

	v, ok = PercentA(0.25).ResolveToOption(100).Get()
	assert.True(t, ok)
	assert.Equal(t, float64(25), v)
}

func TestDimensionResolveAgainstMissingBasis(t *testing.T) {
	_, ok := DimPct(0.5).Resolve(None).Get()
	assert.False(t, ok, "percent dimension with no basis must resolve to None, not 0")

	v, ok := DimLen(5).Resolve(None).Get()
	assert.True(t, ok)
	assert.Equal(t, float64(5), v)

	_, ok = DimAutoV().Resolve(Some(100)).Get()
	assert.False(t, ok)
}

func TestMaybeApplyAspectRatioFillsMissingAxis(t *testing.T) {
	sz := SizeOpt{Width: Some(200), Height: None}
	got := MaybeApplyAspectRatio(sz, Some(2)) // width/height == 2
	h, ok := got.Height.Get()
	assert.True(t, ok)
	assert.Equal(t, float64(100), h)

	sz = SizeOpt{Width: None, Height: Some(50)}
	got = MaybeApplyAspectRatio(sz, Some(2))
	w, ok := got.Width.Get()
	assert.True(t, ok)
	assert.Equal(t, float64(100), w)

	// Both known: ratio never overrides either axis.
	sz = SizeOpt{Width: Some(10), Height: Some(10)}
	got = MaybeApplyAspectRatio(sz, Some(2))
	assert.Equal(t, sz, got)
}

func TestMaybeClampMinWinsWhenMaxLessThanMin(t *testing.T) {
	sz := SizeOpt{Width: Some(5), Height: None}
	min := SizeOpt{Width: Some(50), Height: None}
	max := SizeOpt{Width: Some(10), Height: None}

	got := MaybeClamp(sz, min, max)
	w, ok := got.Width.Get()
	assert.True(t, ok)
	assert.Equal(t, float64(50), w, "invariant: min must win when max < min")
}

func TestMaybeClampNoneBoundsImposeNoConstraint(t *testing.T) {
	sz := SizeOpt{Width: Some(500), Height: None}
	got := MaybeClamp(sz, sizeNone(), sizeNone())
	assert.Equal(t, sz, got)
}

func TestAvailableSpaceComputeFreeSpace(t *testing.T) {
	assert.Equal(t, float64(60), Definite(100).ComputeFreeSpace(40))
	assert.True(t, math.IsInf(MaxContent.ComputeFreeSpace(40), 1))
	assert.Equal(t, float64(0), MinContent.ComputeFreeSpace(40))
}

func TestAvailableSpaceMaybeSetAndSub(t *testing.T) {
	a := MaxContent
	set := a.MaybeSet(Some(42))
	assert.True(t, set.IsDefinite())
	assert.Equal(t, float64(42), set.UnwrapOr(-1))

	sub := Definite(100).MaybeSub(30)
	assert.Equal(t, float64(70), sub.UnwrapOr(-1))

	// MinContent/MaxContent pass through MaybeSub untouched.
	assert.Equal(t, MaxContent, MaxContent.MaybeSub(30))
}

func TestAvailableSpaceIsRoughlyEqual(t *testing.T) {
	assert.True(t, Definite(10).IsRoughlyEqual(Definite(10)))
	assert.False(t, Definite(10).IsRoughlyEqual(Definite(11)))
	assert.False(t, Definite(10).IsRoughlyEqual(MaxContent))
	assert.True(t, MaxContent.IsRoughlyEqual(MaxContent))
}

package layout

import "math"

// DimensionKind tags which variant a Dimension/LengthPercentage(Auto) holds.
type DimensionKind uint8

const (
	DimLength DimensionKind = iota
	DimPercent
	DimCalc
	DimAuto
)

// LengthPercentage is a length or a percentage of some basis. Never Auto.
type LengthPercentage struct {
	Kind  DimensionKind // DimLength | DimPercent | DimCalc
	Value float64       // meaningful for DimLength/DimPercent
	Calc  *CalcNode      // meaningful for DimCalc
}

// Length builds a LengthPercentage::Length.
func Length(v float64) LengthPercentage { return LengthPercentage{Kind: DimLength, Value: v} }

// Percent builds a LengthPercentage::Percent. p is a fraction (0.5 == 50%).
func Percent(p float64) LengthPercentage { return LengthPercentage{Kind: DimPercent, Value: p} }

// CalcLP builds a LengthPercentage::Calculation.
func CalcLP(c *CalcNode) LengthPercentage { return LengthPercentage{Kind: DimCalc, Calc: c} }

// Resolve implements resolve for a basis that is always present.
func (lp LengthPercentage) Resolve(basis float64) float64 {
	switch lp.Kind {
	case DimLength:
		return lp.Value
	case DimPercent:
		return lp.Value * basis
	case DimCalc:
		return lp.Calc.Resolve(basis)
	default:
		return 0
	}
}

// LengthPercentageAuto adds Auto to LengthPercentage.
type LengthPercentageAuto struct {
	Kind  DimensionKind
	Value float64
	Calc  *CalcNode
}

// LengthAuto builds an Auto length.
func LengthAuto() LengthPercentageAuto { return LengthPercentageAuto{Kind: DimAuto} }

// LengthA builds a Length.
func LengthA(v float64) LengthPercentageAuto { return LengthPercentageAuto{Kind: DimLength, Value: v} }

// PercentA builds a Percent.
func PercentA(p float64) LengthPercentageAuto { return LengthPercentageAuto{Kind: DimPercent, Value: p} }

// IsAuto reports whether this is the Auto variant.
func (l LengthPercentageAuto) IsAuto() bool { return l.Kind == DimAuto }

// ResolveToOption implements resolve (the maybe-basis overload): Auto -> None.
func (l LengthPercentageAuto) ResolveToOption(basis float64) Opt {
	switch l.Kind {
	case DimLength:
		return Some(l.Value)
	case DimPercent:
		return Some(l.Value * basis)
	case DimCalc:
		return Some(l.Calc.Resolve(basis))
	default:
		return None
	}
}

// ResolveOrZero resolves against basis, treating Auto as 0.
func (l LengthPercentageAuto) ResolveOrZero(basis float64) float64 {
	v, ok := l.ResolveToOption(basis).Get()
	if !ok {
		return 0
	}
	return v
}

// AsLengthPercentage drops Auto to zero-length, used where the contract
// guarantees non-auto (e.g. padding/border).
func (l LengthPercentageAuto) AsLengthPercentage() LengthPercentage {
	return LengthPercentage{Kind: l.Kind, Value: l.Value, Calc: l.Calc}
}

// Dimension adds Auto to a size dimension (width/height/min/max).
type Dimension struct {
	Kind  DimensionKind
	Value float64
	Calc  *CalcNode
}

// DimAutoV is the Auto dimension.
func DimAutoV() Dimension { return Dimension{Kind: DimAuto} }

// DimLen builds a Length dimension.
func DimLen(v float64) Dimension { return Dimension{Kind: DimLength, Value: v} }

// DimPct builds a Percent dimension.
func DimPct(p float64) Dimension { return Dimension{Kind: DimPercent, Value: p} }

// DimCalcV builds a Calc dimension.
func DimCalcV(c *CalcNode) Dimension { return Dimension{Kind: DimCalc, Calc: c} }

// Resolve implements resolve: Dimension x Option<basis> -> Option<f>.
func (d Dimension) Resolve(basis Opt) Opt {
	switch d.Kind {
	case DimLength:
		return Some(d.Value)
	case DimPercent:
		b, ok := basis.Get()
		if !ok {
			return None
		}
		return Some(d.Value * b)
	case DimCalc:
		b, ok := basis.Get()
		if !ok {
			return None
		}
		return Some(d.Calc.Resolve(b))
	default:
		return None
	}
}

// ResolveOrZero resolves against basis, treating None/Auto as 0.
func (d Dimension) ResolveOrZero(basis Opt) float64 {
	v, ok := d.Resolve(basis).Get()
	if !ok {
		return 0
	}
	return v
}

// MaybeResolve resolves a Size<Dimension> against a Size<Option<f32>> basis.
func MaybeResolve(sz Size[Dimension], basis SizeOpt) SizeOpt {
	return SizeOpt{Width: sz.Width.Resolve(basis.Width), Height: sz.Height.Resolve(basis.Height)}
}

// ResolveOrZeroRect resolves a Rect<LengthPercentageAuto> against an optional
// horizontal basis, with auto sides resolving to zero (percentages on all four sides resolve against the
// inline/horizontal basis per CSS box-model convention; this matches
// Taffy's `resolve_or_zero` usage on margin/padding/border).
func ResolveOrZeroRect(r Rect[LengthPercentageAuto], basis Opt) RectF {
	b, ok := basis.Get()
	if !ok {
		b = 0
	}
	return RectF{
		Left:   r.Left.ResolveOrZero(b),
		Right:  r.Right.ResolveOrZero(b),
		Top:    r.Top.ResolveOrZero(b),
		Bottom: r.Bottom.ResolveOrZero(b),
	}
}

// ResolveOrZeroRectLP resolves a non-auto Rect<LengthPercentage>.
func ResolveOrZeroRectLP(r Rect[LengthPercentage], basis Opt) RectF {
	b, ok := basis.Get()
	if !ok {
		b = 0
	}
	return RectF{
		Left:   r.Left.Resolve(b),
		Right:  r.Right.Resolve(b),
		Top:    r.Top.Resolve(b),
		Bottom: r.Bottom.Resolve(b),
	}
}

// MaybeApplyAspectRatio implements apply_aspect_ratio: fills the
// missing axis from the known one when exactly one axis is known and a
// ratio (width/height) is set.
func MaybeApplyAspectRatio(sz SizeOpt, ratio Opt) SizeOpt {
	r, ok := ratio.Get()
	if !ok || r <= 0 || math.IsInf(r, 0) {
		return sz
	}
	w, wok := sz.Width.Get()
	h, hok := sz.Height.Get()
	switch {
	case wok && !hok:
		return SizeOpt{Width: sz.Width, Height: Some(w / r)}
	case hok && !wok:
		return SizeOpt{Width: Some(h * r), Height: sz.Height}
	default:
		return sz
	}
}

// MaybeClamp implements maybe_clamp: None bounds impose no constraint.
// Invariant 2 (min wins when max < min) holds because max is clamped
// against min first.
func MaybeClamp(sz, min, max SizeOpt) SizeOpt {
	return SizeOpt{Width: clampOpt(sz.Width, min.Width, max.Width), Height: clampOpt(sz.Height, min.Height, max.Height)}
}

func clampOpt(v, min, max Opt) Opt {
	val, ok := v.Get()
	if !ok {
		return v
	}
	if mx, ok := max.Get(); ok {
		if mn, ok := min.Get(); ok && mn > mx {
			mx = mn
		}
		if val > mx {
			val = mx
		}
	}
	if mn, ok := min.Get(); ok && val < mn {
		val = mn
	}
	return Some(val)
}

// MaybeMax returns the component-wise max, treating None as "no bound" (so
// None stays None only if both are None).
func MaybeMax(a, b SizeOpt) SizeOpt {
	return SizeOpt{Width: maxOpt(a.Width, b.Width), Height: maxOpt(a.Height, b.Height)}
}

func maxOpt(a, b Opt) Opt {
	av, aok := a.Get()
	bv, bok := b.Get()
	switch {
	case aok && bok:
		if av > bv {
			return a
		}
		return b
	case aok:
		return a
	case bok:
		return b
	default:
		return None
	}
}

// AvailableSpaceKind tags the AvailableSpace variant.
type AvailableSpaceKind uint8

const (
	SpaceDefinite AvailableSpaceKind = iota
	SpaceMinContent
	SpaceMaxContent
)

// AvailableSpace is the AvailableSpace: Definite(f) | MinContent | MaxContent.
type AvailableSpace struct {
	Kind  AvailableSpaceKind
	Value float64
}

// Definite builds AvailableSpace::Definite.
func Definite(v float64) AvailableSpace { return AvailableSpace{Kind: SpaceDefinite, Value: v} }

// MinContent is the shared MinContent value.
var MinContent = AvailableSpace{Kind: SpaceMinContent}

// MaxContent is the shared MaxContent value.
var MaxContent = AvailableSpace{Kind: SpaceMaxContent}

// IntoOption converts Definite -> Some(value), others -> None.
func (a AvailableSpace) IntoOption() Opt {
	if a.Kind == SpaceDefinite {
		return Some(a.Value)
	}
	return None
}

// IsDefinite reports whether this is Definite.
func (a AvailableSpace) IsDefinite() bool { return a.Kind == SpaceDefinite }

// UnwrapOr returns the definite value or def.
func (a AvailableSpace) UnwrapOr(def float64) float64 { return a.IntoOption().OrElse(def) }

// ComputeFreeSpace implements compute_free_space.
func (a AvailableSpace) ComputeFreeSpace(used float64) float64 {
	switch a.Kind {
	case SpaceMaxContent:
		return math.Inf(1)
	case SpaceMinContent:
		return 0
	default:
		return a.Value - used
	}
}

// MaybeSub subtracts from a Definite value; MinContent/MaxContent pass through.
func (a AvailableSpace) MaybeSub(amount float64) AvailableSpace {
	if a.Kind == SpaceDefinite {
		return Definite(a.Value - amount)
	}
	return a
}

// MaybeSet replaces self with Definite(v) if v is present, else returns self.
func (a AvailableSpace) MaybeSet(v Opt) AvailableSpace {
	if val, ok := v.Get(); ok {
		return Definite(val)
	}
	return a
}

// IsRoughlyEqual compares with epsilon tolerance for Definite values.
func (a AvailableSpace) IsRoughlyEqual(b AvailableSpace) bool {
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind == SpaceDefinite {
		d := a.Value - b.Value
		if d < 0 {
			d = -d
		}
		return d < epsilon
	}
	return true
}

const epsilon = 1.1920929e-7 // float32 machine epsilon, matching Taffy's f32::EPSILON tolerance

// AvailableSpaceFromOption mirrors Taffy's From<Option<f32>>: Some -> Definite, None -> MaxContent.
func AvailableSpaceFromOption(o Opt) AvailableSpace {
	if v, ok := o.Get(); ok {
		return Definite(v)
	}
	return MaxContent
}

// SizeAvailableSpace is Size<AvailableSpace>.
type SizeAvailableSpace = Size[AvailableSpace]

// IntoOptions converts Size<AvailableSpace> into Size<Option<f32>>.
func IntoOptions(s SizeAvailableSpace) SizeOpt {
	return SizeOpt{Width: s.Width.IntoOption(), Height: s.Height.IntoOption()}
}

// MaybeSetSize applies MaybeSet component-wise.
func MaybeSetSize(s SizeAvailableSpace, v SizeOpt) SizeAvailableSpace {
	return SizeAvailableSpace{Width: s.Width.MaybeSet(v.Width), Height: s.Height.MaybeSet(v.Height)}
}

package layout

// Size is a generic width/height pair.
type Size[T any] struct {
	Width  T
	Height T
}

// Point is a generic x/y pair.
type Point[T any] struct {
	X T
	Y T
}

// Rect is a generic four-sided box: left, right, top, bottom.
type Rect[T any] struct {
	Left   T
	Right  T
	Top    T
	Bottom T
}

// Line is a generic (start, end) pair along one axis.
type Line[T any] struct {
	Start T
	End   T
}

// SizeF is the float64 instantiation used throughout the engine. All
// abstract-unit geometry is float64; callers interpret the unit.
type SizeF = Size[float64]

// PointF is the float64 point used for locations.
type PointF = Point[float64]

// RectF is the float64 rect used for padding/border/margin after resolution.
type RectF = Rect[float64]

// SizeOpt carries a possibly-unknown size per axis (None axis = indefinite).
type SizeOpt = Size[Opt]

// Opt is an optional float64 without the allocation of *float64.
type Opt struct {
	Value float64
	Valid bool
}

// Some wraps a definite value.
func Some(v float64) Opt { return Opt{Value: v, Valid: true} }

// None is the absent value.
var None = Opt{}

// Get returns (value, ok).
func (o Opt) Get() (float64, bool) { return o.Value, o.Valid }

// OrZero returns the value, or 0 if absent.
func (o Opt) OrZero() float64 {
	if o.Valid {
		return o.Value
	}
	return 0
}

// OrElse returns the value, or def if absent.
func (o Opt) OrElse(def float64) float64 {
	if o.Valid {
		return o.Value
	}
	return def
}

// Map applies f to the contained value, if any.
func (o Opt) Map(f func(float64) float64) Opt {
	if !o.Valid {
		return o
	}
	return Some(f(o.Value))
}

// Or returns self if valid, else fallback.
func (o Opt) Or(fallback Opt) Opt {
	if o.Valid {
		return o
	}
	return fallback
}

func sizeZero() SizeF { return SizeF{} }

func sizeNone() SizeOpt { return SizeOpt{Width: None, Height: None} }

// SumAxes returns a Rect's horizontal (Left+Right) and vertical (Top+Bottom)
// sums as a size.
func (r RectF) SumAxes() SizeF {
	return SizeF{Width: r.Left + r.Right, Height: r.Top + r.Bottom}
}

// HorizontalAxisSum returns left+right.
func (r RectF) HorizontalAxisSum() float64 { return r.Left + r.Right }

// VerticalAxisSum returns top+bottom.
func (r RectF) VerticalAxisSum() float64 { return r.Top + r.Bottom }

// AddRect adds two rects component-wise.
func AddRect(a, b RectF) RectF {
	return RectF{
		Left:   a.Left + b.Left,
		Right:  a.Right + b.Right,
		Top:    a.Top + b.Top,
		Bottom: a.Bottom + b.Bottom,
	}
}

// MaybeSub subtracts amount from a size's definite axes, leaving
// indefinite axes indefinite.
func (s SizeOpt) MaybeSub(amount SizeF) SizeOpt {
	return SizeOpt{
		Width:  s.Width.Map(func(v float64) float64 { return v - amount.Width }),
		Height: s.Height.Map(func(v float64) float64 { return v - amount.Height }),
	}
}

// Sub subtracts a rect's axis sums from a definite size.
func (s SizeF) Sub(inset RectF) SizeF {
	return SizeF{Width: s.Width - inset.HorizontalAxisSum(), Height: s.Height - inset.VerticalAxisSum()}
}

// MainCross reorders a Size into (main, cross) given whether the axis is row-like.
func (s SizeF) MainCross(isRow bool) (main, cross float64) {
	if isRow {
		return s.Width, s.Height
	}
	return s.Height, s.Width
}

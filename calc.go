package layout

import "math"

// RoundingStrategy selects which CSS round() variant Calc.Round uses.
type RoundingStrategy uint8

const (
	RoundNearest RoundingStrategy = iota // default
	RoundUp
	RoundDown
	RoundToZero
)

// CalcNodeKind tags a CalcNode variant.
type CalcNodeKind uint8

const (
	CalcLeaf CalcNodeKind = iota
	CalcSum
	CalcDifference
	CalcProduct
	CalcQuotient
	CalcNegate
	CalcMin
	CalcMax
	CalcClamp
	CalcRound
)

// CalcNode is a node in a Calc() expression tree.
// It is evaluated bottom-up and is immutable once built, so the same tree
// may be shared (by pointer) across many styles cheaply.
type CalcNode struct {
	Kind CalcNodeKind

	Leaf LengthPercentage // CalcLeaf

	LHS, RHS *CalcNode // Sum/Difference/Product/Quotient
	Operand  *CalcNode // Negate

	Items []*CalcNode // Min/Max

	Min, Center, Max *CalcNode // Clamp

	Strategy         RoundingStrategy // Round
	Value, Interval  *CalcNode        // Round
}

// Resolve evaluates the tree against a percentage basis.
func (c *CalcNode) Resolve(basis float64) float64 {
	switch c.Kind {
	case CalcLeaf:
		return c.Leaf.Resolve(basis)
	case CalcSum:
		return c.LHS.Resolve(basis) + c.RHS.Resolve(basis)
	case CalcDifference:
		return c.LHS.Resolve(basis) - c.RHS.Resolve(basis)
	case CalcProduct:
		return c.LHS.Resolve(basis) * c.RHS.Resolve(basis)
	case CalcQuotient:
		return c.LHS.Resolve(basis) / c.RHS.Resolve(basis)
	case CalcNegate:
		return -c.Operand.Resolve(basis)
	case CalcMin:
		return reduceCalc(c.Items, basis, math.Min, math.Inf(1))
	case CalcMax:
		return reduceCalc(c.Items, basis, math.Max, math.Inf(-1))
	case CalcClamp:
		return resolveClamp(c.Min.Resolve(basis), c.Center.Resolve(basis), c.Max.Resolve(basis))
	case CalcRound:
		return resolveRound(c.Strategy, c.Value.Resolve(basis), c.Interval.Resolve(basis))
	default:
		return 0
	}
}

func reduceCalc(items []*CalcNode, basis float64, op func(a, b float64) float64, identity float64) float64 {
	if len(items) == 0 {
		return 0
	}
	acc := items[0].Resolve(basis)
	for _, it := range items[1:] {
		acc = op(acc, it.Resolve(basis))
	}
	_ = identity
	return acc
}

// resolveClamp implements the min-priority clamp `max(lo, min(v, hi))`:
// v is first capped at hi and then raised to lo, so that when lo > hi the
// lower bound still wins (invariant 2).
func resolveClamp(lo, v, hi float64) float64 {
	capped := math.Min(v, hi)
	return math.Max(lo, capped)
}

// resolveRound implements CSS round(): zero interval -> NaN,
// infinite operands follow the strategy-specific table.
func resolveRound(strategy RoundingStrategy, value, interval float64) float64 {
	if interval == 0 {
		return math.NaN()
	}
	if math.IsInf(value, 0) {
		if math.IsInf(interval, 0) {
			return value
		}
		return math.NaN()
	}
	if math.IsInf(interval, 0) {
		switch strategy {
		case RoundUp:
			if value > 0 {
				return math.Inf(1)
			}
			if value == 0 {
				return value // preserves signed zero
			}
			return negZero()
		case RoundDown:
			if value < 0 {
				return math.Inf(-1)
			}
			if value == 0 {
				return value
			}
			return 0
		default: // Nearest, ToZero
			if isPositiveOrPosZero(value) {
				return 0
			}
			return negZero()
		}
	}

	div := value / interval
	lower := math.Floor(div) * interval
	upper := math.Ceil(div) * interval

	switch strategy {
	case RoundUp:
		return upper
	case RoundDown:
		return lower
	case RoundNearest:
		if value-lower < upper-value {
			return lower
		}
		return upper
	case RoundToZero:
		if math.Abs(lower) < math.Abs(upper) {
			return lower
		}
		return upper
	default:
		return value
	}
}

func isPositiveOrPosZero(v float64) bool {
	if v > 0 {
		return true
	}
	return v == 0 && !math.Signbit(v)
}

func negZero() float64 { return math.Copysign(0, -1) }

// CalcLeafNode builds a CalcNode wrapping a plain length/percentage.
func CalcLeafNode(lp LengthPercentage) *CalcNode { return &CalcNode{Kind: CalcLeaf, Leaf: lp} }

// CalcSumNode builds lhs + rhs.
func CalcSumNode(lhs, rhs *CalcNode) *CalcNode { return &CalcNode{Kind: CalcSum, LHS: lhs, RHS: rhs} }

// CalcDiffNode builds lhs - rhs.
func CalcDiffNode(lhs, rhs *CalcNode) *CalcNode { return &CalcNode{Kind: CalcDifference, LHS: lhs, RHS: rhs} }

// CalcProductNode builds lhs * rhs.
func CalcProductNode(lhs, rhs *CalcNode) *CalcNode { return &CalcNode{Kind: CalcProduct, LHS: lhs, RHS: rhs} }

// CalcQuotientNode builds lhs / rhs.
func CalcQuotientNode(lhs, rhs *CalcNode) *CalcNode { return &CalcNode{Kind: CalcQuotient, LHS: lhs, RHS: rhs} }

// CalcNegateNode builds -operand.
func CalcNegateNode(operand *CalcNode) *CalcNode { return &CalcNode{Kind: CalcNegate, Operand: operand} }

// CalcMinNode builds min(items...).
func CalcMinNode(items ...*CalcNode) *CalcNode { return &CalcNode{Kind: CalcMin, Items: items} }

// CalcMaxNode builds max(items...).
func CalcMaxNode(items ...*CalcNode) *CalcNode { return &CalcNode{Kind: CalcMax, Items: items} }

// CalcClampNode builds clamp(min, center, max) with the min-priority semantics.
func CalcClampNode(min, center, max *CalcNode) *CalcNode {
	return &CalcNode{Kind: CalcClamp, Min: min, Center: center, Max: max}
}

// CalcRoundNode builds round(strategy, value, interval).
func CalcRoundNode(strategy RoundingStrategy, value, interval *CalcNode) *CalcNode {
	return &CalcNode{Kind: CalcRound, Strategy: strategy, Value: value, Interval: interval}
}

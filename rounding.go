package layout

import "math"

// RoundLayout runs a depth-first pass over final layouts that
// snaps every location/size to integer pixels while preserving sibling
// continuity, by rounding based on running absolute coordinates rather than
// parent-relative ones and deriving width/height from the rounded edges.
// Idempotent (invariant 5): re-running it with the already-rounded tree as
// input reproduces the same output, since round(integer) == integer.
func RoundLayout(tree LayoutTree, node NodeID, absX, absY float64) {
	unrounded := tree.UnroundedLayoutMut(node)
	absX += unrounded.Location.X
	absY += unrounded.Location.Y

	final := tree.FinalLayoutMut(node)
	*final = Layout{
		Order: unrounded.Order,
		Location: PointF{
			X: roundHalfAwayFromZero(unrounded.Location.X),
			Y: roundHalfAwayFromZero(unrounded.Location.Y),
		},
		Size: SizeF{
			Width:  roundHalfAwayFromZero(absX+unrounded.Size.Width) - roundHalfAwayFromZero(absX),
			Height: roundHalfAwayFromZero(absY+unrounded.Size.Height) - roundHalfAwayFromZero(absY),
		},
	}

	for i := 0; i < tree.ChildCount(node); i++ {
		RoundLayout(tree, tree.ChildAt(node, i), absX, absY)
	}
}

// roundHalfAwayFromZero matches the "round-half-away-from-zero", which
// differs from Go's math.Round only in name (math.Round already rounds
// halves away from zero, unlike round-half-to-even).
func roundHalfAwayFromZero(v float64) float64 {
	return math.Round(v)
}

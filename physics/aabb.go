package physics

// AABB is an axis-aligned bounding box, top-left anchored, in pixel units.
type AABB struct {
	X, Y, W, H float64
}

// Overlaps reports whether both axis projections of a and b overlap
// strictly. Touching edges do not count as overlap.
func Overlaps(a, b AABB) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X &&
		a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// Side identifies which face of b the box a penetrated.
type Side uint8

const (
	// SideTop: a landed on top of b.
	SideTop Side = iota
	// SideBottom: a hit the underside of b.
	SideBottom
	// SideLeft: a hit the left face of b.
	SideLeft
	// SideRight: a hit the right face of b.
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// Classify resolves which face of b the overlapping box a entered through.
// It compares the center-to-center vector scaled by the half-extent sums:
// crossW = halfWidthSum*dy against ±crossH = halfHeightSum*dx.
//
// Near-corner penetrations can misclassify as a side push instead of a
// landing. That matches the resolver this heuristic was lifted from, whose
// intent for corners is ambiguous; callers must not depend on corner hits
// resolving to any particular side.
func Classify(a, b AABB) Side {
	dx := (a.X + a.W/2) - (b.X + b.W/2)
	dy := (a.Y + a.H/2) - (b.Y + b.H/2)
	halfW := (a.W + b.W) / 2
	halfH := (a.H + b.H) / 2

	crossW := halfW * dy
	crossH := halfH * dx

	if crossW > crossH {
		if crossW > -crossH {
			return SideBottom
		}
		return SideLeft
	}
	if crossW > -crossH {
		return SideRight
	}
	return SideTop
}

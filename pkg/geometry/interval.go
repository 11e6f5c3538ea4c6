package geometry

// Relation describes how two vertical intervals relate.
type Relation int

const (
	// Disjoint means the intervals do not intersect; the measured value is
	// the gap between them (0 means exactly touching).
	Disjoint Relation = iota

	// Intersecting means the intervals share at least one pixel; the
	// measured value is the shared span.
	Intersecting
)

// String returns the lowercase name of the relation.
func (r Relation) String() string {
	switch r {
	case Disjoint:
		return "disjoint"
	case Intersecting:
		return "intersecting"
	}
	return "unknown"
}

// Compare classifies the vertical relation of two boxes.
//
// Two half-open intervals [a0,a1) and [b0,b1) intersect when
// max(a0,b0) < min(a1,b1); the returned amount is the shared span.
// Otherwise the boxes are disjoint and the amount is the gap
// max(a0,b0) - min(a1,b1), which is 0 when the edges exactly touch.
func Compare(a, b Box) (Relation, int) {
	span := min(a.Bottom, b.Bottom) - max(a.Top, b.Top)
	if span > 0 {
		return Intersecting, span
	}
	return Disjoint, -span
}

// IntersectsHorizontally reports whether two boxes share horizontal space.
// Boxes without a horizontal extent are treated as spanning the full surface
// width, matching the single-column reading of the vertical model.
func IntersectsHorizontally(a, b Box) bool {
	if !a.HasHorizontal() || !b.HasHorizontal() {
		return true
	}
	return max(a.Left, b.Left) < min(a.Right, b.Right)
}

package geometry

// Box represents a widget's computed bounding box.
// The vertical extent is the half-open interval [Top, Bottom). Horizontal
// extents are optional: the analyzed screens stack vertically, and only the
// scrollable word list and the right-hand button column carry real x spans.
// All coordinates are integer pixels; Top may be negative when an anchor
// formula places a widget above the surface.
type Box struct {
	ID     string
	Top    int
	Bottom int
	Left   int
	Right  int
}

// Height returns the vertical span of the box.
func (b Box) Height() int { return b.Bottom - b.Top }

// Width returns the horizontal span of the box, or 0 when no extent is set.
func (b Box) Width() int {
	if !b.HasHorizontal() {
		return 0
	}
	return b.Right - b.Left
}

// HasHorizontal reports whether the box carries a real horizontal extent.
func (b Box) HasHorizontal() bool { return b.Right > b.Left }

// Surface is the drawing surface a layout pass is computed against.
// Immutable per pass.
type Surface struct {
	Width  int
	Height int
}

// Contains reports whether the box lies fully inside the surface's vertical
// extent. Off-surface boxes are a caller-visible condition, never corrected.
func (s Surface) Contains(b Box) bool {
	return b.Top >= 0 && b.Bottom <= s.Height
}

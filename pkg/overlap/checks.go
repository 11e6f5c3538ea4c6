package overlap

import (
	"github.com/aliace-game/screenlayout/pkg/geometry"
	"github.com/aliace-game/screenlayout/pkg/layout"
	"github.com/aliace-game/screenlayout/pkg/screen"
)

// ScrollbarCheck tests the one sanctioned cross-column intersection: a
// scrollable widget whose scrollbar is visible may push its effective right
// edge into the neighboring column. Returns a record per collision; an empty
// result means the reserved scrollbar region stays clear.
//
// The check is conditional by design: without enough content the scrollbar
// does not exist and the widget's declared extent applies.
func (a *Analyzer) ScrollbarCheck(placed []layout.Placed) []Record {
	var records []Record
	for _, p := range placed {
		if !p.Spec.Scrollable || !p.ScrollbarVisible {
			continue
		}

		effective := p.Box
		effective.Right += p.Spec.ScrollbarReserved

		for _, other := range placed {
			if other.Spec.Column == p.Spec.Column || other.Spec.Class != screen.ClassBase {
				continue
			}
			if !other.Box.HasHorizontal() {
				continue
			}
			if !geometry.IntersectsHorizontally(effective, other.Box) {
				continue
			}
			relation, amount := geometry.Compare(effective, other.Box)
			if relation != geometry.Intersecting {
				continue
			}
			records = append(records, Record{
				A:      p.Box.ID,
				B:      other.Box.ID,
				Kind:   KindOverlap,
				Amount: amount,
			})
		}
	}
	return records
}

// OverlayCoverage reports which base widgets each active overlay panel
// covers. Overlays are supposed to sit above their siblings, so coverage is
// informational, not a defect; it tells the host what an expanded dropdown
// hides.
func (a *Analyzer) OverlayCoverage(placed []layout.Placed) []Record {
	var records []Record
	for _, p := range placed {
		if !p.Spec.IsOverlay() {
			continue
		}
		for _, other := range placed {
			if other.Spec.Class != screen.ClassBase {
				continue
			}
			if !geometry.IntersectsHorizontally(p.Box, other.Box) {
				continue
			}
			relation, amount := geometry.Compare(p.Box, other.Box)
			if relation != geometry.Intersecting {
				continue
			}
			records = append(records, Record{
				A:      p.Box.ID,
				B:      other.Box.ID,
				Kind:   KindOverlap,
				Amount: amount,
			})
		}
	}
	return records
}

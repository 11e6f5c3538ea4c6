// Package draworder resolves the paint order of a screen's widgets.
//
// The analyzed implementation got its stacking right by accident: expanded
// dropdown option panels looked correct only because they happened to be
// drawn last. This package makes that rule explicit. Base widgets paint in
// declaration order; every active overlay paints after all of them, in its
// own declaration order among active overlays, regardless of where its table
// entry sits. Collapsed overlays are excluded entirely.
package draworder

import (
	"github.com/aliace-game/screenlayout/pkg/screen"
)

// Resolve produces the final paint order for a screen given the set of
// expanded dropdowns. Entries in expanded may name a dropdown or its panel.
//
// The function is pure: resolving twice with the same inputs yields the same
// order, and collapsing a dropdown removes its panel from every subsequent
// resolution.
func Resolve(scr *screen.Screen, expanded []string) []string {
	active := make(map[string]bool, len(expanded))
	for _, id := range expanded {
		active[id] = true
	}

	order := make([]string, 0, len(scr.Widgets))
	var overlays []string

	for i := range scr.Widgets {
		w := &scr.Widgets[i]
		if w.IsOverlay() {
			if active[w.ID] || active[w.Owner] {
				overlays = append(overlays, w.ID)
			}
			continue
		}
		order = append(order, w.ID)
	}

	return append(order, overlays...)
}

// Package layout computes widget bounding boxes for a screen.
//
// The builder is the heart of the engine: given a validated screen table and
// a surface size it evaluates every anchor expression and yields one box per
// widget, in declaration order. The pass is pure and deterministic; repeated
// calls with identical inputs produce identical output.
//
// Boxes are never clamped to the surface. A formula is free to place a
// widget off-surface and that result is reported as computed; correcting it
// silently would hide exactly the defects this engine exists to expose.
//
// Overlay widgets (dropdown option panels) are only materialized when their
// owning dropdown appears in [Options.Expanded]. A collapsed dropdown's
// panel occupies neither paint time nor analysis.
package layout

import (
	"github.com/aliace-game/screenlayout/pkg/errors"
	"github.com/aliace-game/screenlayout/pkg/geometry"
	"github.com/aliace-game/screenlayout/pkg/screen"
)

// Placed pairs a computed box with the spec that produced it.
// The slice order of a build result is the screen's declaration order.
type Placed struct {
	Spec *screen.WidgetSpec
	Box  geometry.Box

	// ScrollbarVisible is set on scrollable widgets whose content height
	// exceeds the viewport for the built surface.
	ScrollbarVisible bool
}

// Options tunes a layout pass beyond the screen table itself.
type Options struct {
	// Expanded lists the dropdowns whose overlay panels exist this pass.
	// Entries may name the dropdown or its panel widget.
	Expanded []string

	// Items is the live item count of scrollable lists, used to decide
	// scrollbar visibility. Zero means an empty list.
	Items int
}

// Build computes boxes for every base widget of the screen.
// Collapsed overlays are excluded; use [BuildWith] to expand dropdowns.
func Build(scr *screen.Screen, size geometry.Surface) ([]Placed, error) {
	return BuildWith(scr, size, Options{})
}

// BuildWith computes boxes for the screen under the given options.
//
// The result preserves declaration order; active overlay panels appear at
// their declared position (paint order is the draw-order resolver's job, not
// the builder's). Fails with INVALID_SURFACE for non-positive dimensions.
func BuildWith(scr *screen.Screen, size geometry.Surface, opts Options) ([]Placed, error) {
	if size.Width < 1 || size.Height < 1 {
		return nil, errors.New(errors.ErrCodeInvalidSurface,
			"surface %dx%d: dimensions must be positive", size.Width, size.Height)
	}

	expanded := make(map[string]bool, len(opts.Expanded))
	for _, id := range opts.Expanded {
		expanded[id] = true
	}

	placed := make([]Placed, 0, len(scr.Widgets))
	for i := range scr.Widgets {
		w := &scr.Widgets[i]

		if w.IsOverlay() {
			if !expanded[w.ID] && !expanded[w.Owner] {
				continue
			}
			box, err := overlayBox(scr, w, size.Height)
			if err != nil {
				return nil, err
			}
			placed = append(placed, Placed{Spec: w, Box: box})
			continue
		}

		top := w.Top(size.Height)
		box := geometry.Box{
			ID:     w.ID,
			Top:    top,
			Bottom: top + w.PixelHeight(size.Height, scr.LabelHeight),
			Left:   w.Left,
			Right:  w.Right,
		}

		p := Placed{Spec: w, Box: box}
		if w.Scrollable {
			p.ScrollbarVisible = opts.Items*w.ItemHeightPx() > box.Height()
		}
		placed = append(placed, p)
	}

	return placed, nil
}

// overlayBox hangs a dropdown's option panel off its owner's bottom edge.
func overlayBox(scr *screen.Screen, w *screen.WidgetSpec, surfaceHeight int) (geometry.Box, error) {
	owner, err := scr.Widget(w.Owner)
	if err != nil {
		return geometry.Box{}, err
	}

	top := owner.Top(surfaceHeight) + owner.PixelHeight(surfaceHeight, scr.LabelHeight)
	return geometry.Box{
		ID:     w.ID,
		Top:    top,
		Bottom: top + w.PixelHeight(surfaceHeight, scr.LabelHeight),
		Left:   owner.Left,
		Right:  owner.Right,
	}, nil
}

// Boxes strips the spec pairing from a build result.
func Boxes(placed []Placed) []geometry.Box {
	boxes := make([]geometry.Box, len(placed))
	for i, p := range placed {
		boxes[i] = p.Box
	}
	return boxes
}

// Find returns the placed entry with the given widget id.
func Find(placed []Placed, id string) (Placed, bool) {
	for _, p := range placed {
		if p.Box.ID == id {
			return p, true
		}
	}
	return Placed{}, false
}

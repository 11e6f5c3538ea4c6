// Package render turns layout passes and overlap reports into images.
//
// Two visualizations are provided: a direct SVG of the computed boxes in
// paint order ([RenderSVG]), and a node-link diagram of the overlap report
// ([OverlapDOT] + [RenderGraphSVG]) where widgets are nodes and defective
// pairs are edges. The box SVG is written by hand; the diagram goes through
// Graphviz in-process.
package render

import (
	"bytes"
	"fmt"

	"github.com/aliace-game/screenlayout/pkg/geometry"
	"github.com/aliace-game/screenlayout/pkg/layout"
	"github.com/aliace-game/screenlayout/pkg/overlap"
)

// Box fill colors, loosely after the analyzed screens' palette.
const (
	fillBase    = "#ffffff"
	fillOverlay = "#dbeafe"
	fillDefect  = "#fecaca"
	strokeBase  = "#000000"
	strokeFrame = "#9ca3af"
)

type RenderOption func(*renderer)

type renderer struct {
	order   []string
	defects []overlap.Record
}

// WithOrder paints boxes in the given id order instead of input order.
// Use the draw-order resolver's output here so overlays land on top.
func WithOrder(order []string) RenderOption {
	return func(r *renderer) { r.order = order }
}

// WithDefects shades every widget that appears in a defective pair.
func WithDefects(records []overlap.Record) RenderOption {
	return func(r *renderer) { r.defects = overlap.Defects(records) }
}

// RenderSVG renders the computed boxes onto the surface.
// Off-surface boxes are drawn with a dashed stroke.
func RenderSVG(placed []layout.Placed, size geometry.Surface, opts ...RenderOption) []byte {
	r := renderer{}
	for _, opt := range opts {
		opt(&r)
	}

	defective := make(map[string]bool, len(r.defects)*2)
	for _, rec := range r.defects {
		defective[rec.A] = true
		defective[rec.B] = true
	}

	byID := make(map[string]layout.Placed, len(placed))
	for _, p := range placed {
		byID[p.Box.ID] = p
	}

	order := r.order
	if order == nil {
		order = make([]string, len(placed))
		for i, p := range placed {
			order[i] = p.Box.ID
		}
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		size.Width, size.Height, size.Width, size.Height)
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%d" height="%d" fill="%s" stroke="%s"/>`+"\n",
		size.Width, size.Height, fillBase, strokeFrame)

	for _, id := range order {
		p, ok := byID[id]
		if !ok {
			continue
		}
		renderBox(&buf, p, size, defective[id])
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderBox(buf *bytes.Buffer, p layout.Placed, size geometry.Surface, defect bool) {
	box := p.Box

	left, right := box.Left, box.Right
	if !box.HasHorizontal() {
		// Vertical-only widgets span a conventional band for display.
		left, right = 50, size.Width-50
	}

	fill := fillBase
	if p.Spec.IsOverlay() {
		fill = fillOverlay
	}
	if defect {
		fill = fillDefect
	}

	dash := ""
	if !size.Contains(box) {
		dash = ` stroke-dasharray="6,3"`
	}

	fmt.Fprintf(buf, `  <rect id="widget-%s" x="%d" y="%d" width="%d" height="%d" fill="%s" stroke="%s" stroke-width="2"%s/>`+"\n",
		box.ID, left, box.Top, right-left, box.Height(), fill, strokeBase, dash)
	fmt.Fprintf(buf, `  <text x="%d" y="%d" font-size="12" font-family="sans-serif">%s</text>`+"\n",
		left+5, box.Top+14, box.ID)
}

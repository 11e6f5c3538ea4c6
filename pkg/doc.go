// Package pkg provides the core libraries for screen layout computation.
//
// # Overview
//
// Screenlayout models the game's two-column screens as declarative widget
// tables whose vertical anchors are small formulas over the surface height.
// The pkg directory splits into a pipeline of small packages:
//
//	Widget tables ([screen])
//	         ↓
//	    [formula] package (compile and evaluate anchor expressions)
//	         ↓
//	    [layout] package (place widgets into pixel boxes)
//	         ↓
//	    [overlap] / [draworder] packages (validate and order)
//	         ↓
//	    [render] package (SVG diagrams and overlap graphs)
//
// # Quick Start
//
// Compute a screen's boxes and report its overlapping pairs:
//
//	scr, _ := screen.Default().Get(screen.ScreenDifficulty)
//	placed, _ := layout.Build(scr, geometry.Surface{Width: 800, Height: 600})
//	for _, r := range overlap.Defects(overlap.New().Analyze(placed)) {
//	    fmt.Println(r)
//	}
//
// # Main Packages
//
// [screen] - Widget tables for the built-in screens, a registry, and a TOML
// loader for external screen definitions.
//
// [formula] - The anchor expression language: integer literals, the surface
// height variable, floor division, addition and subtraction.
//
// [geometry] - Pixel boxes with half-open vertical intervals and the
// interval arithmetic the analyzer is built on.
//
// [layout] - Places a screen's widgets onto a surface, including expanded
// dropdown option panels and scrollbar visibility.
//
// [overlap] - Pairwise overlap classification, scrollbar encroachment, and
// overlay coverage reports.
//
// [draworder] - Back-to-front paint order with expanded panels last.
//
// [render] - SVG rendering of layouts and Graphviz overlap graphs.
//
// [errors] - Structured errors with machine-readable codes shared by every
// package above.
package pkg

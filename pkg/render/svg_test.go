package render

import (
	"strings"
	"testing"

	"github.com/aliace-game/screenlayout/pkg/draworder"
	"github.com/aliace-game/screenlayout/pkg/geometry"
	"github.com/aliace-game/screenlayout/pkg/layout"
	"github.com/aliace-game/screenlayout/pkg/overlap"
	"github.com/aliace-game/screenlayout/pkg/screen"
)

var surface800x600 = geometry.Surface{Width: 800, Height: 600}

func difficultyPlaced(t *testing.T, expanded []string) (*screen.Screen, []layout.Placed) {
	t.Helper()
	scr, err := screen.Default().Get(screen.ScreenDifficulty)
	if err != nil {
		t.Fatal(err)
	}
	placed, err := layout.BuildWith(scr, surface800x600, layout.Options{Expanded: expanded})
	if err != nil {
		t.Fatal(err)
	}
	return scr, placed
}

func TestRenderSVGContainsAllBoxes(t *testing.T) {
	_, placed := difficultyPlaced(t, nil)

	svg := string(RenderSVG(placed, surface800x600))
	if !strings.HasPrefix(svg, "<svg xmlns=") || !strings.HasSuffix(svg, "</svg>\n") {
		t.Fatal("malformed SVG envelope")
	}

	for _, p := range placed {
		if !strings.Contains(svg, `id="widget-`+p.Box.ID+`"`) {
			t.Errorf("SVG missing box for %q", p.Box.ID)
		}
	}
}

func TestRenderSVGPaintOrder(t *testing.T) {
	scr, placed := difficultyPlaced(t, []string{screen.WidgetTimeDropdown})
	order := draworder.Resolve(scr, []string{screen.WidgetTimeDropdown})

	svg := string(RenderSVG(placed, surface800x600, WithOrder(order)))

	// SVG paints in document order, so the panel rect must be last.
	panel := strings.Index(svg, `id="widget-`+screen.WidgetTimeDropdownOptions+`"`)
	if panel == -1 {
		t.Fatal("panel not rendered")
	}
	for _, p := range placed {
		if p.Box.ID == screen.WidgetTimeDropdownOptions {
			continue
		}
		if pos := strings.Index(svg, `id="widget-`+p.Box.ID+`"`); pos > panel {
			t.Errorf("%q rendered after the overlay panel", p.Box.ID)
		}
	}
}

func TestRenderSVGDefectShading(t *testing.T) {
	_, placed := difficultyPlaced(t, nil)
	records := overlap.New().Analyze(placed)

	svg := string(RenderSVG(placed, surface800x600, WithDefects(records)))
	if !strings.Contains(svg, fillDefect) {
		t.Error("defective widgets not shaded")
	}
}

func TestRenderSVGOffSurfaceDashed(t *testing.T) {
	scr, err := screen.Default().Get(screen.ScreenDifficulty)
	if err != nil {
		t.Fatal(err)
	}
	small := geometry.Surface{Width: 800, Height: 100}
	placed, err := layout.Build(scr, small)
	if err != nil {
		t.Fatal(err)
	}

	svg := string(RenderSVG(placed, small))
	if !strings.Contains(svg, "stroke-dasharray") {
		t.Error("off-surface boxes should be dashed")
	}
}

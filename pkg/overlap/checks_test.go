package overlap

import (
	"testing"

	"github.com/aliace-game/screenlayout/pkg/layout"
	"github.com/aliace-game/screenlayout/pkg/screen"
)

// The built-in management screen reserves 15px of scrollbar inside a 50px
// gutter, so even a full list stays clear of the sidebar.
func TestScrollbarCheckBuiltinClear(t *testing.T) {
	placed := buildScreen(t, screen.ScreenManagement, layout.Options{Items: 40})

	if records := New().ScrollbarCheck(placed); len(records) != 0 {
		t.Errorf("ScrollbarCheck = %v, want clear", records)
	}
}

// A wider list whose scrollbar region reaches into the sidebar collides
// with every button its viewport spans, but only once content overflows.
func TestScrollbarCheckCollision(t *testing.T) {
	scr, err := screen.NewScreen("wide", []screen.WidgetSpec{
		{
			ID:                "wordList",
			Anchor:            "200",
			Height:            "h - 270",
			Left:              50,
			Right:             590,
			Scrollable:        true,
			ScrollbarReserved: 15,
		},
		{ID: "deleteWordButton", Anchor: "200", Height: "40", Column: screen.ColumnSidebar, Left: 600, Right: 750},
		{ID: "saveWordButton", Anchor: "250", Height: "40", Column: screen.ColumnSidebar, Left: 600, Right: 750},
	})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		items int
		want  int
	}{
		{"fits viewport", 5, 0},
		{"overflows viewport", 20, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			placed, err := layout.BuildWith(scr, surface800x600, layout.Options{Items: tt.items})
			if err != nil {
				t.Fatal(err)
			}

			records := New().ScrollbarCheck(placed)
			if len(records) != tt.want {
				t.Fatalf("ScrollbarCheck = %v, want %d records", records, tt.want)
			}
			for _, r := range records {
				if r.A != "wordList" || r.Kind != KindOverlap {
					t.Errorf("unexpected record %+v", r)
				}
			}
		})
	}
}

func TestOverlayCoverageDifficulty(t *testing.T) {
	placed := buildScreen(t, screen.ScreenDifficulty, layout.Options{
		Expanded: []string{screen.WidgetTimeDropdown},
	})

	records := New().OverlayCoverage(placed)
	if len(records) != 1 {
		t.Fatalf("OverlayCoverage = %v, want exactly the confirm button", records)
	}

	rec := records[0]
	if rec.A != screen.WidgetTimeDropdownOptions || rec.B != "confirmButton" {
		t.Errorf("coverage pair = (%s, %s)", rec.A, rec.B)
	}
	// Panel [370,460) over button [400,450).
	if rec.Amount != 50 {
		t.Errorf("coverage amount = %d, want 50", rec.Amount)
	}
}

// The management dropdown panel spans [190,280) and covers the word list,
// but never the sidebar buttons across the column gap.
func TestOverlayCoverageRespectsColumns(t *testing.T) {
	placed := buildScreen(t, screen.ScreenManagement, layout.Options{
		Expanded: []string{screen.WidgetDifficultyDropdown},
	})

	records := New().OverlayCoverage(placed)

	if _, ok := Between(records, screen.WidgetDifficultyDropdownOptions, screen.WidgetWordList); !ok {
		t.Errorf("panel should cover the word list: %v", records)
	}
	if _, ok := Between(records, screen.WidgetDifficultyDropdownOptions, "deleteWordButton"); ok {
		t.Error("panel must not cover buttons in the other column")
	}
}

func TestCoverageEmptyWhenCollapsed(t *testing.T) {
	placed := buildScreen(t, screen.ScreenDifficulty, layout.Options{})

	if records := New().OverlayCoverage(placed); len(records) != 0 {
		t.Errorf("OverlayCoverage = %v, want empty for collapsed dropdowns", records)
	}
}

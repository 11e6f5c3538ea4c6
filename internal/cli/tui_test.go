package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aliace-game/screenlayout/pkg/geometry"
	"github.com/aliace-game/screenlayout/pkg/overlap"
	"github.com/aliace-game/screenlayout/pkg/screen"
)

func previewModel(t *testing.T, screenID string) PreviewModel {
	t.Helper()
	scr, err := screen.Default().Get(screenID)
	if err != nil {
		t.Fatal(err)
	}
	return NewPreviewModel(scr, geometry.Surface{Width: 800, Height: 600}, 0, overlap.DefaultMinGap)
}

func TestPreviewModelInitialState(t *testing.T) {
	m := previewModel(t, screen.ScreenDifficulty)

	if m.Err != nil {
		t.Fatalf("initial layout error: %v", m.Err)
	}
	if len(m.placed) != 8 {
		t.Errorf("placed %d widgets, want 8 (collapsed panel excluded)", len(m.placed))
	}

	overlaps := 0
	for _, r := range m.records {
		if r.Kind == overlap.KindOverlap {
			overlaps++
		}
	}
	if overlaps != 3 {
		t.Errorf("initial overlap count = %d, want 3", overlaps)
	}
}

func TestPreviewModelToggleDropdown(t *testing.T) {
	m := previewModel(t, screen.ScreenDifficulty)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(PreviewModel)

	if m.Err != nil {
		t.Fatalf("layout error after toggle: %v", m.Err)
	}
	if len(m.placed) != 9 {
		t.Errorf("placed %d widgets after expanding, want 9", len(m.placed))
	}

	found := false
	for i := range m.placed {
		if m.placed[i].Box.ID == screen.WidgetTimeDropdownOptions {
			found = true
		}
	}
	if !found {
		t.Error("option panel missing after expanding its dropdown")
	}

	// A second toggle collapses it again.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(PreviewModel)
	if len(m.placed) != 8 {
		t.Errorf("placed %d widgets after collapsing, want 8", len(m.placed))
	}
}

func TestPreviewModelQuit(t *testing.T) {
	m := previewModel(t, screen.ScreenDifficulty)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should produce a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the program")
	}
}

func TestPreviewModelView(t *testing.T) {
	m := previewModel(t, screen.ScreenManagement)

	view := m.View()
	if !strings.Contains(view, screen.ScreenManagement) {
		t.Error("view should name the screen")
	}
	if !strings.Contains(view, "wordList") {
		t.Error("view should list widget boxes")
	}
	if !strings.Contains(view, screen.WidgetDifficultyDropdown) {
		t.Error("view should list the screen's dropdowns")
	}
}

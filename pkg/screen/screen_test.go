package screen

import (
	"testing"

	"github.com/aliace-game/screenlayout/pkg/errors"
)

func TestNewScreenValidation(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		widgets  []WidgetSpec
		wantCode errors.Code
	}{
		{
			name: "valid",
			id:   "custom",
			widgets: []WidgetSpec{
				{ID: "a", Anchor: "20", Height: "40"},
			},
		},
		{
			name:     "empty id",
			id:       "",
			widgets:  []WidgetSpec{{ID: "a", Anchor: "20"}},
			wantCode: errors.ErrCodeInvalidScreen,
		},
		{
			name:     "no widgets",
			id:       "custom",
			widgets:  nil,
			wantCode: errors.ErrCodeInvalidScreen,
		},
		{
			name: "duplicate widget id",
			id:   "custom",
			widgets: []WidgetSpec{
				{ID: "a", Anchor: "20"},
				{ID: "a", Anchor: "40"},
			},
			wantCode: errors.ErrCodeInvalidScreen,
		},
		{
			name: "bad anchor formula",
			id:   "custom",
			widgets: []WidgetSpec{
				{ID: "a", Anchor: "w/2"},
			},
			wantCode: errors.ErrCodeInvalidScreen,
		},
		{
			name: "bad height formula",
			id:   "custom",
			widgets: []WidgetSpec{
				{ID: "a", Anchor: "20", Height: "h/0"},
			},
			wantCode: errors.ErrCodeInvalidScreen,
		},
		{
			name: "overlay without owner",
			id:   "custom",
			widgets: []WidgetSpec{
				{ID: "panel", Class: ClassOverlay, OptionCount: 3},
			},
			wantCode: errors.ErrCodeInvalidScreen,
		},
		{
			name: "overlay with unknown owner",
			id:   "custom",
			widgets: []WidgetSpec{
				{ID: "panel", Class: ClassOverlay, Owner: "ghost", OptionCount: 3},
			},
			wantCode: errors.ErrCodeInvalidScreen,
		},
		{
			name: "overlay with anchor",
			id:   "custom",
			widgets: []WidgetSpec{
				{ID: "dd", Anchor: "150", Height: "40"},
				{ID: "panel", Class: ClassOverlay, Owner: "dd", OptionCount: 3, Anchor: "190"},
			},
			wantCode: errors.ErrCodeInvalidScreen,
		},
		{
			name: "right before left",
			id:   "custom",
			widgets: []WidgetSpec{
				{ID: "a", Anchor: "20", Left: 100, Right: 50},
			},
			wantCode: errors.ErrCodeInvalidScreen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewScreen(tt.id, tt.widgets)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("NewScreen() error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("NewScreen() succeeded, want error")
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestPixelHeight(t *testing.T) {
	s, err := NewScreen("custom", []WidgetSpec{
		{ID: "fixed", Anchor: "20", Height: "40"},
		{ID: "derived", Anchor: "200", Height: "h - 270"},
		{ID: "label", Anchor: "70", Label: true},
		{ID: "bare", Anchor: "90"},
		{ID: "dd", Anchor: "150", Height: "40"},
		{ID: "panel", Class: ClassOverlay, Owner: "dd", OptionCount: 3},
		{ID: "bigPanel", Class: ClassOverlay, Owner: "dd", OptionCount: 9},
	})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		id   string
		want int
	}{
		{"fixed", 40},
		{"derived", 330},
		{"label", DefaultLabelHeight},
		{"bare", 0},
		{"panel", 90},     // 3 rows of 30
		{"bigPanel", 150}, // capped at 5 visible rows
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			w, err := s.Widget(tt.id)
			if err != nil {
				t.Fatal(err)
			}
			if got := w.PixelHeight(600, s.LabelHeight); got != tt.want {
				t.Errorf("PixelHeight = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWidgetLookup(t *testing.T) {
	s, err := NewScreen("custom", []WidgetSpec{{ID: "a", Anchor: "20"}})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := s.Widget("a"); err != nil {
		t.Errorf("Widget(a) error: %v", err)
	}

	_, err = s.Widget("missing")
	if !errors.Is(err, errors.ErrCodeUnknownWidget) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeUnknownWidget)
	}
}

func TestParseClass(t *testing.T) {
	tests := []struct {
		in      string
		want    Class
		wantErr bool
	}{
		{"", ClassBase, false},
		{"base", ClassBase, false},
		{"none", ClassNone, false},
		{"overlay", ClassOverlay, false},
		{"popup", ClassBase, true},
	}

	for _, tt := range tests {
		got, err := ParseClass(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseClass(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseClass(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseColumn(t *testing.T) {
	tests := []struct {
		in      string
		want    Column
		wantErr bool
	}{
		{"", ColumnContent, false},
		{"content", ColumnContent, false},
		{"left", ColumnContent, false},
		{"sidebar", ColumnSidebar, false},
		{"right", ColumnSidebar, false},
		{"middle", ColumnContent, true},
	}

	for _, tt := range tests {
		got, err := ParseColumn(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColumn(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseColumn(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// Package screen defines widget specification tables and the screen registry.
//
// A [Screen] is an ordered list of [WidgetSpec] entries describing where each
// widget of a named screen sits on the drawing surface: a vertical anchor
// expression over the surface height, a height (fixed, expression-derived, or
// a configurable label default), an overlay class, and optional horizontal
// extents for the two-column word-management layout.
//
// Screens are static configuration. The two analyzed screens are registered
// by [Default]; additional tables can be loaded from TOML files with
// [Registry.LoadFile]. All anchor and height expressions are compiled at
// registration, so a malformed table fails at load time rather than inside a
// layout pass.
package screen

import (
	"fmt"

	"github.com/aliace-game/screenlayout/pkg/errors"
	"github.com/aliace-game/screenlayout/pkg/formula"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Identifiers of the built-in screens.
const (
	ScreenDifficulty = "difficulty"
	ScreenManagement = "management"
)

// Widget ids referenced by code outside the tables.
const (
	WidgetTimeDropdown              = "timeDropdown"
	WidgetTimeDropdownOptions       = "timeDropdownOptions"
	WidgetDifficultyDropdown        = "difficultyDropdown"
	WidgetDifficultyDropdownOptions = "difficultyDropdownOptions"
	WidgetWordList                  = "wordList"
)

// Layout defaults carried over from the analyzed implementation.
const (
	// DefaultLabelHeight is the assumed height of a text-only label whose
	// table entry declares none. The analysis never fixes a value; 20px
	// reproduces its recorded findings.
	DefaultLabelHeight = 20

	// DefaultRowHeight is the height of one dropdown option row.
	DefaultRowHeight = 30

	// MaxVisibleOptions caps the rows shown by an expanded dropdown panel.
	MaxVisibleOptions = 5

	// DefaultItemHeight is the height of one scrollable list item.
	DefaultItemHeight = 30
)

// =============================================================================
// Widget Classes
// =============================================================================

// Class is a widget's draw-order class.
type Class int

const (
	// ClassBase marks a permanently-present widget subject to the standard
	// overlap check.
	ClassBase Class = iota

	// ClassNone marks a decorative widget painted with the base pass but
	// excluded from overlap analysis.
	ClassNone

	// ClassOverlay marks a transient widget (a dropdown option panel) that
	// exists only while its owner is expanded and always paints last.
	ClassOverlay
)

// String returns the lowercase class name used in TOML tables.
func (c Class) String() string {
	switch c {
	case ClassBase:
		return "base"
	case ClassNone:
		return "none"
	case ClassOverlay:
		return "overlay"
	}
	return fmt.Sprintf("class(%d)", int(c))
}

// ParseClass converts a TOML class string to a Class.
// The empty string maps to ClassBase, the common case.
func ParseClass(s string) (Class, error) {
	switch s {
	case "", "base":
		return ClassBase, nil
	case "none":
		return ClassNone, nil
	case "overlay":
		return ClassOverlay, nil
	}
	return ClassBase, errors.New(errors.ErrCodeInvalidWidget, "unknown widget class %q", s)
}

// Column identifies which horizontal band a widget belongs to. Widgets in
// different columns never share horizontal space, so the overlap analyzer
// only compares within a column (the scrollbar hazard excepted).
type Column int

const (
	// ColumnContent is the main (left) content band.
	ColumnContent Column = iota

	// ColumnSidebar is the right-hand button band of the management screen.
	ColumnSidebar
)

// String returns the lowercase column name used in TOML tables.
func (c Column) String() string {
	if c == ColumnSidebar {
		return "sidebar"
	}
	return "content"
}

// ParseColumn converts a TOML column string to a Column.
func ParseColumn(s string) (Column, error) {
	switch s {
	case "", "content", "left":
		return ColumnContent, nil
	case "sidebar", "right":
		return ColumnSidebar, nil
	}
	return ColumnContent, errors.New(errors.ErrCodeInvalidWidget, "unknown column %q", s)
}

// =============================================================================
// WidgetSpec
// =============================================================================

// WidgetSpec declares a single widget of a screen.
//
// Base widgets carry an Anchor expression and usually a Height expression.
// Text-only labels may omit the height and set Label, in which case the
// screen's label height applies. Overlay widgets omit the anchor entirely:
// their panel hangs off the owner's bottom edge and its height is
// OptionCount rows (capped at MaxVisibleOptions).
type WidgetSpec struct {
	ID     string
	Anchor string // top coordinate expression over the surface height
	Height string // height expression; empty means 0, or the label default
	Label  bool   // text-only label; empty Height uses the screen default
	Class  Class
	Column Column

	// Overlay fields
	Owner       string // id of the owning dropdown
	OptionCount int    // rows in the option panel
	RowHeight   int    // per-row height; 0 means DefaultRowHeight

	// Horizontal extent (optional; required for the scrollbar check)
	Left  int
	Right int

	// Scrollable list fields
	Scrollable        bool
	ItemHeight        int // per-item height; 0 means DefaultItemHeight
	ScrollbarReserved int // px the scrollbar may extend past Right

	anchor formula.Formula
	height formula.Formula
}

// IsOverlay reports whether the widget is a transient overlay panel.
func (w *WidgetSpec) IsOverlay() bool { return w.Class == ClassOverlay }

// Top evaluates the anchor expression for the given surface height.
// Only valid on widgets of a compiled (registered) screen.
func (w *WidgetSpec) Top(surfaceHeight int) int {
	return w.anchor.Eval(surfaceHeight)
}

// PixelHeight resolves the widget's height for the given surface height.
// labelHeight is the screen's default for text-only labels.
func (w *WidgetSpec) PixelHeight(surfaceHeight, labelHeight int) int {
	if w.IsOverlay() {
		rows := min(w.OptionCount, MaxVisibleOptions)
		rh := w.RowHeight
		if rh == 0 {
			rh = DefaultRowHeight
		}
		return rows * rh
	}
	if !w.height.IsZero() {
		return w.height.Eval(surfaceHeight)
	}
	if w.Label {
		return labelHeight
	}
	return 0
}

// ItemHeightPx returns the scrollable item height, applying the default.
func (w *WidgetSpec) ItemHeightPx() int {
	if w.ItemHeight == 0 {
		return DefaultItemHeight
	}
	return w.ItemHeight
}

func (w *WidgetSpec) compile() error {
	if err := errors.ValidateWidgetID(w.ID); err != nil {
		return err
	}

	if w.IsOverlay() {
		if w.Anchor != "" {
			return errors.New(errors.ErrCodeInvalidWidget,
				"overlay %q cannot declare an anchor; its panel hangs off the owner", w.ID)
		}
		if w.Owner == "" {
			return errors.New(errors.ErrCodeInvalidWidget, "overlay %q has no owner", w.ID)
		}
		if w.OptionCount < 1 {
			return errors.New(errors.ErrCodeInvalidWidget,
				"overlay %q needs at least one option row", w.ID)
		}
		return nil
	}

	f, err := formula.Compile(w.Anchor)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormula, err, "widget %q anchor", w.ID)
	}
	w.anchor = f

	if w.Height != "" {
		hf, err := formula.Compile(w.Height)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidFormula, err, "widget %q height", w.ID)
		}
		w.height = hf
	}

	if w.Right < w.Left {
		return errors.New(errors.ErrCodeInvalidWidget, "widget %q has right < left", w.ID)
	}

	return nil
}

// =============================================================================
// Screen
// =============================================================================

// Screen is an ordered widget table for one named screen. Declaration order
// is the base draw order and the tie-break for overlap sweeps.
type Screen struct {
	ID      string
	Widgets []WidgetSpec

	// LabelHeight is the height assumed for text-only labels that declare
	// none. Zero means DefaultLabelHeight.
	LabelHeight int
}

// NewScreen validates and compiles a widget table into a Screen.
// Validation covers: screen and widget id rules, id uniqueness, formula
// compilation, and overlay owner resolution. Formula failures surface here,
// at configuration-load time, never during a layout pass.
func NewScreen(id string, widgets []WidgetSpec) (*Screen, error) {
	s := &Screen{ID: id, Widgets: widgets, LabelHeight: DefaultLabelHeight}
	if err := s.compile(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Screen) compile() error {
	if err := errors.ValidateScreenID(s.ID); err != nil {
		return err
	}
	if len(s.Widgets) == 0 {
		return errors.New(errors.ErrCodeInvalidScreen, "screen %q has no widgets", s.ID)
	}
	if s.LabelHeight == 0 {
		s.LabelHeight = DefaultLabelHeight
	}

	seen := make(map[string]bool, len(s.Widgets))
	for i := range s.Widgets {
		w := &s.Widgets[i]
		if err := w.compile(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScreen, err, "screen %q", s.ID)
		}
		if seen[w.ID] {
			return errors.New(errors.ErrCodeInvalidScreen,
				"screen %q declares widget %q twice", s.ID, w.ID)
		}
		seen[w.ID] = true
	}

	for i := range s.Widgets {
		w := &s.Widgets[i]
		if w.IsOverlay() && !seen[w.Owner] {
			return errors.New(errors.ErrCodeInvalidScreen,
				"screen %q overlay %q names unknown owner %q", s.ID, w.ID, w.Owner)
		}
	}

	return nil
}

// Widget returns the spec with the given id.
func (s *Screen) Widget(id string) (*WidgetSpec, error) {
	for i := range s.Widgets {
		if s.Widgets[i].ID == id {
			return &s.Widgets[i], nil
		}
	}
	return nil, errors.New(errors.ErrCodeUnknownWidget,
		"screen %q has no widget %q", s.ID, id)
}

// Dropdowns returns the ids of widgets that own an overlay panel, in
// declaration order. These are the widgets a host can expand.
func (s *Screen) Dropdowns() []string {
	var ids []string
	for i := range s.Widgets {
		if s.Widgets[i].IsOverlay() {
			ids = append(ids, s.Widgets[i].Owner)
		}
	}
	return ids
}

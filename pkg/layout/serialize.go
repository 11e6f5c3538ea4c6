package layout

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aliace-game/screenlayout/pkg/geometry"
)

// =============================================================================
// Layout - Serialization Format
// =============================================================================

// Layout is the wire format for a computed layout pass, used for CLI output
// files and cross-tool consumption.
type Layout struct {
	Screen   string      `json:"screen"`
	Width    int         `json:"width"`
	Height   int         `json:"height"`
	Expanded []string    `json:"expanded,omitempty"`
	Boxes    []BoxRecord `json:"boxes"`
}

// BoxRecord is one positioned widget in the wire format.
type BoxRecord struct {
	ID        string `json:"id"`
	Top       int    `json:"top"`
	Bottom    int    `json:"bottom"`
	Left      int    `json:"left,omitempty"`
	Right     int    `json:"right,omitempty"`
	Class     string `json:"class,omitempty"`
	Column    string `json:"column,omitempty"`
	Scrollbar bool   `json:"scrollbar,omitempty"`
}

// Export converts a build result to its wire format.
func Export(screenID string, size geometry.Surface, opts Options, placed []Placed) Layout {
	l := Layout{
		Screen:   screenID,
		Width:    size.Width,
		Height:   size.Height,
		Expanded: opts.Expanded,
		Boxes:    make([]BoxRecord, len(placed)),
	}
	for i, p := range placed {
		l.Boxes[i] = BoxRecord{
			ID:        p.Box.ID,
			Top:       p.Box.Top,
			Bottom:    p.Box.Bottom,
			Left:      p.Box.Left,
			Right:     p.Box.Right,
			Class:     p.Spec.Class.String(),
			Column:    p.Spec.Column.String(),
			Scrollbar: p.ScrollbarVisible,
		}
	}
	return l
}

// Marshal serializes a Layout to pretty-printed JSON bytes.
func Marshal(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// Unmarshal deserializes JSON bytes into a Layout.
func Unmarshal(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("unmarshal layout: %w", err)
	}
	if len(l.Boxes) == 0 {
		return Layout{}, fmt.Errorf("layout contains no boxes")
	}
	return l, nil
}

// WriteFile writes a Layout to a JSON file.
func WriteFile(l Layout, path string) error {
	data, err := Marshal(l)
	if err != nil {
		return fmt.Errorf("marshal layout: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write layout file: %w", err)
	}
	return nil
}

// ReadFile reads a Layout from a JSON file.
func ReadFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read layout file: %w", err)
	}
	return Unmarshal(data)
}

package screen

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/aliace-game/screenlayout/pkg/errors"
)

// widgetTable is the TOML shape of one widget entry.
type widgetTable struct {
	ID                string `toml:"id"`
	Anchor            string `toml:"anchor"`
	Height            string `toml:"height"`
	Label             bool   `toml:"label"`
	Class             string `toml:"class"`
	Column            string `toml:"column"`
	Owner             string `toml:"owner"`
	Options           int    `toml:"options"`
	RowHeight         int    `toml:"row_height"`
	Left              int    `toml:"left"`
	Right             int    `toml:"right"`
	Scrollable        bool   `toml:"scrollable"`
	ItemHeight        int    `toml:"item_height"`
	ScrollbarReserved int    `toml:"scrollbar_reserved"`
}

// screenTable is the TOML shape of one screen.
type screenTable struct {
	ID          string        `toml:"id"`
	LabelHeight int           `toml:"label_height"`
	Widgets     []widgetTable `toml:"widget"`
}

type screenFile struct {
	Screens []screenTable `toml:"screen"`
}

// LoadFile registers every screen table found in a TOML file.
//
// File format:
//
//	[[screen]]
//	id = "difficulty"
//	label_height = 20
//
//	  [[screen.widget]]
//	  id = "title"
//	  anchor = "h/4 - 40"
//	  height = "48"
//	  label = true
//
//	  [[screen.widget]]
//	  id = "timeDropdownOptions"
//	  class = "overlay"
//	  owner = "timeDropdown"
//	  options = 3
//
// Malformed tables fail here, at load time, with INVALID_* codes.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidScreen, err, "read screen file %s", path)
	}
	return r.Load(data)
}

// Load registers every screen table in raw TOML data.
func (r *Registry) Load(data []byte) error {
	var file screenFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode screen tables")
	}
	if len(file.Screens) == 0 {
		return errors.New(errors.ErrCodeInvalidScreen, "no screen tables found")
	}

	for _, st := range file.Screens {
		widgets, err := decodeWidgets(st.Widgets)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScreen, err, "screen %q", st.ID)
		}

		labelHeight := st.LabelHeight
		if labelHeight == 0 {
			labelHeight = r.labelHeight
		}

		s := &Screen{ID: st.ID, Widgets: widgets, LabelHeight: labelHeight}
		if err := s.compile(); err != nil {
			return err
		}
		if _, dup := r.screens[st.ID]; dup {
			return errors.New(errors.ErrCodeInvalidScreen, "screen %q is already registered", st.ID)
		}
		r.screens[st.ID] = s
		r.order = append(r.order, st.ID)
	}

	return nil
}

func decodeWidgets(tables []widgetTable) ([]WidgetSpec, error) {
	widgets := make([]WidgetSpec, 0, len(tables))
	for _, wt := range tables {
		class, err := ParseClass(wt.Class)
		if err != nil {
			return nil, err
		}
		column, err := ParseColumn(wt.Column)
		if err != nil {
			return nil, err
		}
		widgets = append(widgets, WidgetSpec{
			ID:                wt.ID,
			Anchor:            wt.Anchor,
			Height:            wt.Height,
			Label:             wt.Label,
			Class:             class,
			Column:            column,
			Owner:             wt.Owner,
			OptionCount:       wt.Options,
			RowHeight:         wt.RowHeight,
			Left:              wt.Left,
			Right:             wt.Right,
			Scrollable:        wt.Scrollable,
			ItemHeight:        wt.ItemHeight,
			ScrollbarReserved: wt.ScrollbarReserved,
		})
	}
	return widgets, nil
}

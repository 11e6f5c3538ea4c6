package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/aliace-game/screenlayout/pkg/geometry"
	"github.com/aliace-game/screenlayout/pkg/layout"
	"github.com/aliace-game/screenlayout/pkg/overlap"
	"github.com/aliace-game/screenlayout/pkg/screen"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// PreviewModel - Interactive layout inspection
// =============================================================================

// PreviewModel is the bubbletea model for the preview command. It shows a
// screen's widget boxes and live overlap findings while dropdowns are
// toggled open and closed.
type PreviewModel struct {
	Screen   *screen.Screen
	Size     geometry.Surface
	Items    int
	MinGap   int
	Err      error
	cursor   int
	expanded map[string]bool
	placed   []layout.Placed
	records  []overlap.Record
}

// NewPreviewModel creates a preview model and computes the initial layout.
func NewPreviewModel(scr *screen.Screen, size geometry.Surface, items, minGap int) PreviewModel {
	m := PreviewModel{
		Screen:   scr,
		Size:     size,
		Items:    items,
		MinGap:   minGap,
		expanded: make(map[string]bool),
	}
	m.recompute()
	return m
}

// expandedIDs returns the currently expanded dropdown ids in screen order.
func (m *PreviewModel) expandedIDs() []string {
	var ids []string
	for _, id := range m.Screen.Dropdowns() {
		if m.expanded[id] {
			ids = append(ids, id)
		}
	}
	return ids
}

// recompute rebuilds the layout and overlap report for the current state.
func (m *PreviewModel) recompute() {
	placed, err := layout.BuildWith(m.Screen, m.Size, layout.Options{
		Expanded: m.expandedIDs(),
		Items:    m.Items,
	})
	if err != nil {
		m.Err = err
		return
	}
	m.placed = placed

	analyzer := &overlap.Analyzer{MinGap: m.MinGap}
	m.records = analyzer.Analyze(placed)
	m.records = append(m.records, analyzer.ScrollbarCheck(placed)...)
	m.records = append(m.records, analyzer.OverlayCoverage(placed)...)
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	dropdowns := m.Screen.Dropdowns()

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(dropdowns)-1 {
				m.cursor++
			}
		case "enter", " ":
			if len(dropdowns) > 0 {
				id := dropdowns[m.cursor]
				m.expanded[id] = !m.expanded[id]
				m.recompute()
			}
		}
	}
	return m, nil
}

func (m PreviewModel) View() string {
	if m.Err != nil {
		return StyleError.Render("layout error: "+m.Err.Error()) + "\n"
	}

	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("%s @ %dx%d", m.Screen.ID, m.Size.Width, m.Size.Height)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ select dropdown  ⏎/space toggle  q quit"))
	b.WriteString("\n\n")

	b.WriteString(m.dropdownList())
	b.WriteString("\n")
	b.WriteString(m.boxTable())
	b.WriteString("\n")
	b.WriteString(m.findings())

	return b.String()
}

// dropdownList renders the toggleable dropdown list with the cursor.
func (m PreviewModel) dropdownList() string {
	dropdowns := m.Screen.Dropdowns()
	if len(dropdowns) == 0 {
		return listDimStyle.Render("  no dropdowns on this screen") + "\n"
	}

	var b strings.Builder
	for i, id := range dropdowns {
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		state := "collapsed"
		if m.expanded[id] {
			state = "expanded"
		}
		line := fmt.Sprintf("%s%-28s %s", cursor, id, state)
		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// boxTable renders the current widget boxes.
func (m PreviewModel) boxTable() string {
	defective := make(map[string]bool)
	for _, r := range m.records {
		if r.Kind == overlap.KindOverlap {
			defective[r.A] = true
			defective[r.B] = true
		}
	}

	rows := [][]string{}
	for i := range m.placed {
		p := &m.placed[i]
		note := ""
		if p.Spec.IsOverlay() {
			note = "overlay"
		}
		if p.ScrollbarVisible {
			note = "scrollbar"
		}
		rows = append(rows, []string{
			p.Box.ID,
			fmt.Sprintf("[%d, %d)", p.Box.Top, p.Box.Bottom),
			note,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Widget", "Vertical", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row >= 0 && row < len(m.placed) && defective[m.placed[row].Box.ID] {
				return lipgloss.NewStyle().Foreground(colorRed)
			}
			return lipgloss.NewStyle().Foreground(colorGray)
		}).
		Render()
}

// findings renders the live defect summary below the table.
func (m PreviewModel) findings() string {
	var b strings.Builder
	overlaps := 0
	for _, r := range m.records {
		switch {
		case r.Kind == overlap.KindOverlap:
			b.WriteString("  " + StyleError.Render(r.String()) + "\n")
			overlaps++
		case r.Warning:
			b.WriteString("  " + StyleWarning.Render(r.String()) + "\n")
		}
	}
	if overlaps == 0 {
		b.WriteString("  " + StyleSuccess.Render("no overlaps") + "\n")
	}
	return b.String()
}

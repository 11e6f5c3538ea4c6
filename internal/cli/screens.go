package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/aliace-game/screenlayout/pkg/screen"
)

// screensCommand creates the screens command for inspecting the registry.
func (c *CLI) screensCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "screens [screen]",
		Short: "List registered screens or show a screen's widget table",
		Long: `List registered screens or show a screen's widget table.

Without arguments, prints every registered screen with its widget and
dropdown counts. With a screen id, prints the screen's full widget table:
anchor formulas, declared heights, classes, and columns.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry(cmd.Context(), configPath)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				return runScreenDetail(reg, args[0])
			}
			return runScreenList(reg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "TOML file with additional screen definitions")

	return cmd
}

// runScreenList prints a summary table of every registered screen.
func runScreenList(reg *screen.Registry) error {
	rows := [][]string{}
	for _, id := range reg.IDs() {
		scr, err := reg.Get(id)
		if err != nil {
			return err
		}
		rows = append(rows, []string{
			id,
			strconv.Itoa(len(scr.Widgets)),
			strconv.Itoa(len(scr.Dropdowns())),
		})
	}

	fmt.Println(StyleTitle.Render("Registered screens"))
	fmt.Println(screenTable([]string{"Screen", "Widgets", "Dropdowns"}, rows))
	return nil
}

// runScreenDetail prints the widget table for a single screen.
func runScreenDetail(reg *screen.Registry, id string) error {
	scr, err := reg.Get(id)
	if err != nil {
		return err
	}

	rows := [][]string{}
	for i := range scr.Widgets {
		w := &scr.Widgets[i]

		height := w.Height
		if height == "" && w.Label {
			height = fmt.Sprintf("label (%dpx)", scr.LabelHeight)
		}
		if w.IsOverlay() {
			height = fmt.Sprintf("%d rows × %dpx", w.OptionCount, w.RowHeight)
		}

		extra := []string{}
		if w.Owner != "" {
			extra = append(extra, "owner="+w.Owner)
		}
		if w.Scrollable {
			extra = append(extra, "scrollable")
		}

		rows = append(rows, []string{
			w.ID,
			w.Anchor,
			height,
			w.Class.String(),
			w.Column.String(),
			strings.Join(extra, " "),
		})
	}

	fmt.Println(StyleTitle.Render(id))
	fmt.Println(screenTable([]string{"Widget", "Anchor", "Height", "Class", "Column", ""}, rows))
	return nil
}

// screenTable renders rows with the shared table chrome.
func screenTable(headers []string, rows [][]string) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorWhite)
			}
			return lipgloss.NewStyle().Foreground(colorGray)
		}).
		Render()
}

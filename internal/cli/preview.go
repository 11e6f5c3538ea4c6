package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/aliace-game/screenlayout/pkg/overlap"
)

// previewCommand creates the preview command for interactive layout inspection.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		configPath string
		width      int
		height     int
		items      int
		gap        int
	)

	cmd := &cobra.Command{
		Use:   "preview <screen>",
		Short: "Interactively toggle dropdowns and watch the layout",
		Long: `Interactively toggle dropdowns and watch the layout.

Opens a terminal UI showing the screen's widget boxes. Use the arrow keys to
select a dropdown and enter or space to expand or collapse it; the box table
and overlap findings update live. Widgets involved in an overlap are
highlighted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry(cmd.Context(), configPath)
			if err != nil {
				return err
			}
			scr, err := reg.Get(args[0])
			if err != nil {
				return err
			}

			model := NewPreviewModel(scr, surfaceFromFlags(width, height), items, gap)
			p := tea.NewProgram(model, tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("preview: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "TOML file with additional screen definitions")
	cmd.Flags().IntVar(&width, "width", defaultWidth, "surface width in pixels")
	cmd.Flags().IntVar(&height, "height", defaultHeight, "surface height in pixels")
	cmd.Flags().IntVar(&items, "items", 0, "item count for scrollable widgets")
	cmd.Flags().IntVar(&gap, "gap", overlap.DefaultMinGap, "minimum clear gap in pixels (0 uses the default, negative disables warnings)")

	return cmd
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aliace-game/screenlayout/pkg/draworder"
)

// orderCommand creates the order command for printing a screen's draw order.
func (c *CLI) orderCommand() *cobra.Command {
	var (
		configPath  string
		expandedStr string
	)

	cmd := &cobra.Command{
		Use:   "order <screen>",
		Short: "Print the draw order for a screen",
		Long: `Print the draw order for a screen.

Widgets paint back to front in declaration order. Expanded dropdown option
panels always paint last so they cover whatever sits below their owner,
regardless of where the dropdown is declared.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runOrder(cmd.Context(), args[0], configPath, parseIDList(expandedStr))
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "TOML file with additional screen definitions")
	cmd.Flags().StringVarP(&expandedStr, "expanded", "e", "", "comma-separated dropdown ids to expand")

	return cmd
}

// runOrder resolves and prints the draw order, back to front.
func (c *CLI) runOrder(ctx context.Context, screenID, configPath string, expanded []string) error {
	reg, err := loadRegistry(ctx, configPath)
	if err != nil {
		return err
	}
	scr, err := reg.Get(screenID)
	if err != nil {
		return err
	}

	order := draworder.Resolve(scr, expanded)

	fmt.Println(StyleTitle.Render(screenID + " draw order (back to front)"))
	for i, id := range order {
		w, err := scr.Widget(id)
		if err != nil {
			return err
		}
		line := fmt.Sprintf("%2d  %s", i+1, id)
		if w.IsOverlay() {
			line += "  " + StyleWarning.Render("overlay")
		}
		fmt.Println("  " + StyleValue.Render(line))
	}
	return nil
}

package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aliace-game/screenlayout/pkg/layout"
)

// layoutCommand creates the layout command for computing widget boxes.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		configPath  string
		output      string
		expandedStr string
		width       int
		height      int
		items       int
	)

	cmd := &cobra.Command{
		Use:   "layout <screen>",
		Short: "Compute widget boxes for a screen",
		Long: `Compute widget boxes for a screen.

Evaluates every widget's anchor formula against the target surface height and
prints the resulting boxes in declaration order. Collapsed dropdown option
panels are omitted; pass --expanded to include a dropdown's panel, anchored at
the owning widget's bottom edge.

With --output the layout is written as JSON instead of printed, in a format
the 'render' command accepts.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], layoutArgs{
				configPath: configPath,
				output:     output,
				expanded:   parseIDList(expandedStr),
				width:      width,
				height:     height,
				items:      items,
			})
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "TOML file with additional screen definitions")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write layout JSON to file instead of printing")
	cmd.Flags().StringVarP(&expandedStr, "expanded", "e", "", "comma-separated dropdown ids to expand")
	cmd.Flags().IntVar(&width, "width", defaultWidth, "surface width in pixels")
	cmd.Flags().IntVar(&height, "height", defaultHeight, "surface height in pixels")
	cmd.Flags().IntVar(&items, "items", 0, "item count for scrollable widgets")

	return cmd
}

// layoutArgs bundles the layout command's flag values.
type layoutArgs struct {
	configPath string
	output     string
	expanded   []string
	width      int
	height     int
	items      int
}

// runLayout computes the layout and prints or writes it.
func (c *CLI) runLayout(ctx context.Context, screenID string, args layoutArgs) error {
	reg, err := loadRegistry(ctx, args.configPath)
	if err != nil {
		return err
	}
	scr, err := reg.Get(screenID)
	if err != nil {
		return err
	}

	size := surfaceFromFlags(args.width, args.height)
	opts := layout.Options{Expanded: args.expanded, Items: args.items}

	prog := newProgress(loggerFromContext(ctx))
	placed, err := layout.BuildWith(scr, size, opts)
	if err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}
	prog.done(fmt.Sprintf("Placed %d widgets on %dx%d", len(placed), size.Width, size.Height))

	if args.output != "" {
		l := layout.Export(screenID, size, opts, placed)
		if err := layout.WriteFile(l, args.output); err != nil {
			return fmt.Errorf("write output %s: %w", args.output, err)
		}
		printSuccess("Layout written")
		printFile(args.output)
		printNewline()
		printNextStep("Render", fmt.Sprintf("%s render %s --from %s", appName, screenID, args.output))
		return nil
	}

	rows := [][]string{}
	for i := range placed {
		p := &placed[i]

		span := "—"
		if p.Box.HasHorizontal() {
			span = fmt.Sprintf("[%d, %d)", p.Box.Left, p.Box.Right)
		}

		note := ""
		if p.Spec.IsOverlay() {
			note = "expanded"
		}
		if p.ScrollbarVisible {
			note = "scrollbar"
		}
		if !size.Contains(p.Box) {
			note = "off-surface"
		}

		rows = append(rows, []string{
			p.Box.ID,
			fmt.Sprintf("[%d, %d)", p.Box.Top, p.Box.Bottom),
			strconv.Itoa(p.Box.Height()),
			span,
			note,
		})
	}

	fmt.Println(StyleTitle.Render(fmt.Sprintf("%s @ %dx%d", screenID, size.Width, size.Height)))
	fmt.Println(screenTable([]string{"Widget", "Vertical", "Height", "Horizontal", ""}, rows))
	return nil
}

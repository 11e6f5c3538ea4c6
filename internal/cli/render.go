package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aliace-game/screenlayout/pkg/draworder"
	"github.com/aliace-game/screenlayout/pkg/geometry"
	"github.com/aliace-game/screenlayout/pkg/layout"
	"github.com/aliace-game/screenlayout/pkg/overlap"
	"github.com/aliace-game/screenlayout/pkg/render"
	"github.com/aliace-game/screenlayout/pkg/screen"
)

// renderCommand creates the render command for generating SVG diagrams.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		configPath  string
		output      string
		fromFile    string
		expandedStr string
		width       int
		height      int
		items       int
		gap         int
		graph       bool
	)

	cmd := &cobra.Command{
		Use:   "render <screen>",
		Short: "Render a screen's layout to SVG",
		Long: `Render a screen's layout to SVG.

Draws every widget box on the surface in draw order, shading widgets that
overlap another widget. Expanded dropdown panels paint on top. Boxes
extending past the surface are drawn with a dashed stroke.

With --from the boxes are read from a layout JSON file written by
'layout --output' instead of being recomputed; the file's surface and
expanded set take precedence over flags.

With --graph an overlap graph is rendered instead: widgets become nodes and
defective pairs become edges, laid out by Graphviz.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], renderArgs{
				configPath: configPath,
				output:     output,
				fromFile:   fromFile,
				expanded:   parseIDList(expandedStr),
				width:      width,
				height:     height,
				items:      items,
				gap:        gap,
				graph:      graph,
			})
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "TOML file with additional screen definitions")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <screen>.svg)")
	cmd.Flags().StringVar(&fromFile, "from", "", "layout JSON file to render instead of recomputing")
	cmd.Flags().StringVarP(&expandedStr, "expanded", "e", "", "comma-separated dropdown ids to expand")
	cmd.Flags().IntVar(&width, "width", defaultWidth, "surface width in pixels")
	cmd.Flags().IntVar(&height, "height", defaultHeight, "surface height in pixels")
	cmd.Flags().IntVar(&items, "items", 0, "item count for scrollable widgets")
	cmd.Flags().IntVar(&gap, "gap", overlap.DefaultMinGap, "minimum clear gap in pixels (0 uses the default, negative disables warnings)")
	cmd.Flags().BoolVar(&graph, "graph", false, "render the overlap graph instead of the layout")

	return cmd
}

// renderArgs bundles the render command's flag values.
type renderArgs struct {
	configPath string
	output     string
	fromFile   string
	expanded   []string
	width      int
	height     int
	items      int
	gap        int
	graph      bool
}

// runRender computes or loads the layout and writes the SVG.
func (c *CLI) runRender(ctx context.Context, screenID string, args renderArgs) error {
	logger := loggerFromContext(ctx)

	reg, err := loadRegistry(ctx, args.configPath)
	if err != nil {
		return err
	}
	scr, err := reg.Get(screenID)
	if err != nil {
		return err
	}

	size := surfaceFromFlags(args.width, args.height)
	expanded := args.expanded

	var placed []layout.Placed
	if args.fromFile != "" {
		placed, size, expanded, err = loadPlaced(scr, args.fromFile)
	} else {
		placed, err = layout.BuildWith(scr, size, layout.Options{Expanded: expanded, Items: args.items})
	}
	if err != nil {
		return err
	}

	analyzer := &overlap.Analyzer{MinGap: args.gap}
	records := analyzer.Analyze(placed)

	var data []byte
	if args.graph {
		logger.Info("Rendering overlap graph")
		dot := render.OverlapDOT(screenID, records)
		data, err = render.RenderGraphSVG(dot)
		if err != nil {
			return fmt.Errorf("render graph: %w", err)
		}
	} else {
		logger.Infof("Rendering %s layout", screenID)
		data = render.RenderSVG(placed, size,
			render.WithOrder(draworder.Resolve(scr, expanded)),
			render.WithDefects(overlap.Defects(records)))
	}

	outputPath := args.output
	if outputPath == "" {
		outputPath = screenID + ".svg"
		if args.graph {
			outputPath = screenID + "_overlap.svg"
		}
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	overlaps, warnings := countDefects(records)
	printSuccess("Rendered %s", screenID)
	printFile(outputPath)
	printStats(len(placed), overlaps, warnings)
	return nil
}

// loadPlaced reads a layout JSON file and rebinds its boxes to the screen's
// widget specs. The file must belong to the given screen.
func loadPlaced(scr *screen.Screen, path string) ([]layout.Placed, geometry.Surface, []string, error) {
	l, err := layout.ReadFile(path)
	if err != nil {
		return nil, geometry.Surface{}, nil, err
	}
	if l.Screen != scr.ID {
		return nil, geometry.Surface{}, nil, fmt.Errorf("layout file %s is for screen %q, not %q", path, l.Screen, scr.ID)
	}

	placed := make([]layout.Placed, 0, len(l.Boxes))
	for _, b := range l.Boxes {
		w, err := scr.Widget(b.ID)
		if err != nil {
			return nil, geometry.Surface{}, nil, err
		}
		placed = append(placed, layout.Placed{
			Spec: w,
			Box: geometry.Box{
				ID:     b.ID,
				Top:    b.Top,
				Bottom: b.Bottom,
				Left:   b.Left,
				Right:  b.Right,
			},
			ScrollbarVisible: b.Scrollbar,
		})
	}
	return placed, geometry.Surface{Width: l.Width, Height: l.Height}, l.Expanded, nil
}

// countDefects counts the overlapping and crowded pairs among records.
func countDefects(records []overlap.Record) (overlaps, warnings int) {
	for _, r := range records {
		switch {
		case r.Kind == overlap.KindOverlap:
			overlaps++
		case r.Warning:
			warnings++
		}
	}
	return overlaps, warnings
}

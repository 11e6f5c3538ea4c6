package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aliace-game/screenlayout/pkg/layout"
	"github.com/aliace-game/screenlayout/pkg/overlap"
)

// overlapCommand creates the overlap command for validating a screen's layout.
func (c *CLI) overlapCommand() *cobra.Command {
	var (
		configPath  string
		expandedStr string
		width       int
		height      int
		items       int
		gap         int
		all         bool
		strict      bool
	)

	cmd := &cobra.Command{
		Use:   "overlap <screen>",
		Short: "Report overlapping and crowded widget pairs",
		Long: `Report overlapping and crowded widget pairs.

Compares every widget pair within the same column and classifies it: pairs
sharing vertical pixels overlap, disjoint pairs closer than the minimum gap
are crowded, everything else is clear. Expanded dropdown panels are reported
separately with the widgets they cover, and scrollable widgets are checked
against the neighbouring column with their scrollbar width included.

By default only defects are printed; --all includes clear pairs. With
--strict the command exits non-zero when any overlap is found, for CI use.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runOverlap(cmd.Context(), args[0], overlapArgs{
				configPath: configPath,
				expanded:   parseIDList(expandedStr),
				width:      width,
				height:     height,
				items:      items,
				gap:        gap,
				all:        all,
				strict:     strict,
			})
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "TOML file with additional screen definitions")
	cmd.Flags().StringVarP(&expandedStr, "expanded", "e", "", "comma-separated dropdown ids to expand")
	cmd.Flags().IntVar(&width, "width", defaultWidth, "surface width in pixels")
	cmd.Flags().IntVar(&height, "height", defaultHeight, "surface height in pixels")
	cmd.Flags().IntVar(&items, "items", 0, "item count for scrollable widgets")
	cmd.Flags().IntVar(&gap, "gap", overlap.DefaultMinGap, "minimum clear gap in pixels (0 uses the default, negative disables warnings)")
	cmd.Flags().BoolVar(&all, "all", false, "print clear pairs as well as defects")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when overlaps are found")

	return cmd
}

// overlapArgs bundles the overlap command's flag values.
type overlapArgs struct {
	configPath string
	expanded   []string
	width      int
	height     int
	items      int
	gap        int
	all        bool
	strict     bool
}

// runOverlap builds the layout, analyzes it, and prints the findings.
func (c *CLI) runOverlap(ctx context.Context, screenID string, args overlapArgs) error {
	reg, err := loadRegistry(ctx, args.configPath)
	if err != nil {
		return err
	}
	scr, err := reg.Get(screenID)
	if err != nil {
		return err
	}

	size := surfaceFromFlags(args.width, args.height)
	placed, err := layout.BuildWith(scr, size, layout.Options{Expanded: args.expanded, Items: args.items})
	if err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}

	loggerFromContext(ctx).Debugf("Analyzing %s: %d widgets, min gap %d", screenID, len(placed), args.gap)

	analyzer := &overlap.Analyzer{MinGap: args.gap}
	records := analyzer.Analyze(placed)
	scrollbar := analyzer.ScrollbarCheck(placed)
	coverage := analyzer.OverlayCoverage(placed)

	overlaps, warnings := printRecords(records, args.all)

	for _, r := range scrollbar {
		printError("scrollbar: %s", r.String())
		overlaps++
	}
	if len(coverage) > 0 {
		printNewline()
		printInfo("Expanded panels cover:")
		for _, r := range coverage {
			printDetail("%s covers %s by %dpx", r.A, r.B, r.Amount)
		}
	}

	printNewline()
	printStats(len(placed), overlaps, warnings)

	if args.strict && overlaps > 0 {
		return fmt.Errorf("%d overlapping pairs on %s", overlaps, screenID)
	}
	return nil
}

// printRecords prints pairwise findings and returns the overlap and warning counts.
// Clear pairs are skipped unless all is set.
func printRecords(records []overlap.Record, all bool) (overlaps, warnings int) {
	for _, r := range records {
		switch {
		case r.Kind == overlap.KindOverlap:
			printError("%s", r.String())
			overlaps++
		case r.Warning:
			printWarning("%s", r.String())
			warnings++
		case all:
			printDetail("%s", r.String())
		}
	}
	return overlaps, warnings
}

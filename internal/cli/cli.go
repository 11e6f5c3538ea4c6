// Package cli implements the screenlayout command-line interface.
package cli

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/aliace-game/screenlayout/pkg/buildinfo"
	"github.com/aliace-game/screenlayout/pkg/geometry"
	"github.com/aliace-game/screenlayout/pkg/screen"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "screenlayout"

	// defaultWidth and defaultHeight match the game's window surface.
	defaultWidth  = 800
	defaultHeight = 600
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Screenlayout computes and validates GUI screen layouts",
		Long:         `Screenlayout is a CLI tool for computing widget layouts of the game's screens from their formula-based anchors, and for finding widget pairs that overlap or sit too close together.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.screensCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.overlapCommand())
	root.AddCommand(c.orderCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Shared Helpers
// =============================================================================

// loadRegistry returns the built-in screen registry, extended with screens
// from a TOML config file when one is given.
func loadRegistry(ctx context.Context, configPath string) (*screen.Registry, error) {
	reg := screen.Default()
	if configPath == "" {
		return reg, nil
	}
	if err := reg.LoadFile(configPath); err != nil {
		return nil, err
	}
	loggerFromContext(ctx).Debugf("Loaded screen config %s", configPath)
	return reg, nil
}

// parseIDList parses a comma-separated widget id list into a slice.
// Empty entries are dropped so trailing commas are harmless.
func parseIDList(s string) []string {
	if s == "" {
		return nil
	}
	var ids []string
	for _, id := range strings.Split(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// surfaceFromFlags builds the target surface from --width/--height values.
func surfaceFromFlags(width, height int) geometry.Surface {
	return geometry.Surface{Width: width, Height: height}
}

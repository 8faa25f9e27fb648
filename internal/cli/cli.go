// Package cli implements the image-artifex command-line interface.
//
// The transform commands (resize, crop, cut, thumb, reduce, rotate, opacity,
// watermark) load one image, apply one operation and save the result.
// inspect prints what the background detection sees, mcp runs the MCP tool
// server on stdio and serve runs the HTTP server.
//
// # Logging
//
// Log output goes to stderr through charmbracelet/log. The level comes from
// the configuration; --verbose (-v) forces debug level, which also reports
// every decision the transforms make.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ironsheep/image-artifex/internal/config"
	"github.com/ironsheep/image-artifex/internal/transform"
)

const appName = "image-artifex"

// Version is reported by --version.
var Version = "0.1.0"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	cfg        config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Its PersistentPreRunE loads the configuration named by --config.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "image-artifex resizes, crops and thumbnails images",
		Long:         `image-artifex reshapes raster images. Its smart crop and smart thumbnail look at the colours along the image borders to decide where to trim and where to pad, so padding continues the picture's own background.`,
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig()
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to a TOML configuration file")

	root.AddCommand(c.mcpCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.inspectCommand())
	for _, cmd := range c.transformCommands() {
		root.AddCommand(cmd)
	}

	return root
}

func (c *CLI) loadConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	c.SetLogLevel(level)
	c.cfg = cfg
	c.Logger.Debug("configuration loaded", "path", c.configPath, "filter", cfg.Render.Filter, "background", cfg.Render.Background)
	return nil
}

// imageOptions are the options every image the CLI loads gets.
func (c *CLI) imageOptions() []transform.Option {
	return append(c.cfg.ImageOptions(), transform.WithLogger(c.Logger))
}

func (c *CLI) background(flag string) (transform.Background, error) {
	if flag == "" {
		return c.cfg.Background()
	}
	bg, err := transform.ParseBackground(flag)
	if err != nil {
		return transform.Background{}, fmt.Errorf("--bg: %w", err)
	}
	return bg, nil
}

func (c *CLI) quality(flag int) int {
	if flag > 0 {
		return flag
	}
	return c.cfg.Render.Quality
}

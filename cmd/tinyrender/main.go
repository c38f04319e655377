// Package main provides the CLI entry point for tinyrender.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/tinyrender/pkg/adapters/filesink"
	"github.com/user/tinyrender/pkg/adapters/ggrenderer"
	"github.com/user/tinyrender/pkg/adapters/logger"
	"github.com/user/tinyrender/pkg/adapters/nullsink"
	"github.com/user/tinyrender/pkg/adapters/osfilesystem"
	"github.com/user/tinyrender/pkg/adapters/y4mencoder"
	"github.com/user/tinyrender/pkg/config"
	"github.com/user/tinyrender/pkg/orchestrator"
	"github.com/user/tinyrender/pkg/ports"
	"github.com/user/tinyrender/pkg/stages/encode"
	"github.com/user/tinyrender/pkg/stages/paint"
	"github.com/user/tinyrender/pkg/summarizer"
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Render  RenderCmd  `cmd:"" default:"withargs" help:"Render a scene to a YUV4MPEG2 stream."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// RenderCmd defines the render subcommand.
type RenderCmd struct {
	// Scene
	Config string `short:"c" type:"existingfile" help:"Scene file (YAML). Defaults to the red/green/blue demo."`

	// Output; flags override the scene file
	Output   *string  `short:"o" help:"Output .y4m file path (default: output.y4m)."`
	Width    *int     `short:"W" help:"Frame width in pixels (default: 1600)."`
	Height   *int     `short:"H" help:"Frame height in pixels (default: 900)."`
	FPS      *int     `help:"Frames per second (default: 60)."`
	Duration *float64 `help:"Duration in seconds (default: 3)."`

	// Debug options
	Debug    bool    `short:"d" help:"Enable debug output."`
	DebugDir *string `help:"Directory for debug output."`

	// Summary
	Summary string `short:"s" help:"Output execution summary to file (Markdown format)."`

	// Logging options
	LogLevel *string `short:"l" help:"Log level (debug, info, warn, error, none)."`
	Quiet    bool    `short:"Q" help:"Suppress all log output."`
}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("tinyrender"),
		kong.Description(l10n.T("Render RGB frames into uncompressed YUV4MPEG2 video.")),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run executes the render command.
func (cmd *RenderCmd) Run() error {
	fs := osfilesystem.New()

	cfg, err := cmd.loadConfig(fs)
	if err != nil {
		return err
	}
	cmd.applyOverrides(&cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log := cmd.newLogger(cfg)

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn(l10n.T("Interrupted, shutting down..."))
			cancel()
		case <-ctx.Done():
		}
	}()

	// Create adapters
	renderer := ggrenderer.New()
	encoder := y4mencoder.New(fs, log)

	// Create debug sink
	var sink ports.DebugSink
	if cfg.Debug {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(cfg.DebugDir, fs, renderer)
	} else {
		sink = nullsink.New()
	}

	// Create stages
	paintStage := paint.NewStage(renderer)
	encodeStage := encode.NewStage(encoder, log)

	// Create orchestrator
	orch := orchestrator.New(
		paintStage,
		encodeStage,
		fs,
		renderer,
		sink,
		log,
	)

	result, err := orch.Run(ctx, cfg.ToOrchestratorConfig())
	if err != nil {
		return err
	}

	log.Info(l10n.F("Output saved to %s", result.OutputPath))

	if cmd.Summary != "" {
		w := summarizer.NewWriter(
			summarizer.NewMarkdownFormatter(
				summarizer.WithTranslator(func(s string) string { return l10n.T(s) }),
				summarizer.WithVersion(version),
			),
			fs,
		)
		if err := w.Write(cmd.Summary, buildSummary(result)); err != nil {
			log.Error(l10n.F("Failed to write summary: %s", err))
		} else {
			log.Info(l10n.F("Summary saved to %s", cmd.Summary))
		}
	}

	return nil
}

func (cmd *RenderCmd) loadConfig(fs ports.FileSystem) (config.Config, error) {
	if cmd.Config == "" {
		return config.Defaults(), nil
	}
	cfg, err := config.LoadFromFile(fs, cmd.Config)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// applyOverrides applies CLI flags on top of the loaded configuration.
func (cmd *RenderCmd) applyOverrides(cfg *config.Config) {
	if cmd.Output != nil {
		cfg.OutputPath = *cmd.Output
	}
	if cmd.Width != nil {
		cfg.Width = *cmd.Width
	}
	if cmd.Height != nil {
		cfg.Height = *cmd.Height
	}
	if cmd.FPS != nil {
		cfg.FPS = *cmd.FPS
	}
	if cmd.Duration != nil {
		cfg.DurationSec = *cmd.Duration
	}
	if cmd.Debug {
		cfg.Debug = true
	}
	if cmd.DebugDir != nil {
		cfg.DebugDir = *cmd.DebugDir
	}
	if cmd.LogLevel != nil {
		cfg.LogLevel = *cmd.LogLevel
	}
	if cmd.Quiet {
		cfg.LogLevel = "none"
	}
}

func (cmd *RenderCmd) newLogger(cfg config.Config) ports.Logger {
	level := ports.ParseLogLevel(cfg.LogLevel)
	if level == ports.LevelNone {
		return logger.NewNoop()
	}
	return logger.NewConsole(level)
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("tinyrender version %s", version))
	return nil
}

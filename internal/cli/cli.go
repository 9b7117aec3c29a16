// Package cli provides the command-line interface for socials.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/klauern/socials"
	"github.com/klauern/socials/internal/config"
	"github.com/klauern/socials/internal/logging"
	"github.com/klauern/socials/internal/ui"
)

var (
	// Version is the current version of the application.
	Version = socials.Version
	// Commit is the git commit hash.
	Commit = "unknown"
	// BuildDate is the date and time of the build.
	BuildDate = "unknown"
)

// ErrSilent marks failures whose message was already written by the command.
// Callers should exit non-zero without printing anything else.
var ErrSilent = errors.New("silent failure")

type configKey struct{}

// Run executes the CLI application with the given context and arguments.
func Run(ctx context.Context, args []string) error {
	return newApp().Run(ctx, args)
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "socials",
		Usage:   "Extract social media profile URLs from a list of URLs",
		Version: Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable verbose output (info level logging)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug output (debug level logging, implies verbose)",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to a YAML or TOML config file",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if err := configureLogging(cmd); err != nil {
				return ctx, err
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return ctx, err
			}
			if err := configureColors(cmd, cfg); err != nil {
				return ctx, err
			}
			return context.WithValue(ctx, configKey{}, cfg), nil
		},
		Commands: []*cli.Command{
			extractCommand(),
			checkCommand(),
			platformsCommand(),
			browseCommand(),
			configCommand(),
			versionCommand(),
		},
	}
}

// loadConfig reads the --config file when given, otherwise the default
// locations, and validates the result.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path := cmd.String("config"); path != "" {
		cfg, err = config.LoadFromPath(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	logging.Debug("configuration loaded",
		slog.Any("platforms", cfg.Extract.Platforms),
		logging.Format(cfg.Output.Format),
	)
	return cfg, nil
}

// configFrom returns the configuration stored by the root Before hook, or
// defaults when the command runs outside the app.
func configFrom(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return config.Default()
}

// configureColors sets up color output based on CLI flags and config.
func configureColors(cmd *cli.Command, cfg *config.Config) error {
	return ui.ConfigureColor(cfg.Output.Color, cmd.Bool("no-color"))
}

// configureLogging sets up the logging level based on CLI flags.
func configureLogging(cmd *cli.Command) error {
	opts := logging.DefaultOptions()
	opts.Output = cmd.Root().ErrWriter
	opts.Level = logging.LevelFor(cmd.Bool("verbose"), cmd.Bool("debug"))
	opts.AddSource = cmd.Bool("debug")

	logging.SetDefault(logging.New(opts))

	logging.Debug("logging configured", slog.String("level", opts.Level.String()))

	return nil
}

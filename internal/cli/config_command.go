package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/klauern/socials/internal/config"
	"github.com/klauern/socials/internal/logging"
	"github.com/klauern/socials/internal/ui"
)

func configCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage socials configuration",
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Print the effective configuration",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					data, err := yaml.Marshal(configFrom(ctx))
					if err != nil {
						return fmt.Errorf("failed to encode config: %w", err)
					}
					_, err = cmd.Root().Writer.Write(data)
					return err
				},
			},
			{
				Name:  "path",
				Usage: "Print the default config file path",
				Action: func(_ context.Context, cmd *cli.Command) error {
					_, _ = fmt.Fprintln(cmd.Root().Writer, config.FilePath())
					return nil
				},
			},
			{
				Name:  "init",
				Usage: "Write a default config file",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Overwrite an existing config file",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					path := config.FilePath()
					if _, err := os.Stat(path); err == nil && !cmd.Bool("force") {
						return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
					} else if err != nil && !errors.Is(err, os.ErrNotExist) {
						return fmt.Errorf("failed to check config file: %w", err)
					}

					if err := config.Default().SaveToPath(path); err != nil {
						return fmt.Errorf("failed to write config: %w", err)
					}
					logging.Info("config written", logging.Path(path))
					_, _ = fmt.Fprintln(cmd.Root().Writer, ui.StatusSuccess("Wrote "+path))
					return nil
				},
			},
		},
	}
}

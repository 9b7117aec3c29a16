package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/klauern/socials/internal/logging"
	"github.com/klauern/socials/internal/ui"
	"github.com/klauern/socials/internal/ui/tui"
)

// runBrowser is swapped out in tests.
var runBrowser = tui.RunBrowse

func browseCommand() *cli.Command {
	return &cli.Command{
		Name:      "browse",
		Usage:     "Interactively browse extracted profiles",
		ArgsUsage: "[FILE]",
		Description: `Extract profiles from FILE or stdin and open them in an interactive table.

   Press y to print the selected URL, r to print its root profile, / to filter
   and tab to cycle through platforms.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "unique",
				Usage: "Drop repeated URLs",
			},
			&cli.BoolFlag{
				Name:  "html",
				Usage: "Treat input as HTML and extract link targets",
			},
		},
		Action: runBrowse,
	}
}

func runBrowse(ctx context.Context, cmd *cli.Command) error {
	cfg := configFrom(ctx)

	urls, err := readInput(cmd)
	if err != nil {
		return err
	}
	extraction, err := extract(cmd, cfg, urls, nil)
	if err != nil {
		return err
	}

	if extraction.Len() == 0 {
		_, _ = fmt.Fprintln(cmd.Root().ErrWriter, ui.StatusWarning("No profiles found."))
		return nil
	}

	result, err := runBrowser(extraction.All())
	if err != nil {
		return fmt.Errorf("browser failed: %w", err)
	}

	switch result.Action {
	case tui.BrowseActionSelect, tui.BrowseActionSelectRoot:
		logging.Debug("record selected",
			logging.URL(result.Record.RawURL()),
			logging.Platform(result.Record.Platform()),
		)
		_, _ = fmt.Fprintln(cmd.Root().Writer, result.Record.RawURL())
	}
	return nil
}

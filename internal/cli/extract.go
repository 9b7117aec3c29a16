package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/klauern/socials/internal/config"
	"github.com/klauern/socials/internal/export"
	"github.com/klauern/socials/internal/extractor"
	"github.com/klauern/socials/internal/htmlsource"
	"github.com/klauern/socials/internal/logging"
	"github.com/klauern/socials/internal/model"
	"github.com/klauern/socials/internal/progress"
	"github.com/klauern/socials/internal/ui"
)

var errNoInput = errors.New("no input provided. Pipe URLs or specify a file")

func extractCommand() *cli.Command {
	return &cli.Command{
		Name:      "extract",
		Usage:     "Extract social media URLs from input",
		ArgsUsage: "[FILE]",
		Description: `Read URLs (one per line) from FILE or stdin and print the recognized
   social profiles.

   Text output is one "platform<TAB>url" line per record, or just the URL
   when --platform is given.

   Examples:
     socials extract urls.txt
     cat urls.txt | socials extract --platform github
     socials extract --html --format json page.html`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "platform",
				Aliases: []string{"p"},
				Usage:   fmt.Sprintf("Filter by platform: %s", strings.Join(model.PlatformNames(), ", ")),
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   fmt.Sprintf("Output format: %s", strings.Join(export.FormatNames(), ", ")),
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "Fail on the first unrecognized URL",
			},
			&cli.BoolFlag{
				Name:  "unique",
				Usage: "Drop repeated URLs",
			},
			&cli.BoolFlag{
				Name:  "html",
				Usage: "Treat input as HTML and extract link targets",
			},
		},
		Action: runExtract,
	}
}

func runExtract(ctx context.Context, cmd *cli.Command) error {
	cfg := configFrom(ctx)

	var platform model.Platform
	if name := cmd.String("platform"); name != "" {
		p, err := model.ParsePlatform(name)
		if err != nil {
			return fmt.Errorf("%w (available: %s)", err, strings.Join(model.PlatformNames(), ", "))
		}
		platform = p
	}

	formatName := cfg.Output.Format
	if cmd.IsSet("format") {
		formatName = cmd.String("format")
	}
	format, err := export.ParseFormat(formatName)
	if err != nil {
		return err
	}

	urls, err := readInput(cmd)
	if err != nil {
		return err
	}
	logging.Info("read input", logging.Count(len(urls)))

	opts := progress.DefaultOptions()
	opts.Max = int64(len(urls))
	opts.Writer = cmd.Root().ErrWriter
	if cmd.Bool("html") {
		opts.Description = "Extracting links"
	}
	bar := progress.New(opts)

	observe := bar.Observe
	if cmd.Root().Bool("verbose") {
		observe = reportSkipped(cmd.Root().ErrWriter, bar)
	}
	extraction, err := extract(cmd, cfg, urls, observe)
	if err != nil {
		if clearErr := bar.Clear(); clearErr != nil {
			logging.Debug("failed to clear progress bar", logging.Err(clearErr))
		}
		return err
	}
	if finishErr := bar.Finish(); finishErr != nil {
		logging.Debug("failed to finish progress bar", logging.Err(finishErr))
	}

	exporter := export.New(export.Options{
		Format:           format,
		Pretty:           true,
		BareURLs:         platform != "",
		IncludeHierarchy: true,
		Platform:         platform,
	})
	return exporter.Export(extraction.All(), cmd.Root().Writer)
}

// reportSkipped feeds bar and prints each unrecognized URL to w.
func reportSkipped(w io.Writer, bar *progress.Bar) func(string, model.Record) {
	return func(rawURL string, rec model.Record) {
		bar.Observe(rawURL, rec)
		if rec == nil {
			_, _ = fmt.Fprintln(w, ui.StatusSkipped(rawURL))
		}
	}
}

// extract runs the configured extractor over urls. Flags override config.
func extract(cmd *cli.Command, cfg *config.Config, urls []string, observer func(string, model.Record)) (*extractor.Extraction, error) {
	ex, err := extractor.New(extractor.Options{
		Platforms: cfg.PlatformFilter(),
		Strict:    cfg.Extract.Strict || cmd.Bool("strict"),
		Observer:  observer,
	})
	if err != nil {
		return nil, err
	}

	extraction, err := ex.Extract(urls)
	if err != nil {
		return nil, err
	}
	if cfg.Extract.Unique || cmd.Bool("unique") {
		extraction = extraction.Unique()
	}
	return extraction, nil
}

// readInput collects URLs from the FILE argument or the command's reader.
// An interactive terminal on stdin counts as no input.
func readInput(cmd *cli.Command) ([]string, error) {
	var r io.Reader
	if path := cmd.Args().First(); path != "" {
		// #nosec G304 - path is provided by the user
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	} else {
		r = cmd.Root().Reader
		if r == nil || isTerminal(r) {
			return nil, errNoInput
		}
	}

	if cmd.Bool("html") {
		hrefs, err := htmlsource.Hrefs(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read HTML: %w", err)
		}
		return hrefs, nil
	}
	return readLines(r)
}

// readLines returns the trimmed non-empty lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return lines, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

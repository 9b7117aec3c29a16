package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/klauern/socials/internal/extractor"
	"github.com/klauern/socials/internal/model"
	"github.com/klauern/socials/internal/ui"
	"github.com/klauern/socials/internal/urlutil"
)

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Check which platform a URL belongs to",
		ArgsUsage: "URL",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "explain",
				Aliases: []string{"e"},
				Usage:   "Show how the URL was routed and what was extracted",
			},
		},
		Action: runCheck,
	}
}

func runCheck(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return errors.New("check requires exactly 1 argument: <url>")
	}
	rawURL := cmd.Args().First()

	ex, err := extractor.New(extractor.Options{Platforms: configFrom(ctx).PlatformFilter()})
	if err != nil {
		return err
	}
	rec, err := ex.Parse(rawURL)
	if err != nil {
		return err
	}

	out := cmd.Root().Writer
	if rec != nil {
		_, _ = fmt.Fprintln(out, rec.Platform())
	}
	if cmd.Bool("explain") {
		explain(out, ex, rawURL, rec)
	}

	if rec == nil {
		_, _ = fmt.Fprintln(cmd.Root().ErrWriter, "unknown")
		return ErrSilent
	}
	return nil
}

// explain prints the routing details of rawURL and the record it produced.
func explain(w io.Writer, ex *extractor.Extractor, rawURL string, rec model.Record) {
	scheme := urlutil.ExtractScheme(rawURL)
	host := urlutil.ExtractHostname(rawURL)

	route := "none"
	if p := ex.Registry().ParserForURL(rawURL); p != nil {
		route = string(p.Platform())
	}

	_, _ = fmt.Fprintf(w, "%s %s\n", ui.Header("URL:"), rawURL)
	_, _ = fmt.Fprintf(w, "  scheme:   %s\n", orNone(scheme))
	_, _ = fmt.Fprintf(w, "  host:     %s\n", orNone(host))
	_, _ = fmt.Fprintf(w, "  path:     %s\n", orNone(strings.Join(urlutil.ExtractPathSegments(rawURL), " / ")))
	_, _ = fmt.Fprintf(w, "  parser:   %s\n", route)

	if rec == nil {
		_, _ = fmt.Fprintln(w, ui.StatusError("not recognized"))
		return
	}

	_, _ = fmt.Fprintln(w, ui.StatusSuccess(fmt.Sprintf("%s %s", ui.PlatformName(rec.Platform()), rec.EntityType())))
	for _, f := range rec.Fields() {
		_, _ = fmt.Fprintf(w, "  %s: %s\n", f.Name, f.Value)
	}
	for i, a := range model.Ancestors(rec) {
		_, _ = fmt.Fprintf(w, "  %s%s %s %s\n", strings.Repeat("  ", i), ui.Dim("↑"), a.EntityType(), a.RawURL())
	}
}

func orNone(s string) string {
	if s == "" {
		return ui.Dim("(none)")
	}
	return s
}

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"

	"github.com/klauern/socials/internal/parser/builtin"
	"github.com/klauern/socials/internal/ui"
	"github.com/klauern/socials/internal/ui/tui"
)

// PlatformInfo describes one built-in platform parser.
type PlatformInfo struct {
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	Schemes     []string `json:"schemes"`
}

var platformsStyles = struct {
	Name    lipgloss.Style
	Display lipgloss.Style
}{
	Name:    lipgloss.NewStyle().Width(12),
	Display: lipgloss.NewStyle().Width(12),
}

func platformsCommand() *cli.Command {
	return &cli.Command{
		Name:  "platforms",
		Usage: "List supported platforms in priority order",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "json",
				Aliases: []string{"j"},
				Usage:   "Output in JSON format for scripting",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			platforms := collectPlatforms()
			if cmd.Bool("json") {
				return outputPlatformsJSON(cmd.Root().Writer, platforms)
			}
			outputPlatformsTable(cmd.Root().Writer, platforms)
			return nil
		},
	}
}

// collectPlatforms lists the built-in parsers in registration order.
func collectPlatforms() []PlatformInfo {
	parsers := builtin.All()
	infos := make([]PlatformInfo, len(parsers))
	for i, p := range parsers {
		infos[i] = PlatformInfo{
			Name:        string(p.Platform()),
			DisplayName: tui.DisplayName(p.Platform()),
			Schemes:     p.Schemes(),
		}
	}
	return infos
}

func outputPlatformsJSON(w io.Writer, platforms []PlatformInfo) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(platforms)
}

func outputPlatformsTable(w io.Writer, platforms []PlatformInfo) {
	_, _ = fmt.Fprintln(w, ui.Bold("Supported platforms:"))
	for _, p := range platforms {
		_, _ = fmt.Fprintf(w, "  %s%s%s\n",
			platformsStyles.Name.Render(p.Name),
			platformsStyles.Display.Render(p.DisplayName),
			ui.Dim(strings.Join(p.Schemes, ", ")),
		)
	}
}

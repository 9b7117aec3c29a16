// Package progress provides progress indicators for long-running extractions.
package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"

	"github.com/klauern/socials/internal/logging"
	"github.com/klauern/socials/internal/model"
	"github.com/klauern/socials/internal/ui"
)

// Bar wraps progressbar functionality with integration to the socials UI and logging.
type Bar struct {
	bar     *progressbar.ProgressBar
	enabled bool
	desc    string
	seen    int
	matched int
}

// Options configures the progress bar behavior.
type Options struct {
	// Max is the maximum value for the progress bar (total steps).
	// A negative value renders a spinner.
	Max int64
	// Description is the prefix text shown before the progress bar.
	Description string
	// Writer is the output destination. Defaults to os.Stderr.
	Writer io.Writer
	// ShowElapsed shows elapsed time on completion.
	ShowElapsed bool
	// ShowCount shows current/total count (e.g., "5/10").
	ShowCount bool
}

// DefaultOptions returns the options used for extraction progress on stderr.
func DefaultOptions() Options {
	return Options{
		Max:         -1,
		Description: "Extracting",
		Writer:      os.Stderr,
		ShowElapsed: true,
		ShowCount:   true,
	}
}

// New creates a new progress bar with the given options.
// The bar is only shown if:
//   - Colors are enabled (respects NO_COLOR and --no-color)
//   - Output is a terminal
//   - Not in debug mode (to avoid interfering with logs)
func New(opts Options) *Bar {
	if opts.Writer == nil {
		opts.Writer = os.Stderr
	}

	enabled := shouldShowProgress(opts.Writer)

	b := &Bar{
		enabled: enabled,
		desc:    opts.Description,
	}

	if !enabled {
		logging.Debug(fmt.Sprintf("%s started", opts.Description),
			logging.Count(int(opts.Max)))
		return b
	}

	options := []progressbar.Option{
		progressbar.OptionSetDescription(opts.Description),
		progressbar.OptionSetWriter(opts.Writer),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("urls"),
		progressbar.OptionSetWidth(15),
		progressbar.OptionThrottle(65 * time.Millisecond),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(opts.Writer, "\n")
		}),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionEnableColorCodes(ui.IsColorEnabled()),
	}
	if opts.ShowCount {
		options = append(options, progressbar.OptionShowCount())
	}
	if opts.ShowElapsed {
		options = append(options, progressbar.OptionShowElapsedTimeOnFinish())
	}

	b.bar = progressbar.NewOptions64(opts.Max, options...)
	return b
}

// Observe records one parse attempt. Its signature matches the extractor
// observer hook so a Bar can be plugged in directly.
func (b *Bar) Observe(rawURL string, rec model.Record) {
	b.seen++
	if rec != nil {
		b.matched++
	}
	if !b.enabled {
		return
	}
	_ = b.bar.Add(1)
}

// Seen returns the number of parse attempts observed.
func (b *Bar) Seen() int { return b.seen }

// Matched returns the number of observed attempts that produced a record.
func (b *Bar) Matched() int { return b.matched }

// Enabled reports whether the bar renders anything.
func (b *Bar) Enabled() bool { return b.enabled }

// Finish completes the progress bar and logs completion.
func (b *Bar) Finish() error {
	if !b.enabled {
		logging.Debug(fmt.Sprintf("%s completed", b.desc),
			logging.Count(b.matched))
		return nil
	}
	return b.bar.Finish()
}

// Clear removes the progress bar from the terminal.
func (b *Bar) Clear() error {
	if !b.enabled {
		return nil
	}
	return b.bar.Clear()
}

// shouldShowProgress determines if progress bars should be displayed.
// Progress is disabled if:
//   - Colors are disabled (NO_COLOR, --no-color)
//   - Writing to a file that is not a terminal
//   - Logger is at debug level
func shouldShowProgress(w io.Writer) bool {
	if !ui.IsColorEnabled() {
		return false
	}

	if f, ok := w.(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
		return false
	}

	if logging.Default().Enabled(context.Background(), logging.LevelDebug) {
		return false
	}

	return true
}

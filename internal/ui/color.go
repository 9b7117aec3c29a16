// Package ui provides terminal UI utilities for socials.
package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/klauern/socials/internal/model"
)

// Color function types for styled output.
var (
	// Success is used for successful operations (green).
	Success = color.New(color.FgGreen).SprintFunc()
	// Error is used for errors and failures (red).
	Error = color.New(color.FgRed).SprintFunc()
	// Warning is used for warnings and cautions (yellow).
	Warning = color.New(color.FgYellow).SprintFunc()
	// Info is used for informational messages (cyan).
	Info = color.New(color.FgCyan).SprintFunc()
	// Bold is used for emphasis (bold white).
	Bold = color.New(color.Bold).SprintFunc()
	// Dim is used for secondary information (faint).
	Dim = color.New(color.Faint).SprintFunc()
	// Header is used for table headers (bold cyan).
	Header = color.New(color.FgCyan, color.Bold).SprintFunc()
)

var platformColors = map[model.Platform]*color.Color{
	model.GitHub:    color.New(color.FgWhite, color.Bold),
	model.Twitter:   color.New(color.FgCyan),
	model.LinkedIn:  color.New(color.FgBlue),
	model.Facebook:  color.New(color.FgHiBlue),
	model.Instagram: color.New(color.FgMagenta),
	model.YouTube:   color.New(color.FgRed),
	model.Email:     color.New(color.FgGreen),
	model.Phone:     color.New(color.FgYellow),
}

// Status symbols with colors.
const (
	SymbolSuccess = "✓"
	SymbolError   = "✗"
	SymbolWarning = "⚠"
	SymbolSkipped = "-"
)

// Color modes accepted by ConfigureColor.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// StatusSuccess returns a green checkmark with optional message.
func StatusSuccess(msg string) string {
	if msg == "" {
		return Success(SymbolSuccess)
	}
	return Success(SymbolSuccess) + " " + msg
}

// StatusError returns a red X with optional message.
func StatusError(msg string) string {
	if msg == "" {
		return Error(SymbolError)
	}
	return Error(SymbolError) + " " + msg
}

// StatusWarning returns a yellow warning with optional message.
func StatusWarning(msg string) string {
	if msg == "" {
		return Warning(SymbolWarning)
	}
	return Warning(SymbolWarning) + " " + msg
}

// StatusSkipped returns a dimmed skip symbol with optional message.
func StatusSkipped(msg string) string {
	if msg == "" {
		return Dim(SymbolSkipped)
	}
	return Dim(SymbolSkipped) + " " + msg
}

// PlatformName renders a platform identifier in its platform color.
// Unknown platforms are returned unstyled.
func PlatformName(p model.Platform) string {
	c, ok := platformColors[p]
	if !ok {
		return string(p)
	}
	return c.Sprint(string(p))
}

// ConfigureColor applies a color mode. noColor always wins; "auto" keeps
// the terminal detection done by fatih/color.
func ConfigureColor(mode string, noColor bool) error {
	if noColor {
		DisableColors()
		return nil
	}
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", ColorAuto:
		return nil
	case ColorAlways:
		EnableColors()
	case ColorNever:
		DisableColors()
	default:
		return fmt.Errorf("invalid color mode %q (valid: %s, %s, %s)", mode, ColorAuto, ColorAlways, ColorNever)
	}
	return nil
}

// DisableColors disables all color output.
// This is useful for piping output or for users who prefer no colors.
func DisableColors() {
	color.NoColor = true
}

// EnableColors enables color output.
func EnableColors() {
	color.NoColor = false
}

// IsColorEnabled returns whether colors are currently enabled.
func IsColorEnabled() bool {
	return !color.NoColor
}

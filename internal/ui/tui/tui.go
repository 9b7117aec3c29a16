// Package tui provides interactive terminal UI components using BubbleTea.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/klauern/socials/internal/model"
)

// Styles contains reusable lipgloss styles for the TUI.
var Styles = struct {
	Title    lipgloss.Style
	Selected lipgloss.Style
	Normal   lipgloss.Style
}{
	Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
	Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
	Normal:   lipgloss.NewStyle(),
}

// DisplayName returns a human-friendly name for a platform.
func DisplayName(p model.Platform) string {
	switch p {
	case model.GitHub:
		return "GitHub"
	case model.LinkedIn:
		return "LinkedIn"
	case model.YouTube:
		return "YouTube"
	default:
		return cases.Title(language.English).String(string(p))
	}
}

// Run starts a BubbleTea program with the given model.
func Run(model tea.Model, opts ...tea.ProgramOption) (tea.Model, error) {
	p := tea.NewProgram(model, opts...)
	return p.Run()
}

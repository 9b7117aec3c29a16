package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "..."

// truncateValue shortens value to fit width display cells, marking the cut
// with an ellipsis when there is room for one.
func truncateValue(value string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= len(ellipsis) {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, ellipsis)
}

// wrapText word-wraps text to width cells and at most maxLines lines. When
// content is dropped the last kept line ends in an ellipsis.
func wrapText(text string, width, maxLines int) []string {
	if width <= 0 || maxLines <= 0 {
		return []string{""}
	}

	var lines []string
	var line string
	for _, word := range strings.Fields(text) {
		switch {
		case line == "":
			line = word
		case runewidth.StringWidth(line)+1+runewidth.StringWidth(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return []string{""}
	}

	cut := len(lines) > maxLines
	if cut {
		lines = lines[:maxLines]
	}
	for i, l := range lines {
		lines[i] = truncateValue(l, width)
	}
	if cut {
		last := lines[len(lines)-1]
		if runewidth.StringWidth(last)+len(ellipsis) <= width {
			lines[len(lines)-1] = last + ellipsis
		} else {
			lines[len(lines)-1] = runewidth.Truncate(last, width, ellipsis)
		}
	}
	return lines
}

func padLines(lines []string, count int) []string {
	for len(lines) < count {
		lines = append(lines, "")
	}
	return lines
}

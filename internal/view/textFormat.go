package view

import (
	"strings"
	"unicode/utf8"
)

// TruncateTextToWidth Cuts off front of text and adds ellipsis to indicate that text was shortened. Pads lines with spaces.
func TruncateTextToWidth(width int, out string) string {
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		runes := []rune(line)
		switch {
		case len(runes) <= width:
			lines[i] = pad(width, line)
		case width > 3:
			lines[i] = "..." + string(runes[len(runes)-width+3:])
		default:
			lines[i] = string(runes[len(runes)-max(width, 0):])
		}
	}
	return strings.Join(lines, "\n")
}

// TrimTextToWidth Cuts off end of every line if longer than width. Pads lines to width with spaces.
func TrimTextToWidth(width int, out string) string {
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		runes := []rune(line)
		if len(runes) > width {
			lines[i] = string(runes[:max(width, 0)])
		} else {
			lines[i] = pad(width, line)
		}
	}
	return strings.Join(lines, "\n")
}

func pad(width int, line string) string {
	missing := width - utf8.RuneCountInString(line)
	if missing <= 0 {
		return line
	}
	return line + strings.Repeat(" ", missing)
}

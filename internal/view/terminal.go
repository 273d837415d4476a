package view

import (
	"os"

	"golang.org/x/term"
)

const DefaultWidth = 80

func IsTerminal(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}

// TerminalWidth is the column count of file, or DefaultWidth when file is not a terminal.
func TerminalWidth(file *os.File) int {
	if !IsTerminal(file) {
		return DefaultWidth
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}

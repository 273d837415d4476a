package view

import (
	"fmt"
	"io"
	"strings"

	"repocloner/internal/color"
	"repocloner/internal/counter"
	"repocloner/internal/ext"
)

type ErrorViewModel struct {
	errorCount  *counter.Counter
	logFilePath string
}

func NewErrorViewModel(errorCount *counter.Counter, logFilePath string) *ErrorViewModel {
	return &ErrorViewModel{
		errorCount:  errorCount,
		logFilePath: logFilePath,
	}
}

// ErrorView points at the log file once something has failed. It renders nothing otherwise.
type ErrorView struct {
	viewModel *ErrorViewModel
	stdout    io.Writer
}

func NewErrorView(vm *ErrorViewModel, stdout io.Writer) *ErrorView {
	return &ErrorView{
		viewModel: vm,
		stdout:    stdout,
	}
}

func (v ErrorView) Render(width int) int {
	count := v.viewModel.errorCount.Count()
	if count == 0 {
		return 0
	}
	out := fmt.Sprintf("--- %s errors ---\nSee log file:\n%s\n",
		color.FgRed("%d", count),
		color.FgMagenta("%s", TruncateTextToWidth(width, ext.ReplaceHomeDirWithTilde(v.viewModel.logFilePath))))

	if _, err := fmt.Fprint(v.stdout, out); err != nil {
		return 0
	}
	return strings.Count(out, "\n")
}

package view

import (
	"bytes"
	"fmt"
	"testing"

	"repocloner/internal/color"
	"repocloner/internal/counter"
)

func TestErrorView_Render(t *testing.T) {
	errorCount := counter.NewCounter()
	vm := NewErrorViewModel(errorCount, "/var/log/somePath.log")
	errorCount.Add(1)

	var buf bytes.Buffer
	view := NewErrorView(vm, &buf)

	lines := view.Render(12)

	expectedOutput := fmt.Sprintf("--- %s errors ---\nSee log file:\n%s\n", color.FgRed("1"), color.FgMagenta("...ePath.log"))
	if buf.String() != expectedOutput {
		t.Errorf("\nexpected %q\n"+
			"     got %q", expectedOutput, buf.String())
	}
	if lines != 3 {
		t.Errorf("expected 3 lines, got %d", lines)
	}
}

func TestErrorView_RenderNothingWithoutErrors(t *testing.T) {
	var buf bytes.Buffer
	view := NewErrorView(NewErrorViewModel(counter.NewCounter(), "somePath.log"), &buf)

	if lines := view.Render(80); lines != 0 {
		t.Errorf("expected 0 lines, got %d", lines)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

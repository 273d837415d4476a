package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableView_Render(t *testing.T) {
	var buf bytes.Buffer
	rows := [][]string{
		{"alpha", "cloned", "abc1234"},
		{"beta", "pinned", "cafe123"},
	}
	view := NewTableView([]string{"Project", "Status", "Commit"}, func() [][]string { return rows }, &buf)

	lines := view.Render(80)

	out := buf.String()
	assert.Equal(t, strings.Count(out, "\n"), lines)
	assert.GreaterOrEqual(t, lines, 3)
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "cafe123")
	assert.Less(t, strings.Index(out, "alpha"), strings.Index(out, "beta"))
}

func TestTableView_RenderNothingWithoutRows(t *testing.T) {
	var buf bytes.Buffer
	view := NewTableView([]string{"Project"}, func() [][]string { return nil }, &buf)

	assert.Equal(t, 0, view.Render(80))
	assert.Empty(t, buf.String())
}

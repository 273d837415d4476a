package view

import (
	"bytes"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// TableView renders rows under headers as a borderless, left aligned table.
// Rows are fetched at render time so the view can be built before the data exists.
type TableView struct {
	headers []string
	rows    func() [][]string
	stdout  io.Writer
}

func NewTableView(headers []string, rows func() [][]string, stdout io.Writer) *TableView {
	return &TableView{headers: headers, rows: rows, stdout: stdout}
}

func (v *TableView) Render(width int) int {
	rows := v.rows()
	if len(rows) == 0 {
		return 0
	}

	var buf bytes.Buffer
	table := tablewriter.NewTable(&buf,
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithRowAlignment(tw.AlignLeft),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Lines:      tw.LinesNone,
				Separators: tw.SeparatorsNone,
			},
		}),
		tablewriter.WithPadding(tw.Padding{Left: "", Right: "  "}),
	)
	table.Header(v.headers)
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return 0
		}
	}
	if err := table.Render(); err != nil {
		return 0
	}

	out := buf.String()
	if _, err := io.WriteString(v.stdout, out); err != nil {
		return 0
	}
	return strings.Count(out, "\n")
}

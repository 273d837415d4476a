package terminalView

import (
	"io"

	"github.com/samber/lo"

	"repocloner/internal/gitrepo"
	"repocloner/internal/view"
)

const noteWidth = 48

var resultHeaders = []string{"Project", "Branch", "Status", "Commit", "Note"}

// NewResultsView tabulates one row per processed project, in processing order.
func NewResultsView(results func() []gitrepo.Result, stdout io.Writer) *view.TableView {
	return view.NewTableView(resultHeaders, func() [][]string {
		return lo.Map(results(), func(result gitrepo.Result, _ int) []string {
			return resultRow(result)
		})
	}, stdout)
}

func resultRow(result gitrepo.Result) []string {
	outcome := result.Outcome
	note := outcome.Warning
	if outcome.Err != nil {
		note = outcome.Err.Error()
	}
	return []string{
		result.Repository.Name,
		result.Repository.Branch,
		outcome.Status.String(),
		lo.Ternary(outcome.Commit == "", "-", outcome.Commit),
		view.TrimTextToWidth(min(len([]rune(note)), noteWidth), note),
	}
}

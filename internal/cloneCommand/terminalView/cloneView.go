package terminalView

import (
	"fmt"
	"io"
	"strings"

	"repocloner/internal/color"
	"repocloner/internal/ext"
	"repocloner/internal/gitrepo"
	"repocloner/internal/view"
)

type CloneViewModel struct {
	CloneRoot string
	Tally     *gitrepo.Tally
}

func NewCloneViewModel(cloneRoot string) *CloneViewModel {
	return &CloneViewModel{
		CloneRoot: cloneRoot,
		Tally:     gitrepo.NewTally(),
	}
}

// CloneView summarizes the counts of a clone run.
type CloneView struct {
	viewModel *CloneViewModel
	stdout    io.Writer
}

func NewCloneView(vm *CloneViewModel, stdout io.Writer) *CloneView {
	return &CloneView{
		viewModel: vm,
		stdout:    stdout,
	}
}

func (r *CloneView) Render(width int) (lines int) {
	tally := r.viewModel.Tally
	count := func(c interface{ Count() int }) string {
		return color.FgMagenta("%d", c.Count())
	}
	out := fmt.Sprintf(
		"%s\n  %s projects, %s cloned, %s failed\n  %s pinned, %s fell back to branch tip\n",
		color.FgCyan("%s", view.TruncateTextToWidth(width, ext.ReplaceHomeDirWithTilde(r.viewModel.CloneRoot))),
		count(tally.Found),
		count(tally.Successful),
		count(tally.Failed),
		count(tally.Pinned),
		count(tally.Degraded),
	)
	if _, err := fmt.Fprint(r.stdout, out); err != nil {
		return 0
	}
	return strings.Count(out, "\n")
}

package terminalView

import (
	"io"
	"time"

	"repocloner/internal/view"
)

// CloneCommandView is the report printed after a clone run.
type CloneCommandView struct {
	compositeView *view.CompositeView
}

func NewCloneCommandView(vm *CloneCommandViewModel, out io.Writer, startTime time.Time, since func(time.Time) time.Duration) *CloneCommandView {
	compositeView := view.NewCompositeView(make([]view.View, 0))
	compositeView.AddView(NewResultsView(vm.getResults, out))
	compositeView.AddView(NewCloneView(vm.CloneViewModel, out))

	compositeView.AddFooter(view.NewErrorView(vm.ErrorViewModel, out))
	compositeView.AddFooter(view.NewTimeElapsedView(startTime, out, since))

	return &CloneCommandView{
		compositeView: compositeView,
	}
}

func (c CloneCommandView) Render(width int) (lines int) {
	return c.compositeView.Render(width)
}

package terminalView

import (
	"repocloner/internal/gitrepo"
	"repocloner/internal/view"
)

type CloneCommandViewModel struct {
	CloneViewModel *CloneViewModel
	ErrorViewModel *view.ErrorViewModel
	Results        []gitrepo.Result
}

func NewCloneCommandViewModel(cloneRoot, logFilePath string) *CloneCommandViewModel {
	cloneViewModel := NewCloneViewModel(cloneRoot)
	return &CloneCommandViewModel{
		CloneViewModel: cloneViewModel,
		ErrorViewModel: view.NewErrorViewModel(cloneViewModel.Tally.Failed, logFilePath),
	}
}

func (vm *CloneCommandViewModel) Tally() *gitrepo.Tally {
	return vm.CloneViewModel.Tally
}

func (vm *CloneCommandViewModel) getResults() []gitrepo.Result {
	return vm.Results
}

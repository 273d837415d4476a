package gitrepo

import (
	"context"
	"fmt"
	"io"
)

// Git is the version control tool a Repository is materialized with.
type Git interface {
	// Clone fetches branch of url into dir. dir must not exist.
	Clone(ctx context.Context, url, branch, dir string) error
	// Checkout moves the working copy in dir to commit.
	Checkout(ctx context.Context, dir, commit string) error
	// ResolveHead returns the abbreviated hash of the commit checked out in dir.
	ResolveHead(ctx context.Context, dir string) (string, error)
}

const (
	BackendExec  = "exec"
	BackendGoGit = "go-git"
)

// NewGit returns the backend registered under name. progress receives clone progress
// for backends that report it and may be nil.
func NewGit(name string, progress io.Writer) (Git, error) {
	switch name {
	case BackendExec, "":
		return NewExecGit(), nil
	case BackendGoGit:
		return NewGoGit(progress), nil
	default:
		return nil, fmt.Errorf("unknown git backend %q", name)
	}
}

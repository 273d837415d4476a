package gitrepo

import (
	"context"
	"fmt"
	"io"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	. "repocloner/internal/log"
)

const shortHashLength = 7

// GoGit implements Git in process with go-git, no git binary required.
type GoGit struct {
	progress io.Writer
}

func NewGoGit(progress io.Writer) *GoGit {
	return &GoGit{progress: progress}
}

func (g *GoGit) Clone(ctx context.Context, url, branch, dir string) error {
	Log.Debugf("go-git clone %s (branch %s) into %s", url, branch, dir)
	_, err := git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL:           url,
		ReferenceName: plumbing.NewBranchReferenceName(branch),
		SingleBranch:  true,
		Progress:      g.progress,
	})
	if err != nil {
		return fmt.Errorf("failed to clone repository: %w", err)
	}
	return nil
}

func (g *GoGit) Checkout(_ context.Context, dir, commit string) error {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return fmt.Errorf("failed to open repository %s: %w", dir, err)
	}
	hash, err := repo.ResolveRevision(plumbing.Revision(commit))
	if err != nil {
		return fmt.Errorf("failed to resolve commit %s: %w", commit, err)
	}
	workTree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree: %w", err)
	}
	if err := workTree.Checkout(&git.CheckoutOptions{Hash: *hash}); err != nil {
		return fmt.Errorf("failed to checkout commit %s: %w", commit, err)
	}
	return nil
}

func (g *GoGit) ResolveHead(_ context.Context, dir string) (string, error) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return "", fmt.Errorf("failed to open repository %s: %w", dir, err)
	}
	ref, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD reference: %w", err)
	}
	return ref.Hash().String()[:shortHashLength], nil
}

package gitrepo

import (
	"context"
	"fmt"
	"strings"

	. "repocloner/internal/log"
	"repocloner/internal/sh"
)

// ExecGit drives the git binary found on PATH.
type ExecGit struct {
	binary string
}

func NewExecGit() *ExecGit {
	return &ExecGit{binary: "git"}
}

func (g *ExecGit) run(ctx context.Context, cwd string, args ...string) (string, error) {
	command := sh.NewCommand(g.binary, args...)
	Log.Debugf("Running %s (cwd %q)", command, cwd)
	return sh.Execute(ctx, sh.DirectoryPath(cwd), command)
}

func (g *ExecGit) Clone(ctx context.Context, url, branch, dir string) error {
	if err := rejectOption("branch", branch); err != nil {
		return err
	}
	_, err := g.run(ctx, "", "clone", "-b", branch, "--", url, dir)
	return err
}

func (g *ExecGit) Checkout(ctx context.Context, dir, commit string) error {
	if err := rejectOption("commit", commit); err != nil {
		return err
	}
	_, err := g.run(ctx, "", "-C", dir, "checkout", "--quiet", commit, "--")
	return err
}

func (g *ExecGit) ResolveHead(ctx context.Context, dir string) (string, error) {
	return g.run(ctx, "", "-C", dir, "rev-parse", "--short", "HEAD")
}

// rejectOption keeps user supplied values from being parsed as git options.
func rejectOption(field, value string) error {
	if strings.HasPrefix(value, "-") {
		return fmt.Errorf("invalid %s %q: must not start with '-'", field, value)
	}
	return nil
}

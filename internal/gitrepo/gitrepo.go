package gitrepo

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"repocloner/internal/color"
	. "repocloner/internal/log"
	"repocloner/internal/records"
)

type Repository struct {
	Name      string
	GitURL    string
	Branch    string
	CommitID  string
	CloneRoot string
}

func FromRecord(record records.Record, cloneRoot string) *Repository {
	return &Repository{
		Name:      record.Name,
		GitURL:    record.GitURL,
		Branch:    record.Branch,
		CommitID:  record.CommitID,
		CloneRoot: cloneRoot,
	}
}

// Path is the working copy location, a direct child of CloneRoot named after the project.
func (project *Repository) Path() string {
	return filepath.Join(project.CloneRoot, project.Name)
}

// CloneAndPin replaces any existing working copy with a fresh clone of Branch and checks
// out CommitID when one is set. Only a failed clone fails the project; a commit that cannot
// be checked out leaves the branch tip in place with a warning.
func (project *Repository) CloneAndPin(ctx context.Context, git Git, out io.Writer) Outcome {
	projectPath := project.Path()

	if err := validateName(project.Name); err != nil {
		fmt.Fprintf(out, "%s %v\n", color.FgRed("❌"), err)
		return Outcome{Status: CloneFailed, Err: err}
	}

	removed, err := RemoveWorkingCopy(projectPath)
	if removed {
		fmt.Fprintf(out, "🗑️  Removing existing directory: %s\n", project.Name)
	}
	if err != nil {
		fmt.Fprintf(out, "%s Failed to remove %s: %v\n", color.FgRed("❌"), projectPath, err)
		return Outcome{Status: CloneFailed, Err: err}
	}

	fmt.Fprintf(out, "\n🔹 Cloning: %s\n", color.FgCyan(project.Name))
	fmt.Fprintf(out, "   URL: %s\n", project.GitURL)
	fmt.Fprintf(out, "   Branch: %s\n", project.Branch)

	Log.Infof("Cloning %s (%s, branch %s) to %s", project.Name, project.GitURL, project.Branch, projectPath)
	if err := git.Clone(ctx, project.GitURL, project.Branch, projectPath); err != nil {
		fmt.Fprintf(out, "%s Failed to clone %s\n", color.FgRed("❌"), project.Name)
		fmt.Fprintf(out, "Error: %v\n", err)
		return Outcome{Status: CloneFailed, Err: fmt.Errorf("clone %s: %w", project.Name, err)}
	}

	outcome := project.pin(ctx, git, out)
	fmt.Fprintf(out, "%s Successfully cloned: %s\n", color.FgGreen("✅"), project.Name)
	return outcome
}

func (project *Repository) pin(ctx context.Context, git Git, out io.Writer) Outcome {
	projectPath := project.Path()

	if project.CommitID == "" {
		outcome := Outcome{Status: ClonedOnly}
		head, err := git.ResolveHead(ctx, projectPath)
		if err != nil {
			Log.Debugf("Could not resolve HEAD of %s: %v", project.Name, err)
			return outcome
		}
		outcome.Commit = head
		fmt.Fprintf(out, "   Commit: %s (latest)\n", head)
		return outcome
	}

	fmt.Fprintf(out, "   Commit: %s\n", project.CommitID)
	if err := git.Checkout(ctx, projectPath, project.CommitID); err != nil {
		warning := fmt.Sprintf("Failed to checkout commit %s", project.CommitID)
		fmt.Fprintf(out, "%s  Warning: %s\n", color.FgYellow("⚠️"), warning)
		fmt.Fprintf(out, "   Using latest commit from %s branch\n", project.Branch)
		Log.Warnf("%s in %s: %v", warning, project.Name, err)

		outcome := Outcome{Status: ClonedOnly, Warning: warning}
		if head, err := git.ResolveHead(ctx, projectPath); err == nil {
			outcome.Commit = head
		}
		return outcome
	}
	Log.Infof("Pinned %s to %s", project.Name, project.CommitID)
	return Outcome{Status: ClonedAndPinned, Commit: project.CommitID}
}

// validateName keeps a project inside the clone root.
func validateName(name string) error {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name || filepath.IsAbs(name) {
		return fmt.Errorf("invalid project name %q: must be a single directory name", name)
	}
	return nil
}

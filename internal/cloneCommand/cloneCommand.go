package cloneCommand

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/samber/lo"

	"repocloner/internal/appConfig"
	"repocloner/internal/cloneCommand/terminalView"
	"repocloner/internal/color"
	"repocloner/internal/gitrepo"
	logger "repocloner/internal/log"
	"repocloner/internal/records"
	"repocloner/internal/view"
)

const (
	ExitSuccess = 0
	ExitFailure = 1
)

// Output is where a command writes its console report.
type Output struct {
	Writer io.Writer
	Width  int
	Since  func(time.Time) time.Duration
}

func StdOutput() Output {
	return Output{
		Writer: os.Stdout,
		Width:  view.TerminalWidth(os.Stdout),
		Since:  time.Since,
	}
}

// ExecuteListCommand prints every project name in the CSV, in file order, without cloning.
func ExecuteListCommand(config *appConfig.AppConfig, out Output) int {
	recs, ok := loadRecords(config, out)
	if !ok {
		return ExitFailure
	}
	for _, name := range records.Names(recs) {
		fmt.Fprintln(out.Writer, name)
	}
	return ExitSuccess
}

// ExecuteCloneCommand clones every valid project in the CSV, or only those named project
// when project is not empty, and returns the process exit code.
func ExecuteCloneCommand(ctx context.Context, config *appConfig.AppConfig, git gitrepo.Git, project string, out Output) int {
	startTime := time.Now()

	recs, ok := loadRecords(config, out)
	if !ok {
		return ExitFailure
	}

	selected := records.Select(recs, project)
	if project != "" && len(selected) == 0 {
		fmt.Fprintf(out.Writer, "%s Project '%s' not found in CSV.\n", color.FgRed("❌"), project)
		logger.Log.Errorf("Project %s not found in %s", project, config.CSVFile)
		return ExitFailure
	}

	if err := gitrepo.PrepareCloneRoot(config.CloneDirectory); err != nil {
		fmt.Fprintf(out.Writer, "%s %v\n", color.FgRed("❌"), err)
		logger.Log.Errorf("%v", err)
		return ExitFailure
	}

	repositories := lo.Map(selected, func(record records.Record, _ int) *gitrepo.Repository {
		return gitrepo.FromRecord(record, config.CloneDirectory)
	})
	logger.Log.Infof("Cloning %d of %d projects from %s into %s", len(repositories), len(recs), config.CSVFile, config.CloneDirectory)

	viewModel := terminalView.NewCloneCommandViewModel(config.CloneDirectory, logger.GetLogFilePath())
	viewModel.Results = gitrepo.CloneRepositories(ctx, repositories, git, out.Writer, viewModel.Tally())

	fmt.Fprintln(out.Writer)
	terminalView.NewCloneCommandView(viewModel, out.Writer, startTime, out.Since).Render(out.Width)

	if err := ctx.Err(); err != nil {
		fmt.Fprintf(out.Writer, "%s Interrupted after %d of %d projects\n", color.FgRed("❌"), len(viewModel.Results), len(repositories))
		logger.Log.Warnf("Clone run interrupted: %v", err)
		return ExitFailure
	}

	tally := viewModel.Tally()
	logger.Log.Infof("%d found, %d successful, %d failed", tally.Found.Count(), tally.Successful.Count(), tally.Failed.Count())
	if tally.Failed.Count() > 0 {
		return ExitFailure
	}
	if project == "" {
		fmt.Fprintf(out.Writer, "\n✨ All %s repositories cloned successfully!\n", color.FgGreen("%d", tally.Successful.Count()))
	}
	return ExitSuccess
}

func loadRecords(config *appConfig.AppConfig, out Output) ([]records.Record, bool) {
	recs, err := records.Load(config.CSVFile, config.DefaultBranch)
	if err == nil {
		return recs, true
	}
	if errors.Is(err, records.ErrSourceNotFound) {
		fmt.Fprintf(out.Writer, "%s CSV file not found: %s\n", color.FgRed("❌"), config.CSVFile)
	} else {
		fmt.Fprintf(out.Writer, "%s %v\n", color.FgRed("❌"), err)
	}
	logger.Log.Errorf("Failed to load projects: %v", err)
	return nil, false
}

package gitrepo

import (
	"context"
	"io"

	"repocloner/internal/counter"
	"repocloner/internal/log"
)

// Tally accumulates the outcome counts of a clone run.
type Tally struct {
	Found      *counter.Counter
	Successful *counter.Counter
	Failed     *counter.Counter
	Pinned     *counter.Counter
	Degraded   *counter.Counter
}

func NewTally() *Tally {
	return &Tally{
		Found:      counter.NewCounter(),
		Successful: counter.NewCounter(),
		Failed:     counter.NewCounter(),
		Pinned:     counter.NewCounter(),
		Degraded:   counter.NewCounter(),
	}
}

func (t *Tally) record(outcome Outcome) {
	if !outcome.Succeeded() {
		t.Failed.Add(1)
		return
	}
	t.Successful.Add(1)
	if outcome.Status == ClonedAndPinned {
		t.Pinned.Add(1)
	}
	if outcome.Degraded() {
		t.Degraded.Add(1)
	}
}

type Result struct {
	Repository *Repository
	Outcome    Outcome
}

// CloneRepositories runs CloneAndPin for each repository in order, one at a time.
// It stops before the next repository once ctx is done.
func CloneRepositories(ctx context.Context, repositories []*Repository, git Git, out io.Writer, tally *Tally) []Result {
	results := make([]Result, 0, len(repositories))
	for _, repo := range repositories {
		if ctx.Err() != nil {
			logger.Log.Warnf("Stopping before %s: %v", repo.Name, ctx.Err())
			break
		}
		tally.Found.Add(1)
		outcome := repo.CloneAndPin(ctx, git, out)
		tally.record(outcome)
		if !outcome.Succeeded() {
			logger.Log.Errorf("Failed to clone project %s: %v", repo.Name, outcome.Err)
		}
		results = append(results, Result{Repository: repo, Outcome: outcome})
	}
	return results
}

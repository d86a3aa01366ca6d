// Package batch runs a set of independent print jobs concurrently. Each
// job gets its own printer.Print call with its own writer and resolution
// store, so no state is shared across concurrent prints — batching never
// changes the output of any individual job, only how many run at once.
package batch

import (
	"github.com/oklog/run"

	"github.com/ir-printer/engine/pkg/ir"
	"github.com/ir-printer/engine/pkg/printer"
)

// Job is one unit of work: a sequence to print under a given
// configuration. Name identifies the job in its Result; it plays no role
// in printing.
type Job struct {
	Name  string
	Items ir.Sequence
	Cfg   printer.Config
	Opts  []printer.Option
}

// Result is one job's outcome. Exactly one of Output or Err is set.
type Result struct {
	Name   string
	Output string
	Err    error
}

// Run executes every job concurrently via an oklog/run.Group, one actor per
// job. A run.Group normally stops every actor the instant one of them
// returns, which is the wrong shape here: one job's error should not cancel
// its siblings' independent work, so each actor always returns nil and
// reports its own outcome into its Result slot instead of propagating the
// error through the group.
func Run(jobs []Job) ([]Result, error) {
	results := make([]Result, len(jobs))

	var g run.Group
	for i, job := range jobs {
		i, job := i, job
		g.Add(
			func() error {
				out, err := printer.Print(job.Items, job.Cfg, job.Opts...)
				results[i] = Result{Name: job.Name, Output: out, Err: err}
				return nil
			},
			func(error) {},
		)
	}

	if err := g.Run(); err != nil {
		return results, err
	}
	return results, nil
}

package app

import (
	"context"

	"github.com/sinonkt/shapeit4/internal/ctxlog"
	"github.com/sinonkt/shapeit4/internal/report"
	"github.com/sinonkt/shapeit4/internal/validate"
)

// Run executes the sequential configuration pipeline: validation, schedule
// compilation and reporting. On success the validated Set and compiled Plan
// are ready for hand-off to the phasing engine; on failure the returned
// error carries the single diagnostic for the violated rule.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("Validating parameter set.")

	plan, err := validate.Check(ctx, a.set)
	if err != nil {
		return err
	}
	a.plan = plan
	a.logger.Debug("Iteration scheme compiled.", "scheme", a.set.Iterations, "phases", plan.Len())

	report.Write(a.reportWriter(), a.set, plan)
	return nil
}

// Package validate applies the cross-field and range rules over a parsed
// parameter Set. Rules run in a fixed order and the first violation wins;
// advisory findings are logged but never alter the configuration.
package validate

import (
	"context"
	"fmt"

	"github.com/sinonkt/shapeit4/internal/ctxlog"
	"github.com/sinonkt/shapeit4/internal/params"
	"github.com/sinonkt/shapeit4/internal/schedule"
)

// MissingParameterError reports an absent required option.
type MissingParameterError struct {
	Option string
	Hint   string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing required parameter: %s (--%s)", e.Hint, e.Option)
}

// OutOfRangeError reports a scalar option outside its allowed range.
type OutOfRangeError struct {
	Option  string
	Value   string
	Allowed string
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("parameter --%s out of range: got %s, allowed %s", e.Option, e.Value, e.Allowed)
}

// Window size bounds in centimorgans, both inclusive.
const (
	WindowMin = 0.5
	WindowMax = 10.0
)

// Check validates the Set and compiles its iteration scheme. The rule order
// is fixed: required presence, then ranges, then advisory cross-field
// findings, then the scheme compilation. The first fatal violation is
// returned immediately; on success the compiled plan is returned alongside
// a nil error.
func Check(ctx context.Context, set *params.Set) (*schedule.Plan, error) {
	if err := checkRequired(set); err != nil {
		return nil, err
	}
	if err := checkRanges(set); err != nil {
		return nil, err
	}

	// Advisory only: a fixed seed cannot make a multi-threaded run
	// reproducible, because thread interleaving perturbs the sampler. The
	// literal condition is "both options user-supplied", even for an
	// explicit --thread 1.
	if set.Changed("thread") && set.Changed("seed") {
		ctxlog.FromContext(ctx).Warn("Using multi-threading prevents reproducing a run by specifying --seed")
	}

	plan, err := schedule.Compile(set.Iterations)
	if err != nil {
		return nil, fmt.Errorf("invalid --mcmc-iterations scheme: %w", err)
	}
	return plan, nil
}

func checkRequired(set *params.Set) error {
	if set.Input == "" {
		return &MissingParameterError{Option: "input", Hint: "genotypes to be phased"}
	}
	if set.Region == "" {
		return &MissingParameterError{Option: "region", Hint: "target region or chromosome to phase"}
	}
	if set.Output == "" {
		return &MissingParameterError{Option: "output", Hint: "phased output file"}
	}
	return nil
}

func checkRanges(set *params.Set) error {
	if set.Seed < 0 {
		return &OutOfRangeError{
			Option:  "seed",
			Value:   fmt.Sprintf("%d", set.Seed),
			Allowed: ">= 0",
		}
	}
	if set.Threads < 1 {
		return &OutOfRangeError{
			Option:  "thread",
			Value:   fmt.Sprintf("%d", set.Threads),
			Allowed: ">= 1",
		}
	}
	// The next two rules only apply to user-supplied values; the defaults
	// are trusted.
	if set.Changed("effective-size") && set.EffectiveSize < 1 {
		return &OutOfRangeError{
			Option:  "effective-size",
			Value:   fmt.Sprintf("%d", set.EffectiveSize),
			Allowed: ">= 1",
		}
	}
	if set.Changed("window") && (set.Window < WindowMin || set.Window > WindowMax) {
		return &OutOfRangeError{
			Option:  "window",
			Value:   fmt.Sprintf("%g", set.Window),
			Allowed: fmt.Sprintf("[%g, %g] cM", WindowMin, WindowMax),
		}
	}
	return nil
}

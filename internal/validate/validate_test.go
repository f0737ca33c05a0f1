package validate

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sinonkt/shapeit4/internal/ctxlog"
	"github.com/sinonkt/shapeit4/internal/params"
	"github.com/sinonkt/shapeit4/internal/schedule"
)

// parseSet runs the given command line through the real registry so that
// Changed bits behave exactly as in production.
func parseSet(t *testing.T, args ...string) *params.Set {
	t.Helper()
	var set params.Set
	fs := params.NewFlagSet(&set)
	require.NoError(t, fs.Parse(args))
	set.Finalize(fs)
	return &set
}

// completeArgs is a minimal valid command line.
var completeArgs = []string{"--input", "in.vcf", "--region", "chr20", "--output", "out.vcf"}

func TestCheck_ValidSet(t *testing.T) {
	t.Parallel()

	set := parseSet(t, completeArgs...)
	plan, err := Check(context.Background(), set)
	require.NoError(t, err)
	assert.Equal(t, 14, plan.Len(), "default scheme compiles to the 14-phase plan")
}

func TestCheck_RequiredParameters(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		args       []string
		wantOption string
	}{
		{
			name:       "missing input",
			args:       []string{"--region", "chr20", "--output", "out.vcf"},
			wantOption: "input",
		},
		{
			name:       "missing region",
			args:       []string{"--input", "in.vcf", "--output", "out.vcf"},
			wantOption: "region",
		},
		{
			name:       "missing output",
			args:       []string{"--input", "in.vcf", "--region", "chr20"},
			wantOption: "output",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Check(context.Background(), parseSet(t, tc.args...))
			var missing *MissingParameterError
			require.True(t, errors.As(err, &missing), "expected MissingParameterError, got %v", err)
			assert.Equal(t, tc.wantOption, missing.Option)
		})
	}
}

func TestCheck_PresenceBeforeRange(t *testing.T) {
	t.Parallel()

	// Both violations present: missing --input must be reported first.
	set := parseSet(t, "--region", "chr20", "--output", "out.vcf", "--window", "50")
	_, err := Check(context.Background(), set)

	var missing *MissingParameterError
	require.True(t, errors.As(err, &missing), "expected the missing-input error first, got %v", err)
	assert.Equal(t, "input", missing.Option)
}

func TestCheck_Ranges(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		extra      []string
		wantOption string
		wantOK     bool
	}{
		{name: "seed zero is accepted", extra: []string{"--seed", "0"}, wantOK: true},
		{name: "negative seed rejected", extra: []string{"--seed", "-1"}, wantOption: "seed"},
		{name: "zero threads rejected", extra: []string{"--thread", "0"}, wantOption: "thread"},
		{name: "one thread accepted", extra: []string{"--thread", "1"}, wantOK: true},
		{name: "effective size zero rejected when supplied", extra: []string{"--effective-size", "0"}, wantOption: "effective-size"},
		{name: "window lower bound accepted", extra: []string{"--window", "0.5"}, wantOK: true},
		{name: "window upper bound accepted", extra: []string{"--window", "10"}, wantOK: true},
		{name: "window below lower bound rejected", extra: []string{"--window", "0.49999"}, wantOption: "window"},
		{name: "window above upper bound rejected", extra: []string{"--window", "10.00001"}, wantOption: "window"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			args := append(append([]string{}, completeArgs...), tc.extra...)
			_, err := Check(context.Background(), parseSet(t, args...))

			if tc.wantOK {
				require.NoError(t, err)
				return
			}
			var outOfRange *OutOfRangeError
			require.True(t, errors.As(err, &outOfRange), "expected OutOfRangeError, got %v", err)
			assert.Equal(t, tc.wantOption, outOfRange.Option)
		})
	}
}

func TestCheck_ThreadSeedWarning(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		extra    []string
		wantWarn bool
	}{
		{
			name:     "both user-supplied",
			extra:    []string{"--thread", "4", "--seed", "42"},
			wantWarn: true,
		},
		{
			// The literal condition is "both non-default", so an explicit
			// --thread 1 still warns.
			name:     "explicit single thread still warns",
			extra:    []string{"--thread", "1", "--seed", "42"},
			wantWarn: true,
		},
		{
			name:     "only seed supplied",
			extra:    []string{"--seed", "42"},
			wantWarn: false,
		},
		{
			name:     "only thread supplied",
			extra:    []string{"--thread", "4"},
			wantWarn: false,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))
			ctx := ctxlog.WithLogger(context.Background(), logger)

			args := append(append([]string{}, completeArgs...), tc.extra...)
			_, err := Check(ctx, parseSet(t, args...))
			require.NoError(t, err, "the warning is advisory and must not fail validation")

			if tc.wantWarn {
				assert.Contains(t, buf.String(), "prevents reproducing a run")
			} else {
				assert.NotContains(t, buf.String(), "prevents reproducing a run")
			}
		})
	}
}

func TestCheck_SchemeErrorsPropagate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		scheme string
		target any
	}{
		{name: "malformed token", scheme: "b,1p", target: &schedule.MalformedTokenError{}},
		{name: "unknown kind", scheme: "3x", target: &schedule.UnknownKindError{}},
		{name: "empty scheme", scheme: "", target: schedule.ErrEmptySchedule},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			args := append(append([]string{}, completeArgs...), "--mcmc-iterations", tc.scheme)
			_, err := Check(context.Background(), parseSet(t, args...))
			require.Error(t, err)

			switch target := tc.target.(type) {
			case *schedule.MalformedTokenError:
				var malformed *schedule.MalformedTokenError
				assert.True(t, errors.As(err, &malformed), "got %v", err)
			case *schedule.UnknownKindError:
				var unknown *schedule.UnknownKindError
				assert.True(t, errors.As(err, &unknown), "got %v", err)
			case error:
				assert.ErrorIs(t, err, target)
			}
		})
	}
}

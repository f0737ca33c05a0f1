// Package schedule compiles the compact MCMC iteration-scheme notation
// (e.g. "5b,1p,1b,1p,1b,1p,5m") into an immutable, ordered execution plan.
//
// The notation is a comma-separated list of tokens, each a positive repeat
// count followed by a single phase letter: 'b' (burn-in), 'p' (pruning) or
// 'm' (main). The compiler expands every token into its individual phases,
// preserving source order exactly, so the downstream sampler can walk the
// plan without re-interpreting the notation.
package schedule

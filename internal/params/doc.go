// Package params declares the full set of run-time parameters accepted by
// the phaser, grouped into display sections, and turns parsed input into an
// immutable strongly-typed Set.
//
// The declarative registry is the single source of truth for option names,
// aliases, types, defaults and help text. Values arrive either from the
// command line (spf13/pflag) or from an optional HCL preset file; explicit
// command-line flags always win over preset values, and both count as
// "user-supplied" for validation rules that distinguish defaults.
package params

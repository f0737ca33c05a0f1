// Package cli is responsible for parsing command-line arguments, handling
// --help, and mapping argument-syntax problems to process exit codes. It
// translates CLI flags and preset files into the typed parameter Set.
package cli

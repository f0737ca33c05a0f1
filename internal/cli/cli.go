package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/sinonkt/shapeit4/internal/params"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments into a typed parameter Set. It
// returns the Set, a boolean indicating the program should exit cleanly
// (e.g. after --help), or an ExitError for malformed input.
func Parse(args []string, output io.Writer) (*params.Set, bool, error) {
	var set params.Set
	fs := params.NewFlagSet(&set)
	fs.SetOutput(output)
	fs.Usage = func() { usage(output, fs) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			usage(output, fs)
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: "Error parsing command line arguments: " + err.Error()}
	}

	if set.Help {
		usage(output, fs)
		return nil, true, nil
	}

	set.LogFormat = strings.ToLower(set.LogFormat)
	if set.LogFormat != "text" && set.LogFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	set.LogLevel = strings.ToLower(set.LogLevel)
	switch set.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	// Preset values fill in anything the command line left untouched.
	if set.Preset != "" {
		if err := params.LoadPreset(set.Preset, fs); err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
	}

	set.Finalize(fs)
	return &set, false, nil
}

// usage prints the banner line and the grouped option table.
func usage(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprint(w, `
phaser - parameter front-end for statistical haplotype phasing.

Usage:
  phaser [options]

`)
	params.Usage(w, fs)
}

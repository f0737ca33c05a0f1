// Package app wires the configuration pipeline: logger and log-file setup,
// the startup banner, validation, schedule compilation and reporting. It is
// decoupled from any specific entrypoint; cmd/phaser is a thin shell over it.
package app

// Package errors defines the error values shared across lowperf.
//
// The waste procedures themselves cannot fail. These errors come from the
// plumbing around them: configuration, output and report writing.
package errors

import "errors"

// Configuration errors.
var (
	// ErrUnknownProcedure is returned when a procedure name is not registered.
	ErrUnknownProcedure = errors.New("unknown procedure")

	// ErrInvalidCount is returned when an iteration count is negative or not a number.
	ErrInvalidCount = errors.New("invalid iteration count")

	// ErrConfigRead is returned when a config file cannot be read.
	ErrConfigRead = errors.New("config read failed")
)

// Output errors.
var (
	// ErrOutputWrite is returned when a console line cannot be written.
	ErrOutputWrite = errors.New("output write failed")

	// ErrReportWrite is returned when the run report cannot be persisted.
	ErrReportWrite = errors.New("report write failed")
)

// Run errors.
var (
	// ErrInterrupted is returned when the run context is cancelled between procedures.
	ErrInterrupted = errors.New("run interrupted")
)


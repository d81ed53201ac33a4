package main

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
)

// newLogger creates the CLI diagnostics logger.
// Default level is warn; --verbose shows debug, --quiet only errors.
func newLogger(w io.Writer, f *commonFlags) hclog.Logger {
	level := hclog.Warn
	switch {
	case f.quiet:
		level = hclog.Error
	case f.verbose:
		level = hclog.Debug
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:        "passimages",
		Level:       level,
		Output:      w,
		DisableTime: true,
	})
}

// printfAdapter exposes logger.Debug as a printf-style function.
func printfAdapter(logger hclog.Logger) func(format string, args ...any) {
	return func(format string, args ...any) {
		logger.Debug(fmt.Sprintf(format, args...))
	}
}

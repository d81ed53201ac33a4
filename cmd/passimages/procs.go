package main

import "go.uber.org/automaxprocs/maxprocs"

// tuneProcs sets GOMAXPROCS from the container CPU quota.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func tuneProcs(logf func(format string, args ...any)) {
	_, _ = maxprocs.Set(maxprocs.Logger(logf))
}

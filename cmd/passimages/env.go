package main

import (
	"io"
	"os"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Environ func() []string // Process environment as KEY=value pairs
	// TuneProcs applies container-aware GOMAXPROCS once a logger exists.
	// Nil in tests so they don't touch the process runtime.
	TuneProcs func(logf func(format string, args ...any))
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Environ:   os.Environ,
		TuneProcs: tuneProcs,
	}
}

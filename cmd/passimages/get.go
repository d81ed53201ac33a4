package main

import (
	"errors"
	"fmt"

	"github.com/alnah/go-passimages"
	flag "github.com/spf13/pflag"
)

// runGetCmd prints the path registered for one role and density.
// Validation happens before the scan so a typo in the role is reported
// even when the directory is missing.
func runGetCmd(args []string, env *Environment) error {
	flags, positional, err := parseGetFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if len(positional) < 1 || len(positional) > 2 {
		return fmt.Errorf("%w: expected <role> [density]", ErrUsage)
	}

	role := passimages.Role(positional[0])
	var density passimages.Density
	if len(positional) == 2 {
		density = passimages.Density(positional[1])
	}

	s, err := loadSettings(&flags.common, env)
	if err != nil {
		return err
	}

	store := s.newStore()
	if _, _, err := store.Get(role, density); err != nil {
		return validationError(err, s.vocab)
	}

	dir, err := s.resolveDir(flags.dir)
	if err != nil {
		return err
	}
	if _, err := s.scan(store, dir); err != nil {
		return err
	}

	path, ok, err := store.Get(role, density)
	if err != nil {
		return validationError(err, s.vocab)
	}
	if !ok {
		return fmt.Errorf("%w: %s in %s", ErrImageAbsent, s.vocab.AssetName(role, density), dir)
	}

	fmt.Fprintln(env.Stdout, path)
	return nil
}

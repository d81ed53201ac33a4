package main

import (
	"errors"
	"fmt"

	"github.com/alnah/go-passimages"
	"github.com/alnah/go-passimages/internal/config"
	"github.com/alnah/go-passimages/internal/fileutil"
	"github.com/alnah/go-passimages/internal/hints"
	"github.com/hashicorp/go-hclog"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage       = errors.New("invalid usage")
	ErrNoDirectory = errors.New("no images directory specified")
	ErrWriteReport = errors.New("failed to write report")
	ErrImageAbsent = errors.New("image not registered")
)

// settings is the resolved configuration shared by every command.
// Precedence: flags > PASSIMAGES_* > config file > defaults.
type settings struct {
	cfg    *config.Config
	env    *envConfig
	vocab  *passimages.Vocabulary
	logger hclog.Logger
}

// loadSettings builds the logger, reads the environment and config file,
// and freezes the vocabulary.
func loadSettings(common *commonFlags, env *Environment) (*settings, error) {
	logger := newLogger(env.Stderr, common)
	if env.TuneProcs != nil {
		env.TuneProcs(printfAdapter(logger))
	}

	var environ []string
	if env.Environ != nil {
		environ = env.Environ()
	}
	warnUnknownEnvVars(environ, logger)

	envCfg, err := loadEnvConfig(environ)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	cfg := config.DefaultConfig()
	name := firstNonEmpty(common.config, envCfg.ConfigPath)
	if name != "" {
		cfg, err = config.LoadConfig(name)
		if err != nil {
			return nil, configError(name, err)
		}
		logger.Debug("config loaded", "name", name)
	}

	vocab, err := cfg.BuildVocabulary()
	if err != nil {
		return nil, fmt.Errorf("vocabulary: %w", err)
	}
	logger.Debug("vocabulary", "roles", vocab.Roles(), "densities", vocab.Densities())

	return &settings{cfg: cfg, env: envCfg, vocab: vocab, logger: logger}, nil
}

// resolveDir picks the images directory: explicit argument, then
// PASSIMAGES_DIR, then scan.defaultDir.
func (s *settings) resolveDir(arg string) (string, error) {
	dir := firstNonEmpty(arg, s.env.Dir, s.cfg.Scan.DefaultDir)
	if dir == "" {
		return "", fmt.Errorf("%w: pass a directory, set PASSIMAGES_DIR, or set scan.defaultDir", ErrNoDirectory)
	}
	return dir, nil
}

// newStore returns an empty store over the configured vocabulary.
func (s *settings) newStore() *passimages.Store {
	return passimages.NewStore(passimages.WithVocabulary(s.vocab))
}

// scan loads dir into store and logs what matched and what was skipped.
func (s *settings) scan(store *passimages.Store, dir string) (*passimages.ScanResult, error) {
	result, err := passimages.NewDirectoryLoader(store).Scan(dir)
	if err != nil {
		return nil, fmt.Errorf("%w%s", err, hints.ForDirectoryRead(err))
	}

	for _, e := range result.Matched {
		s.logger.Debug("registered", "role", e.Role, "density", e.Density, "path", e.Path)
	}
	for _, name := range result.Skipped {
		s.logger.Debug("skipped", "name", name)
	}
	s.logger.Info("scan complete", "dir", result.Dir, "registered", len(result.Matched), "skipped", len(result.Skipped))

	return result, nil
}

// configError appends a hint when a named config could not be found.
func configError(name string, err error) error {
	if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
		return fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
	}
	return fmt.Errorf("loading config: %w", err)
}

// validationError appends the accepted values to role and density errors.
func validationError(err error, vocab *passimages.Vocabulary) error {
	switch {
	case errors.Is(err, passimages.ErrInvalidRole):
		return fmt.Errorf("%w%s", err, hints.ForInvalidRole(toStrings(vocab.Roles())))
	case errors.Is(err, passimages.ErrInvalidDensity):
		return fmt.Errorf("%w%s", err, hints.ForInvalidDensity(toStrings(vocab.Densities())))
	default:
		return err
	}
}

// toStrings converts a slice of string-kinded values.
func toStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// firstNonEmpty returns the first non-empty value.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

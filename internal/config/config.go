package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-passimages"
	"github.com/alnah/go-passimages/internal/fileutil"
	"github.com/alnah/go-passimages/internal/report"
	"github.com/alnah/go-passimages/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrTooManyEntries  = errors.New("too many entries")
)

// Field length and count limits.
const (
	MaxRoleLength    = 64   // "background", "thumbnail", custom roles
	MaxDensityLength = 8    // "1x" .. "99999x"
	MaxRoles         = 64   // Pass formats define well under ten
	MaxDensities     = 16   // Display tiers
	MaxDirLength     = 4096 // PATH_MAX on Linux
	MaxTitleLength   = 200  // Report heading
)

// configDirName is the directory searched under the user config dir.
const configDirName = "go-passimages"

// Config holds all configuration for scanning and reporting.
type Config struct {
	Vocabulary VocabularyConfig `yaml:"vocabulary"`
	Scan       ScanConfig       `yaml:"scan"`
	Report     ReportConfig     `yaml:"report"`
}

// VocabularyConfig lists the accepted roles and densities.
// Empty lists mean the built-in defaults.
type VocabularyConfig struct {
	Roles     []string `yaml:"roles"`
	Densities []string `yaml:"densities"`
}

// ScanConfig defines directory scanning options.
type ScanConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Used when no directory argument is given
}

// ReportConfig defines report output options.
type ReportConfig struct {
	Format string `yaml:"format"` // text, yaml, markdown, html (default: text)
	Title  string `yaml:"title"`  // Heading for markdown/html reports
}

// Validate checks limits, report format, and that the vocabulary is usable.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if len(c.Vocabulary.Roles) > MaxRoles {
		return fmt.Errorf("%w: vocabulary.roles (%d, max %d)", ErrTooManyEntries, len(c.Vocabulary.Roles), MaxRoles)
	}
	if len(c.Vocabulary.Densities) > MaxDensities {
		return fmt.Errorf("%w: vocabulary.densities (%d, max %d)", ErrTooManyEntries, len(c.Vocabulary.Densities), MaxDensities)
	}
	for i, r := range c.Vocabulary.Roles {
		if err := validateFieldLength(fmt.Sprintf("vocabulary.roles[%d]", i), r, MaxRoleLength); err != nil {
			return err
		}
	}
	for i, d := range c.Vocabulary.Densities {
		if err := validateFieldLength(fmt.Sprintf("vocabulary.densities[%d]", i), d, MaxDensityLength); err != nil {
			return err
		}
	}

	if err := validateFieldLength("scan.defaultDir", c.Scan.DefaultDir, MaxDirLength); err != nil {
		return err
	}
	if err := validateFieldLength("report.title", c.Report.Title, MaxTitleLength); err != nil {
		return err
	}
	if _, err := report.ParseFormat(c.Report.Format); err != nil {
		return fmt.Errorf("report.format: %w", err)
	}

	if _, err := c.BuildVocabulary(); err != nil {
		return fmt.Errorf("vocabulary: %w", err)
	}

	return nil
}

// BuildVocabulary converts the configured lists into a Vocabulary.
// Empty lists fall back to passimages.DefaultRoles and DefaultDensities.
func (c *Config) BuildVocabulary() (*passimages.Vocabulary, error) {
	roles := passimages.DefaultRoles()
	if len(c.Vocabulary.Roles) > 0 {
		roles = make([]passimages.Role, len(c.Vocabulary.Roles))
		for i, r := range c.Vocabulary.Roles {
			roles[i] = passimages.Role(r)
		}
	}

	densities := passimages.DefaultDensities()
	if len(c.Vocabulary.Densities) > 0 {
		densities = make([]passimages.Density, len(c.Vocabulary.Densities))
		for i, d := range c.Vocabulary.Densities {
			densities[i] = passimages.Density(d)
		}
	}

	return passimages.NewVocabulary(roles, densities)
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the built-in vocabulary and text reports.
func DefaultConfig() *Config {
	return &Config{
		Vocabulary: VocabularyConfig{},
		Scan:       ScanConfig{DefaultDir: ""},
		Report:     ReportConfig{Format: string(report.FormatText)},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists the files LoadConfig tries for a config name, in order:
// current directory, then the user config directory, .yaml before .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, configDirName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing file of SearchPaths.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}

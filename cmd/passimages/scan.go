package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/alnah/go-passimages/internal/fileutil"
	"github.com/alnah/go-passimages/internal/hints"
	"github.com/alnah/go-passimages/internal/report"
	flag "github.com/spf13/pflag"
)

// runScanCmd scans a directory and prints a report of the registered images.
func runScanCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseScanFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: scan takes at most one directory, got %d", ErrUsage, len(positional))
	}

	s, err := loadSettings(&flags.common, env)
	if err != nil {
		return err
	}

	format, err := report.ParseFormat(firstNonEmpty(flags.format, s.env.Format, s.cfg.Report.Format))
	if err != nil {
		return fmt.Errorf("%w%s", err, hints.ForUnknownFormat(report.Formats()))
	}

	var arg string
	if len(positional) == 1 {
		arg = positional[0]
	}
	dir, err := s.resolveDir(arg)
	if err != nil {
		return err
	}

	store := s.newStore()
	result, err := s.scan(store, dir)
	if err != nil {
		return err
	}

	summary := &report.Summary{
		Title:      firstNonEmpty(flags.title, s.env.Title, s.cfg.Report.Title),
		Dir:        result.Dir,
		Vocabulary: s.vocab,
		Entries:    store.Entries(),
		Skipped:    result.Skipped,
	}

	if flags.output == "" {
		return report.Render(ctx, env.Stdout, format, summary)
	}

	var buf bytes.Buffer
	if err := report.Render(ctx, &buf, format, summary); err != nil {
		return err
	}
	if err := fileutil.WriteFile(flags.output, buf.Bytes()); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteReport, err)
	}
	s.logger.Info("report written", "path", flags.output, "format", format)
	return nil
}

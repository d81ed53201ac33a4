package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// scanFlags holds all flags for the scan command.
type scanFlags struct {
	common commonFlags
	format string
	output string
	title  string
}

// getFlags holds all flags for the get command.
type getFlags struct {
	common commonFlags
	dir    string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show matched and skipped files")
}

// parseScanFlags parses scan command flags and returns positional args.
func parseScanFlags(args []string, stderr io.Writer) (*scanFlags, []string, error) {
	fs := flag.NewFlagSet("scan", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &scanFlags{}

	fs.StringVarP(&f.format, "format", "f", "", "report format: text, yaml, markdown, html")
	fs.StringVarP(&f.output, "output", "o", "", "write the report to a file")
	fs.StringVar(&f.title, "title", "", "report heading (markdown, html)")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printScanUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseGetFlags parses get command flags and returns positional args.
func parseGetFlags(args []string, stderr io.Writer) (*getFlags, []string, error) {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &getFlags{}

	fs.StringVarP(&f.dir, "dir", "d", "", "images directory")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printGetUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

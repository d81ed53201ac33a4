package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: passimages <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  scan       List the pass images found in a directory")
	fmt.Fprintln(w, "  get        Print the path of one image role and density")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'passimages help <command>' for details on a specific command.")
}

// printScanUsage prints usage for the scan command.
func printScanUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: passimages scan [dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Scan a directory for <role>.png and <role>@<n>x.png images.")
	fmt.Fprintln(w, "Other files are skipped.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  dir    Images directory (optional if PASSIMAGES_DIR or scan.defaultDir is set)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -f, --format <s>          Report format: text, yaml, markdown, html")
	fmt.Fprintln(w, "  -o, --output <path>       Write the report to a file")
	fmt.Fprintln(w, "      --title <s>           Report heading (markdown, html)")
	printCommonUsage(w)
}

// printGetUsage prints usage for the get command.
func printGetUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: passimages get <role> [density] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the path registered for role at density (default 1x).")
	fmt.Fprintf(w, "Exits with code %d when the image is absent.\n", ExitAbsent)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -d, --dir <path>          Images directory")
	printCommonUsage(w)
}

// printCommonUsage prints the flags shared by every command.
func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show matched and skipped files")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  PASSIMAGES_CONFIG, PASSIMAGES_DIR, PASSIMAGES_FORMAT, PASSIMAGES_TITLE")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "scan":
		printScanUsage(env.Stdout)
	case "get":
		printGetUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: passimages version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: passimages help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args, DefaultEnv())
	stop()
	os.Exit(code)
}

// runMain dispatches the command in args[1] and returns the process exit code.
func runMain(ctx context.Context, args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]

	var err error
	switch {
	case isCommand(cmd, "scan"):
		err = runScanCmd(ctx, rest, env)
	case isCommand(cmd, "get"):
		err = runGetCmd(rest, env)
	case isCommand(cmd, "version"):
		fmt.Fprintf(env.Stdout, "passimages %s\n", Version)
		return ExitSuccess
	case isCommand(cmd, "help"):
		return runHelp(rest, env)
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}

	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	fmt.Fprintln(env.Stderr, err)
	return exitCodeFor(err)
}

// isCommand matches a command name, accepting the "--name" spelling for
// version and help.
func isCommand(arg, name string) bool {
	arg = strings.TrimPrefix(arg, "--")
	if arg == name {
		return true
	}
	return name == "help" && (arg == "-h" || arg == "h")
}

package main

import (
	"context"
	"dgramlog/internal/cli"
	"dgramlog/internal/global"
	"dgramlog/internal/logctx"
	"flag"
	"fmt"
	"os"
	"runtime"
)

func main() {
	global.CmdOpts = cli.DefineOptions()

	// Retrieve command and args (options only means receive)
	command, args := cli.SplitCommand(os.Args[1:])

	// Setting global logging
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	logger := logctx.NewLogger("global", global.VerbosityStandard, ctx.Done()) // New logger tied to global
	ctx = logctx.WithLogger(ctx, logger)                                       // Add logger to global ctx
	logctx.StartWatcher(logger, os.Stderr)                                     // Program messages stay off stdout

	// Process commands
	switch command {
	case "receive":
		cli.ReceiveMode(ctx, command, args)
	case "version":
		if len(args) > 0 && (args[0] == "--verbosity" || args[0] == "-v") {
			fmt.Printf("dgramlog %s\n", global.ProgVersion)
			fmt.Printf("Built using %s(%s) for %s on %s\n", runtime.Version(), runtime.Compiler, runtime.GOOS, runtime.GOARCH)
		} else {
			fmt.Println(global.ProgVersion)
		}
	case "help":
		rootFlags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
		cli.SetGlobalArguments(rootFlags)
		cli.PrintHelpMenu(rootFlags, cli.RootCLICommand, global.CmdOpts)
	default:
		rootFlags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
		cli.SetGlobalArguments(rootFlags)
		fmt.Fprintf(os.Stderr, "Error: unknown command '%s'\n", command)
		cli.PrintHelpMenu(rootFlags, cli.RootCLICommand, global.CmdOpts)
		os.Exit(1)
	}

	// Finish up any writes for global logger
	cancel()
	logger.Wake()
	logger.Wait()
}

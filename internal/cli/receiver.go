package cli

import (
	"context"
	"dgramlog/internal/global"
	"dgramlog/internal/lifecycle"
	"dgramlog/internal/logctx"
	"dgramlog/internal/receiver"
	"flag"
	"fmt"
	"os"
)

func ReceiveMode(ctx context.Context, commandname string, args []string) {
	var cfg receiver.Config
	commandFlags := flag.NewFlagSet(commandname, flag.ExitOnError)
	SetGlobalArguments(commandFlags)
	SetReceiveArguments(commandFlags, &cfg)

	commandFlags.Usage = func() {
		PrintHelpMenu(commandFlags, commandname, global.CmdOpts)
	}
	commandFlags.Parse(args)

	if commandFlags.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected argument '%s'\n", commandFlags.Arg(0))
		os.Exit(1)
	}

	logctx.SetLogLevel(ctx, global.Verbosity)

	recvDaemon := receiver.NewDaemon(cfg)
	err := recvDaemon.Start(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting receiving daemon: %v\n", err)
		os.Exit(1)
	}

	// Shutdown on termination signal, Run returns once complete
	go lifecycle.SignalHandler(ctx, recvDaemon)
	recvDaemon.Run()
}

package cli

import (
	"dgramlog/internal/global"
	"strings"
)

func DefineOptions() (cmdOpts *global.CommandSet) {
	// Root level
	root := &global.CommandSet{
		Description:     "Datagram Log Receiver (dgramlog)",
		FullDescription: "  Receives level-tagged log lines over UDP and writes them to the console",
		CommandName:     RootCLICommand,
		UsageOption:     "[options]",
		ChildCommands:   make(map[string]*global.CommandSet),
	}

	// Receiving
	root.ChildCommands["receive"] = &global.CommandSet{
		CommandName:     "receive",
		UsageOption:     "[options]",
		Description:     "Receive Messages (default)",
		FullDescription: "Listens for '<LEVEL> <message>' datagrams on all interfaces and writes one line per matched level",
		ChildCommands:   nil,
	}

	// Version Info
	root.ChildCommands["version"] = &global.CommandSet{
		CommandName:     "version",
		Description:     "Show Version Information",
		FullDescription: "Display meta information about program",
	}

	cmdOpts = root
	return
}

// Separates the subcommand from its arguments.
// Without a subcommand (no arguments, or options only) the receive command is implied.
func SplitCommand(args []string) (command string, commandArgs []string) {
	command = DefaultCommand
	commandArgs = args
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		command = args[0]
		commandArgs = args[1:]
	}
	return
}

package cli

import (
	"dgramlog/internal/global"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

const (
	RootCLICommand  string = "root"
	DefaultCommand  string = "receive"
	helpMenuTrailer string = `
Running without a subcommand is the same as 'receive'.
Lines are written to stdout as '[timestamp] [LEVEL] [senderIP:senderPort] message'.
`
)

// Full standardized help menu on stdout (wraps option printer as well)
func PrintHelpMenu(fs *flag.FlagSet, command string, rootCmd *global.CommandSet) {
	writeHelpMenu(os.Stdout, fs, command, rootCmd)
}

func writeHelpMenu(out io.Writer, fs *flag.FlagSet, command string, rootCmd *global.CommandSet) {
	const baseIndentSpaces = 2

	// Commands are one level deep
	curCmdSet := rootCmd
	if command != "" && command != RootCLICommand {
		cmd, ok := rootCmd.ChildCommands[command]
		if !ok {
			fmt.Fprintf(out, "Unknown command: %s\n", command)
			return
		}
		curCmdSet = cmd
	}

	usageParts := []string{os.Args[0]}
	if curCmdSet != rootCmd {
		usageParts = append(usageParts, curCmdSet.CommandName)
	} else if len(curCmdSet.ChildCommands) > 0 {
		usageParts = append(usageParts, "[subcommand]")
	}
	if curCmdSet.UsageOption != "" {
		usageParts = append(usageParts, curCmdSet.UsageOption)
	}
	fmt.Fprintf(out, "Usage: %s\n\n", strings.Join(usageParts, " "))

	if curCmdSet == rootCmd {
		fmt.Fprintln(out, curCmdSet.Description)
		fmt.Fprintln(out, curCmdSet.FullDescription)
		fmt.Fprintln(out)
	} else if curCmdSet.FullDescription != "" {
		fmt.Fprintln(out, "  Description:")
		fmt.Fprintf(out, "    %s\n\n", curCmdSet.FullDescription)
	}

	if len(curCmdSet.ChildCommands) > 0 {
		fmt.Fprintf(out, "%sSubcommands:\n", strings.Repeat(" ", baseIndentSpaces))

		subNames := make([]string, 0, len(curCmdSet.ChildCommands))
		maxLen := 0
		for name := range curCmdSet.ChildCommands {
			subNames = append(subNames, name)
			maxLen = max(maxLen, len(name))
		}
		sort.Strings(subNames)

		cmdIndent := strings.Repeat(" ", baseIndentSpaces+2)
		for _, name := range subNames {
			padding := strings.Repeat(" ", maxLen-len(name)+2)
			fmt.Fprintf(out, "%s%s%s - %s\n", cmdIndent, name, padding, curCmdSet.ChildCommands[name].Description)
		}
		fmt.Fprintln(out)
	}

	writeFlagOptions(out, fs, baseIndentSpaces)

	if curCmdSet == rootCmd {
		fmt.Fprint(out, helpMenuTrailer)
	}
}

type flagOption struct {
	names      []string // "-p", "--port"
	usage      string
	defaultVal string
	hasShort   bool
}

// Merges flags registered under a short and a long name.
// Two flags are the same option when their usage text is identical.
func collectFlagOptions(fs *flag.FlagSet) (opts []*flagOption) {
	byUsage := make(map[string]*flagOption)

	fs.VisitAll(func(arg *flag.Flag) {
		opt, seen := byUsage[arg.Usage]
		if !seen {
			opt = &flagOption{
				usage:      arg.Usage,
				defaultVal: arg.DefValue,
			}
			byUsage[arg.Usage] = opt
			opts = append(opts, opt)
		}

		if len(arg.Name) == 1 {
			opt.names = append(opt.names, "-"+arg.Name)
			opt.hasShort = true
		} else {
			opt.names = append(opt.names, "--"+arg.Name)
		}
	})

	for _, opt := range opts {
		sort.SliceStable(opt.names, func(indexA, indexB int) bool {
			return len(opt.names[indexA]) < len(opt.names[indexB])
		})
	}

	sort.Slice(opts, func(indexA, indexB int) bool {
		return strings.TrimLeft(opts[indexA].names[0], "-") < strings.TrimLeft(opts[indexB].names[0], "-")
	})
	return
}

// Prints options as "  -p, --port  usage" with long-only options aligned after the short column
func writeFlagOptions(out io.Writer, fs *flag.FlagSet, baseIndentSpaces int) {
	const shortLongArgJoiner string = ", "
	const argToUsageSpaces int = 2

	// Width of "-x, "
	longOnlyOffset := len(shortLongArgJoiner) + 2

	opts := collectFlagOptions(fs)

	leftWidth := func(opt *flagOption) (width int) {
		width = len(strings.Join(opt.names, shortLongArgJoiner))
		if !opt.hasShort {
			width += longOnlyOffset
		}
		return
	}

	maxLen := 0
	for _, opt := range opts {
		maxLen = max(maxLen, leftWidth(opt))
	}

	fmt.Fprintf(out, "%sOptions:\n", strings.Repeat(" ", baseIndentSpaces))
	for _, opt := range opts {
		indentSpaces := baseIndentSpaces
		if !opt.hasShort {
			indentSpaces += longOnlyOffset
		}

		desc := opt.usage
		if opt.defaultVal != "" && opt.defaultVal != "false" && opt.defaultVal != "0" {
			desc += fmt.Sprintf(" [default: %s]", opt.defaultVal)
		}

		fmt.Fprintf(out, "%s%s%s%s\n",
			strings.Repeat(" ", indentSpaces),
			strings.Join(opt.names, shortLongArgJoiner),
			strings.Repeat(" ", maxLen-leftWidth(opt)+argToUsageSpaces),
			desc)
	}
}

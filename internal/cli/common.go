package cli

import (
	"dgramlog/internal/global"
	"dgramlog/internal/receiver"
	"flag"
)

func SetGlobalArguments(fs *flag.FlagSet) {
	fs.IntVar(&global.Verbosity, "v", 1, "Increase detailed progress messages (Higher is more verbose) <0...5>")
	fs.IntVar(&global.Verbosity, "verbosity", 1, "Increase detailed progress messages (Higher is more verbose) <0...5>")
}

func SetReceiveArguments(fs *flag.FlagSet, cfg *receiver.Config) {
	fs.IntVar(&cfg.ListenPort, "p", global.DefaultReceiverPort, "UDP port to listen on (all interfaces, 0 picks a free port)")
	fs.IntVar(&cfg.ListenPort, "port", global.DefaultReceiverPort, "UDP port to listen on (all interfaces, 0 picks a free port)")
	fs.StringVar(&cfg.BeatsEndpoint, "beats", "", "Also forward messages to a beats (lumberjack) server <host:port>")
	fs.BoolVar(&cfg.JournalEnabled, "journal", false, "Also write messages to the local systemd journal")
}

package lifecycle

import (
	"context"
	"dgramlog/internal/global"
	"dgramlog/internal/logctx"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

type DaemonLike interface {
	Shutdown()
}

// Signals that stop the daemon
var shutdownSignals = []os.Signal{unix.SIGINT, unix.SIGQUIT, unix.SIGTERM, unix.SIGHUP}

// Blocks until a termination signal arrives (or ctx is done), then initiates daemon shutdown.
// Returns the received signal, nil when ctx ended first.
func SignalHandler(ctx context.Context, daemon DaemonLike) (received os.Signal) {
	ctx = logctx.AppendCtxTag(ctx, global.NSLife)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, shutdownSignals...)
	defer signal.Stop(sigChan)

	select {
	case <-ctx.Done():
		return
	case received = <-sigChan:
	}

	logctx.LogEvent(ctx, global.VerbosityStandard, global.InfoLog, "Received signal: %v\n", received)

	err := NotifyStopping(ctx)
	if err != nil {
		logctx.LogEvent(ctx, global.VerbosityStandard, global.WarnLog, "Systemd notify stopping failed: %v\n", err)
	}

	daemon.Shutdown()
	return
}

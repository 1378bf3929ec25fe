// Daemon for continuous reception of level-tagged datagrams and delivery to the configured sinks
package receiver

import (
	"context"
	"dgramlog/internal/externalio/beats"
	"dgramlog/internal/externalio/journald"
	"dgramlog/internal/global"
	"dgramlog/internal/lifecycle"
	"dgramlog/internal/logctx"
	"dgramlog/internal/network"
	"dgramlog/internal/receiver/listener"
	"dgramlog/internal/sink"
	"fmt"
	"time"
)

// Create new receiver daemon instance
func NewDaemon(cfg Config) (new *Daemon) {
	ctx, cancel := context.WithCancel(context.Background())
	new = &Daemon{
		cfg:     cfg,
		ctx:     ctx,
		cancel:  cancel,
		stopped: make(chan struct{}),
	}
	return
}

// Opens outputs, binds the socket and starts the receive loop in background.
// A bind failure is returned without retry.
func (daemon *Daemon) Start(globalCtx context.Context) (err error) {
	// New context for the daemon
	daemon.ctx, daemon.cancel = context.WithCancel(context.Background())
	daemon.ctx = logctx.WithLogger(daemon.ctx, logctx.GetLogger(globalCtx))
	daemon.ctx = logctx.AppendCtxTag(daemon.ctx, global.NSRecv)

	logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.InfoLog, "Starting...\n")

	daemon.cfg.setDefaults()
	err = daemon.cfg.validate()
	if err != nil {
		return
	}

	// Outputs
	beatsMod, err := beats.NewOutput(daemon.cfg.BeatsEndpoint)
	if err != nil {
		err = fmt.Errorf("failed starting beats output: %v", err)
		return
	}
	jrnlMod, err := journald.NewOutput(daemon.cfg.JournalEnabled)
	if err != nil {
		err = fmt.Errorf("failed starting journal output: %v", err)
		beatsMod.Shutdown()
		return
	}
	daemon.Sink = sink.NewMulti(sink.NewConsole(daemon.cfg.ConsoleOutput), beatsMod, jrnlMod)

	// Socket
	daemon.conn, err = network.ListenUDP(daemon.ctx, daemon.cfg.ListenPort)
	if err != nil {
		daemon.Sink.Shutdown()
		return
	}
	daemon.Port = network.BoundPort(daemon.conn)

	// Receive loop
	daemon.Listener = listener.New(daemon.conn, daemon.Sink)
	workerCtx := daemon.ctx
	daemon.wg.Add(1)
	go func() {
		defer daemon.wg.Done()
		daemon.Listener.Run(workerCtx)
	}()

	logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.InfoLog,
		"Listening on UDP port %d (%d output(s))\n", daemon.Port, daemon.Sink.Len())

	err = lifecycle.NotifyReady(daemon.ctx)
	if err != nil {
		logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.WarnLog, "Systemd notify ready failed: %v\n", err)
		err = nil
	}
	err = lifecycle.NotifyStatus(daemon.ctx, fmt.Sprintf("Listening on UDP port %d", daemon.Port))
	if err != nil {
		logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.WarnLog, "Systemd notify status failed: %v\n", err)
		err = nil
	}
	return
}

// Blocking daemon waiter, returns once shutdown completed
func (daemon *Daemon) Run() {
	<-daemon.stopped
}

// Gracefully stops the receive loop and outputs (errors are printed to program log buffer)
func (daemon *Daemon) Shutdown() {
	daemon.shutdownOnce.Do(func() {
		defer close(daemon.stopped)

		logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.InfoLog,
			"Daemon shutdown started...\n")

		// Unblock the pending read
		daemon.cancel()
		if daemon.conn != nil {
			err := daemon.conn.Close()
			if err != nil {
				logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.WarnLog,
					"Failed closing listener socket: %v\n", err)
			}
		}

		// Wait for receive loop to finish (with timeout)
		done := make(chan struct{})
		go func() {
			daemon.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(global.ShutdownTimeout):
			logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.WarnLog,
				"Timeout: receive loop did not stop within %v seconds\n", global.ShutdownTimeout.Seconds())
		}

		if daemon.Sink != nil {
			err := daemon.Sink.Shutdown()
			if err != nil {
				logctx.LogEvent(logctx.AppendCtxTag(daemon.ctx, global.NSSink), global.VerbosityStandard, global.WarnLog,
					"Output did not shutdown gracefully: %v\n", err)
			}
		}

		if daemon.Listener != nil {
			logctx.LogEvent(daemon.ctx, global.VerbosityProgress, global.InfoLog,
				"Listener totals: %s\n", daemon.Listener.Summary())
		}

		logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.InfoLog,
			"Daemon shutdown completed\n")
	})
}

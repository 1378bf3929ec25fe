package lifecycle

import (
	"context"
	"os"
	"os/signal"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/sys/unix"
)

type fakeDaemon struct {
	shutdowns atomic.Int32
}

func (daemon *fakeDaemon) Shutdown() {
	daemon.shutdowns.Add(1)
}

func TestSignalHandler_Signal(t *testing.T) {
	t.Setenv(envNameNotifySocket, "")
	daemon := &fakeDaemon{}

	// Keep the default action (exit) away from SIGHUP for the whole test
	guard := make(chan os.Signal, 16)
	signal.Notify(guard, unix.SIGHUP)
	defer signal.Stop(guard)

	result := make(chan os.Signal, 1)
	go func() {
		result <- SignalHandler(context.Background(), daemon)
	}()

	// Resend until the handler has registered
	deadline := time.After(5 * time.Second)
	ticker := time.NewTicker(20 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case sig := <-result:
			if sig != unix.SIGHUP {
				t.Fatalf("expected SIGHUP, got %v", sig)
			}
			if daemon.shutdowns.Load() != 1 {
				t.Fatalf("expected exactly one shutdown, got %d", daemon.shutdowns.Load())
			}
			return
		case <-ticker.C:
			unix.Kill(os.Getpid(), unix.SIGHUP)
		case <-deadline:
			t.Fatal("signal handler did not return")
		}
	}
}

func TestSignalHandler_ContextDone(t *testing.T) {
	daemon := &fakeDaemon{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sig := SignalHandler(ctx, daemon)
	if sig != nil {
		t.Fatalf("expected nil signal, got %v", sig)
	}
	if daemon.shutdowns.Load() != 0 {
		t.Fatal("daemon must not be shut down when context ends first")
	}
}

package integration

import (
	"bytes"
	"context"
	"dgramlog/internal/global"
	"dgramlog/internal/logctx"
	"dgramlog/internal/receiver"
	"net"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"
)

// Console line: '[timestamp] [LEVEL] text'
var consoleLineRe = regexp.MustCompile(`^\[[^\]]+\] \[([A-Z]+)\] (.*)$`)

type emittedLine struct {
	level string
	text  string
}

// Console output shared between the receive goroutine and the test
type capturedOutput struct {
	mutex  sync.Mutex
	buffer bytes.Buffer
}

func (output *capturedOutput) Write(p []byte) (n int, err error) {
	output.mutex.Lock()
	defer output.mutex.Unlock()
	n, err = output.buffer.Write(p)
	return
}

func (output *capturedOutput) lines() (lines []emittedLine) {
	output.mutex.Lock()
	text := output.buffer.String()
	output.mutex.Unlock()

	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			continue
		}
		match := consoleLineRe.FindStringSubmatch(line)
		if match == nil {
			lines = append(lines, emittedLine{text: line})
			continue
		}
		lines = append(lines, emittedLine{level: match[1], text: match[2]})
	}
	return
}

// Starts a daemon on an ephemeral port with console output captured in memory
func startTestDaemon(t *testing.T) (daemon *receiver.Daemon, output *capturedOutput, ctx context.Context) {
	t.Helper()
	t.Setenv("NOTIFY_SOCKET", "")

	globalCtx, globalCancel := context.WithCancel(context.Background())
	logger := logctx.NewLogger("global", global.VerbosityDebug, globalCtx.Done())
	ctx = logctx.WithLogger(globalCtx, logger)

	output = &capturedOutput{}
	daemon = receiver.NewDaemon(receiver.Config{
		ListenPort:    0,
		ConsoleOutput: output,
	})
	err := daemon.Start(ctx)
	if err != nil {
		globalCancel()
		t.Fatalf("expected no error starting daemon, got %v", err)
	}

	t.Cleanup(func() {
		daemon.Shutdown()
		globalCancel()
	})
	return
}

// Sender socket with a known local port
func newSender(t *testing.T, port int) (conn *net.UDPConn, localAddr string) {
	t.Helper()
	conn, err := net.DialUDP("udp4", nil, &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: port})
	if err != nil {
		t.Fatalf("failed to dial receiver: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	localAddr = conn.LocalAddr().String()
	return
}

// Sends a sentinel datagram and waits until its line is emitted, so everything sent before it has been handled
func syncReceiver(t *testing.T, conn *net.UDPConn, output *capturedOutput, marker string) {
	t.Helper()
	_, err := conn.Write([]byte("CRITICAL " + marker))
	if err != nil {
		t.Fatalf("failed to send sentinel: %v", err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		for _, line := range output.lines() {
			if strings.HasSuffix(line.text, "] "+marker) {
				return
			}
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("sentinel %q never emitted, output: %+v", marker, output.lines())
}

// Lines emitted before the sentinel
func withoutSentinel(lines []emittedLine, marker string) (filtered []emittedLine) {
	for _, line := range lines {
		if strings.HasSuffix(line.text, "] "+marker) {
			continue
		}
		filtered = append(filtered, line)
	}
	return
}

// Searches the program log buffer for a queued event containing text
func searchLogBuffer(ctx context.Context, searchText string) (found bool) {
	logger := logctx.GetLogger(ctx)
	if logger == nil {
		return
	}
	for _, line := range logger.GetFormattedLogLines() {
		if strings.Contains(line, searchText) {
			found = true
			return
		}
	}
	return
}

// Leveled outputs for received messages (console, and fan-out to any external outputs)
package sink

import (
	"context"
	"dgramlog/internal/logctx"
	"dgramlog/pkg/protocol"
	"fmt"
	"io"
	"time"
)

// Creates console sink writing to output (stdout in the daemon)
func NewConsole(output io.Writer) (new *Console) {
	new = &Console{
		output: output,
	}
	return
}

// Writes one line: '[2026-01-31T12:34:56.123456789Z] [WARNING] [10.0.0.5:5000] disk at 90%'
func (console *Console) Write(ctx context.Context, level protocol.Level, msg protocol.Message) (err error) {
	event := logctx.Event{
		Timestamp: time.Now(),
		Severity:  level.String(),
		Message:   msg.Line(),
	}

	console.mutex.Lock()
	defer console.mutex.Unlock()

	_, err = fmt.Fprintln(console.output, event.Format())
	if err != nil {
		err = fmt.Errorf("failed writing to console: %w", err)
	}
	return
}

// Nothing to release, output is owned by the caller
func (console *Console) Shutdown() (err error) {
	return
}

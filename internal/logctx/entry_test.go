package logctx

import (
	"context"
	"dgramlog/internal/global"
	"testing"
	"time"
)

func TestLogEvent(t *testing.T) {
	done := make(chan struct{})
	defer close(done)

	baseCtx := context.Background()

	ctx := New(
		baseCtx,
		global.NSTest,
		2, // PrintLevel
		done,
	)

	logger := GetLogger(ctx)
	if logger == nil {
		t.Fatalf("expected logger creation, got nil logger")
	}

	tests := []struct {
		name          string
		logLevel      int
		eventLevel    int
		severity      string
		message       string
		vars          []any
		expectEvents  int
		expectMessage string
	}{
		{
			name:          "event level <= print level is logged",
			logLevel:      2,
			eventLevel:    1,
			severity:      global.InfoLog,
			message:       "hello world",
			expectEvents:  1,
			expectMessage: "hello world",
		},
		{
			name:         "event level > print level is dropped",
			logLevel:     1,
			eventLevel:   3,
			severity:     global.InfoLog,
			message:      "should not appear",
			expectEvents: 0,
		},
		{
			name:          "error severity bypasses level filtering",
			logLevel:      0,
			eventLevel:    5,
			severity:      global.ErrorLog,
			message:       "fatal error",
			expectEvents:  1,
			expectMessage: "fatal error",
		},
		{
			name:          "formatted message with vars",
			logLevel:      3,
			eventLevel:    2,
			severity:      global.InfoLog,
			message:       "value=%d",
			vars:          []any{42},
			expectEvents:  1,
			expectMessage: "value=42",
		},
		{
			name:          "no formatting when no format verbs",
			logLevel:      3,
			eventLevel:    2,
			severity:      global.InfoLog,
			message:       "log this message",
			vars:          []any{123},
			expectEvents:  1,
			expectMessage: "log this message",
		},
		{
			name:          "format verb but no variables for format",
			logLevel:      3,
			eventLevel:    2,
			severity:      global.InfoLog,
			message:       "log this message %d",
			vars:          []any{},
			expectEvents:  1,
			expectMessage: "log this message %d",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset queue
			logger.mutex.Lock()
			logger.queue = []Event{}
			logger.mutex.Unlock()

			SetLogLevel(ctx, tt.logLevel)

			if tt.vars != nil {
				LogEvent(ctx, tt.eventLevel, tt.severity, tt.message, tt.vars...)
			} else {
				LogEvent(ctx, tt.eventLevel, tt.severity, tt.message)
			}

			logger.mutex.Lock()
			defer logger.mutex.Unlock()

			if got := len(logger.queue); got != tt.expectEvents {
				t.Fatalf("expected %d events, got %d", tt.expectEvents, got)
			}

			if tt.expectEvents == 1 {
				ev := logger.queue[0]

				if ev.Severity != tt.severity {
					t.Fatalf("severity mismatch: got %q want %q", ev.Severity, tt.severity)
				}

				if ev.Message != tt.expectMessage {
					t.Fatalf("message mismatch: got %q want %q", ev.Message, tt.expectMessage)
				}

				if ev.Timestamp.IsZero() {
					t.Fatal("event timestamp is zero")
				}

				if time.Since(ev.Timestamp) > time.Second {
					t.Fatalf("event timestamp too old: %v", ev.Timestamp)
				}
			}
		})
	}
}


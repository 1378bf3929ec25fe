package journald

import (
	"context"
	"dgramlog/internal/global"
	"dgramlog/pkg/protocol"
	"fmt"

	journal "github.com/ssgreg/journald"
)

// Writes one emitted message line to the local journal
func (mod *OutModule) Write(ctx context.Context, level protocol.Level, msg protocol.Message) (err error) {
	if mod == nil {
		return
	}

	err = mod.sink.Send(msg.Line(), levelToPriority(level), entryFields(level, msg))
	if err != nil {
		err = fmt.Errorf("failed writing journal entry: %w", err)
		return
	}
	return
}

// Journal fields attached to every entry
func entryFields(level protocol.Level, msg protocol.Message) (fields map[string]interface{}) {
	fields = map[string]interface{}{
		"SYSLOG_IDENTIFIER": global.ProgBaseName,
		"SOURCE_ADDR":       protocol.FormatOrigin(msg.Origin),
		"SOURCE_LEVEL":      level.String(),
		"SOURCE_TOKEN":      msg.Token,
	}
	return
}

func levelToPriority(level protocol.Level) (priority journal.Priority) {
	switch level {
	case protocol.Debug:
		priority = journal.PriorityDebug
	case protocol.Info:
		priority = journal.PriorityInfo
	case protocol.Warning:
		priority = journal.PriorityWarning
	case protocol.Error:
		priority = journal.PriorityErr
	case protocol.Critical:
		priority = journal.PriorityCrit
	default:
		priority = journal.PriorityNotice
	}
	return
}

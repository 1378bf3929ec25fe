package beats

import (
	"context"
	"dgramlog/internal/global"
	"dgramlog/internal/syslog"
	"dgramlog/pkg/protocol"
	"fmt"
	"os"
	"time"
)

// Forwards one emitted message line to the configured beats server
func (mod *OutModule) Write(ctx context.Context, level protocol.Level, msg protocol.Message) (err error) {
	if mod == nil {
		return
	}

	events := []interface{}{buildEvent(time.Now(), level, msg)}

	mod.mutex.Lock()
	defer mod.mutex.Unlock()

	_, err = mod.sink.Send(events)
	if err != nil {
		err = fmt.Errorf("failed sending event to beats server: %w", err)
		return
	}
	return
}

// Beats event fields (ECS naming)
func buildEvent(timestamp time.Time, level protocol.Level, msg protocol.Message) (fields map[string]interface{}) {
	severityName, severityCode := syslog.FromLevel(level)

	fields = map[string]interface{}{
		// Minimum required fields
		"@timestamp": timestamp,
		"message":    msg.Line(),

		"source": map[string]interface{}{
			"ip":      msg.Origin.Addr().Unmap().String(),
			"port":    msg.Origin.Port(),
			"address": protocol.FormatOrigin(msg.Origin),
		},
		"agent": map[string]interface{}{
			// Meta fields identifying the receiving daemon itself
			"program": global.ProgBaseName,
			"version": global.ProgVersion,
			"type":    global.ProgBaseName,
			"pid":     os.Getpid(),
		},
		"log": map[string]interface{}{
			"level": level.String(),
			"syslog": map[string]interface{}{
				"priority":      severityCode,
				"priority-name": severityName,
			},
		},
	}
	return
}

// Syslog severity codes (RFC 5424) for the levels carried by received messages
package syslog

import (
	"dgramlog/pkg/protocol"
	"fmt"
	"sync"
)

var severityMu sync.RWMutex
var logSeverity = LogSeverity{
	SeverityToCode: map[string]uint16{
		"emerg":   0,
		"alert":   1,
		"crit":    2,
		"err":     3,
		"warning": 4,
		"notice":  5,
		"info":    6,
		"debug":   7,
	},
	CodeToSeverity: make(map[uint16]string),
}

// Message level to syslog severity name
var levelToSeverity = map[protocol.Level]string{
	protocol.Debug:    "debug",
	protocol.Info:     "info",
	protocol.Warning:  "warning",
	protocol.Error:    "err",
	protocol.Critical: "crit",
}

// Initialize reverse lookup map
func InitBidiMaps() {
	severityMu.Lock()
	defer severityMu.Unlock()

	for severity, code := range logSeverity.SeverityToCode {
		logSeverity.CodeToSeverity[code] = severity
	}
}

// Convert severity string to numeric code
func SeverityToCode(severity string) (code uint16, err error) {
	severityMu.RLock()
	defer severityMu.RUnlock()

	code, exists := logSeverity.SeverityToCode[severity]
	if !exists {
		err = fmt.Errorf("unknown severity name: %s", severity)
	}
	return
}

// Convert severity code to string
func CodeToSeverity(code uint16) (severity string, err error) {
	severityMu.RLock()
	defer severityMu.RUnlock()

	severity, exists := logSeverity.CodeToSeverity[code]
	if !exists {
		err = fmt.Errorf("unknown severity code: %d", code)
	}
	return
}

// Syslog severity name and code for a message level.
// UNKNOWN (never emitted by the receiver) maps to notice.
func FromLevel(level protocol.Level) (severity string, code uint16) {
	severity, exists := levelToSeverity[level]
	if !exists {
		severity = "notice"
	}
	code, err := SeverityToCode(severity)
	if err != nil {
		code = 5 // notice
	}
	return
}

package syslog

type LogSeverity struct {
	SeverityToCode map[string]uint16
	CodeToSeverity map[uint16]string
}

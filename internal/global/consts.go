package global

import "time"

const (
	// Descriptive Names for available verbosity levels
	VerbosityNone int = iota
	VerbosityStandard
	VerbosityProgress
	VerbosityData
	VerbosityFullData
	VerbosityDebug

	// Descriptive names for available severity levels (program log only)
	ErrorLog string = "Error"
	WarnLog  string = "Warn"
	InfoLog  string = "Info"
)

const (
	ProgVersion  string = "v1.0.0"
	ProgBaseName string = "dgramlog"

	// Context keys
	LoggerKey  CtxKey = "logger"  // Program event queue (variable log verbosity handling)
	LogTagsKey CtxKey = "logtags" // List of tags in order of broad->specific appended/popped at various parts of the program

	DefaultReceiverPort int = 6309
	MaxPacketSize       int = 1024 // Datagrams longer than this are truncated on read

	ShutdownTimeout time.Duration = 5 * time.Second

	// Namespacing Name Components
	NSTest   string = "Test"
	NSRecv   string = "Receiver"
	NSListen string = "Listener"
	NSSink   string = "Sink"
	NSLife   string = "Lifecycle"
)

package journald

import journal "github.com/ssgreg/journald"

// Subset of the journal client used for delivery
type entrySender interface {
	Send(msg string, p journal.Priority, fields map[string]interface{}) error
	Close() error
}

type OutModule struct {
	sink entrySender
}

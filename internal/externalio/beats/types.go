package beats

import "sync"

// Subset of the lumberjack client used for delivery
type eventSender interface {
	Send(data []interface{}) (int, error)
	Close() error
}

type OutModule struct {
	mutex sync.Mutex // lumberjack sync client is not safe for concurrent sends
	sink  eventSender
}

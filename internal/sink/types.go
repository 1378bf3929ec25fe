package sink

import (
	"context"
	"dgramlog/pkg/protocol"
	"io"
	"sync"
)

// Destination for received messages. Write is called once per level the message is emitted at.
type Sink interface {
	Write(ctx context.Context, level protocol.Level, msg protocol.Message) (err error)
	Shutdown() (err error)
}

// Line-per-message console output
type Console struct {
	mutex  sync.Mutex
	output io.Writer
}

// Fan-out to several sinks
type Multi struct {
	sinks []Sink
}

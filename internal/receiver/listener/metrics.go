package listener

import (
	"fmt"
	"sync/atomic"
)

type MetricStorage struct {
	ReceivedPackets atomic.Uint64 // datagrams read from the socket
	EmittedLines    atomic.Uint64 // successful sink writes (one per matched level)
	DroppedPackets  atomic.Uint64 // packets without a recognized level
	FallbackPackets atomic.Uint64 // packets that were not valid UTF-8
	ReadErrors      atomic.Uint64 // failed socket reads (excluding shutdown)
	SinkErrors      atomic.Uint64 // failed sink writes
}

// One line totals for shutdown logging
func (instance *Instance) Summary() (text string) {
	text = fmt.Sprintf("received=%d emitted=%d dropped=%d fallback=%d read_errors=%d sink_errors=%d",
		instance.Metrics.ReceivedPackets.Load(),
		instance.Metrics.EmittedLines.Load(),
		instance.Metrics.DroppedPackets.Load(),
		instance.Metrics.FallbackPackets.Load(),
		instance.Metrics.ReadErrors.Load(),
		instance.Metrics.SinkErrors.Load())
	return
}

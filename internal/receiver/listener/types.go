package listener

import (
	"dgramlog/internal/sink"
	"net"
)

type Instance struct {
	conn       *net.UDPConn
	sink       sink.Sink
	bufferSize int
	Metrics    MetricStorage
}

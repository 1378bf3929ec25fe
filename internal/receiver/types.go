package receiver

import (
	"context"
	"dgramlog/internal/receiver/listener"
	"dgramlog/internal/sink"
	"io"
	"net"
	"sync"
)

type Config struct {
	// Network
	ListenPort int // 0 requests an ephemeral port

	// Outputs
	ConsoleOutput  io.Writer // defaults to stdout
	BeatsEndpoint  string    // host:port, empty disables
	JournalEnabled bool
}

type Daemon struct {
	cfg    Config
	ctx    context.Context
	cancel context.CancelFunc

	conn *net.UDPConn
	wg   sync.WaitGroup

	shutdownOnce sync.Once
	stopped      chan struct{}

	Port     int // bound port (resolved when ListenPort is 0)
	Sink     *sink.Multi
	Listener *listener.Instance
}

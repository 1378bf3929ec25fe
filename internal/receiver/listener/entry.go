// Reads datagrams from the network, parses the level token and writes to the sink
package listener

import (
	"context"
	"dgramlog/internal/global"
	"dgramlog/internal/logctx"
	"dgramlog/internal/sink"
	"dgramlog/pkg/protocol"
	"errors"
	"net"
	"runtime/debug"
)

func New(conn *net.UDPConn, output sink.Sink) (new *Instance) {
	new = &Instance{
		conn:       conn,
		sink:       output,
		bufferSize: global.MaxPacketSize,
		Metrics:    MetricStorage{},
	}
	return
}

// Receive loop. Returns once ctx is cancelled and/or the socket is closed.
func (instance *Instance) Run(ctx context.Context) {
	ctx = logctx.AppendCtxTag(ctx, global.NSListen)
	buffer := make([]byte, instance.bufferSize)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		stop := instance.receive(ctx, buffer)
		if stop {
			return
		}
	}
}

// Handles one read. A single bad packet never ends the loop.
func (instance *Instance) receive(ctx context.Context, buffer []byte) (stop bool) {
	defer func() {
		// Record panics and continue listening
		if fatalError := recover(); fatalError != nil {
			stack := debug.Stack()
			logctx.LogEvent(ctx, global.VerbosityStandard, global.ErrorLog,
				"panic in listener: %v\n%s", fatalError, stack)
		}
	}()

	// Blocking until data or connection is closed
	endIndex, remoteAddr, err := instance.conn.ReadFromUDPAddrPort(buffer)
	if err != nil {
		if ctx.Err() != nil {
			// Cancellation received, graceful shutdown
			stop = true
			return
		}

		// Conn closed but ctx NOT canceled - treat as shutdown
		if errors.Is(err, net.ErrClosed) {
			stop = true
			return
		}

		instance.Metrics.ReadErrors.Add(1)
		logctx.LogEvent(ctx, global.VerbosityStandard, global.ErrorLog,
			"Failed reading data from socket: %v\n", err)
		return
	}

	instance.Dispatch(ctx, protocol.Packet{
		Data:   buffer[:endIndex],
		Origin: remoteAddr,
	})
	return
}

// Parses packet and writes the message once per matched level
func (instance *Instance) Dispatch(ctx context.Context, packet protocol.Packet) {
	instance.Metrics.ReceivedPackets.Add(1)

	msg := protocol.Parse(packet)
	origin := protocol.FormatOrigin(msg.Origin)

	if msg.Decoding != protocol.DecodeStrict {
		instance.Metrics.FallbackPackets.Add(1)
		logctx.LogEvent(ctx, global.VerbosityData, global.WarnLog,
			"Packet from %s (%d bytes) is not valid UTF-8, writing best-effort text\n", origin, len(packet.Data))
	}

	if len(msg.Levels) == 0 {
		instance.Metrics.DroppedPackets.Add(1)
		logctx.LogEvent(ctx, global.VerbosityDebug, global.InfoLog,
			"No level in token %q from %s, message dropped\n", msg.Token, origin)
		return
	}

	for _, level := range msg.Levels {
		err := instance.sink.Write(ctx, level, msg)
		if err != nil {
			instance.Metrics.SinkErrors.Add(1)
			logctx.LogEvent(ctx, global.VerbosityStandard, global.ErrorLog,
				"Failed writing %s message from %s: %v\n", level, origin, err)
			continue
		}
		instance.Metrics.EmittedLines.Add(1)
	}
}

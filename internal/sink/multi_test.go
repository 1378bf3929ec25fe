package sink

import (
	"context"
	"dgramlog/pkg/protocol"
	"errors"
	"net/netip"
	"testing"
)

type recordingSink struct {
	levels   []protocol.Level
	err      error
	shutdown bool
}

func (rec *recordingSink) Write(ctx context.Context, level protocol.Level, msg protocol.Message) (err error) {
	rec.levels = append(rec.levels, level)
	err = rec.err
	return
}

func (rec *recordingSink) Shutdown() (err error) {
	rec.shutdown = true
	return
}

func TestMulti(t *testing.T) {
	msg := protocol.Parse(protocol.Packet{
		Data:   []byte("ERROR boom"),
		Origin: netip.MustParseAddrPort("10.1.1.1:1234"),
	})

	failing := &recordingSink{err: errors.New("output unavailable")}
	healthy := &recordingSink{}
	var disabled *recordingSink

	multi := NewMulti(failing, disabled, healthy, nil)
	if multi.Len() != 2 {
		t.Fatalf("expected nil sinks to be skipped, got %d sinks", multi.Len())
	}

	err := multi.Write(context.Background(), protocol.Error, msg)
	if err == nil {
		t.Fatal("expected error from failing sink")
	}
	if !errors.Is(err, failing.err) {
		t.Fatalf("expected joined error to wrap sink error, got %v", err)
	}

	if len(healthy.levels) != 1 || healthy.levels[0] != protocol.Error {
		t.Fatalf("healthy sink did not receive message: %v", healthy.levels)
	}

	if err := multi.Shutdown(); err != nil {
		t.Fatalf("unexpected shutdown error: %v", err)
	}
	if !failing.shutdown || !healthy.shutdown {
		t.Fatal("expected all sinks to be shut down")
	}
}

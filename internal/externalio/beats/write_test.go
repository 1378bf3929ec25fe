package beats

import (
	"context"
	"dgramlog/pkg/protocol"
	"errors"
	"net/netip"
	"testing"
	"time"
)

type mockSender struct {
	sent   [][]interface{}
	err    error
	closed bool
}

func (mock *mockSender) Send(data []interface{}) (int, error) {
	if mock.err != nil {
		return 0, mock.err
	}
	mock.sent = append(mock.sent, data)
	return len(data), nil
}

func (mock *mockSender) Close() error {
	mock.closed = true
	return nil
}

func TestWrite(t *testing.T) {
	msg := protocol.Parse(protocol.Packet{
		Data:   []byte("ERROR disk failed"),
		Origin: netip.MustParseAddrPort("10.0.0.5:5000"),
	})

	t.Run("event forwarded", func(t *testing.T) {
		mock := &mockSender{}
		mod := &OutModule{sink: mock}

		err := mod.Write(context.Background(), protocol.Error, msg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(mock.sent) != 1 || len(mock.sent[0]) != 1 {
			t.Fatalf("expected exactly one event, got %v", mock.sent)
		}

		fields, ok := mock.sent[0][0].(map[string]interface{})
		if !ok {
			t.Fatalf("unexpected event type %T", mock.sent[0][0])
		}
		if fields["message"] != "[10.0.0.5:5000] disk failed" {
			t.Errorf("unexpected message field: %v", fields["message"])
		}
	})

	t.Run("send failure returned", func(t *testing.T) {
		mock := &mockSender{err: errors.New("connection reset")}
		mod := &OutModule{sink: mock}

		err := mod.Write(context.Background(), protocol.Error, msg)
		if err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("disabled module is a no-op", func(t *testing.T) {
		var mod *OutModule
		if err := mod.Write(context.Background(), protocol.Error, msg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := mod.Shutdown(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("shutdown closes client", func(t *testing.T) {
		mock := &mockSender{}
		mod := &OutModule{sink: mock}
		if err := mod.Shutdown(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !mock.closed {
			t.Fatal("expected client to be closed")
		}
	})
}

func TestBuildEvent(t *testing.T) {
	ts := time.Date(2026, 1, 31, 12, 34, 56, 0, time.UTC)
	msg := protocol.Parse(protocol.Packet{
		Data:   []byte("INFOERROR hello"),
		Origin: netip.MustParseAddrPort("[::ffff:192.168.1.9]:41000"),
	})

	fields := buildEvent(ts, protocol.Info, msg)

	if fields["@timestamp"] != ts {
		t.Errorf("unexpected timestamp: %v", fields["@timestamp"])
	}

	source := fields["source"].(map[string]interface{})
	if source["ip"] != "192.168.1.9" {
		t.Errorf("unexpected source ip: %v", source["ip"])
	}
	if source["port"] != uint16(41000) {
		t.Errorf("unexpected source port: %v", source["port"])
	}

	logFields := fields["log"].(map[string]interface{})
	if logFields["level"] != "INFO" {
		t.Errorf("unexpected level: %v", logFields["level"])
	}
	syslogFields := logFields["syslog"].(map[string]interface{})
	if syslogFields["priority"] != uint16(6) {
		t.Errorf("unexpected priority: %v", syslogFields["priority"])
	}
}

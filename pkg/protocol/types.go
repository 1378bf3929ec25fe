package protocol

import "net/netip"

// Severity of a received message
type Level uint8

const (
	Unknown Level = iota
	Debug
	Info
	Warning
	Error
	Critical
)

// How the packet text was recovered
type Decoding uint8

const (
	DecodeStrict  Decoding = iota // valid UTF-8
	DecodeLenient                 // invalid sequences replaced
	DecodeEscaped                 // nothing recoverable, escaped byte representation
)

// One received datagram
type Packet struct {
	Data   []byte
	Origin netip.AddrPort
}

// Result of parsing one packet.
// Levels holds every level to emit Text at, in emission order (empty means drop).
type Message struct {
	Levels   []Level
	Token    string
	Text     string
	Origin   netip.AddrPort
	Decoding Decoding
}

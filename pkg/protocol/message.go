// Parsing of plain-text level-tagged datagrams: "<TOKEN> <rest of message>"
package protocol

import (
	"net/netip"
	"strconv"
)

// Parses one packet into the levels to emit at and the text to emit.
// Undecodable packets are emitted once at INFO with the recovered text.
func Parse(packet Packet) (msg Message) {
	msg.Origin = packet.Origin

	text, decoding := Decode(packet.Data)
	msg.Decoding = decoding

	if decoding != DecodeStrict {
		msg.Levels = []Level{Info}
		msg.Text = text
		return
	}

	msg.Token, msg.Text = SplitToken(text)
	msg.Levels = MatchLevels(msg.Token)
	return
}

// First matched level, or Unknown when nothing matched
func (msg Message) Severity() (level Level) {
	if len(msg.Levels) == 0 {
		level = Unknown
		return
	}
	level = msg.Levels[0]
	return
}

// Emitted text including origin prefix
// Fmt: '[10.0.0.5:5000] disk at 90%'
func (msg Message) Line() (line string) {
	line = originPrefixOpen + FormatOrigin(msg.Origin) + originPrefixClose + msg.Text
	return
}

// Formats sender address as '<ip>:<port>' (IPv4-mapped addresses are unmapped, IPv6 is not bracketed)
func FormatOrigin(origin netip.AddrPort) (text string) {
	text = origin.Addr().Unmap().String() + ":" + strconv.Itoa(int(origin.Port()))
	return
}

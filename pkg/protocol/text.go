package protocol

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Recovers text from raw packet data.
// Invalid UTF-8 is decoded leniently; when no valid character survives, the escaped byte form is returned.
func Decode(data []byte) (text string, decoding Decoding) {
	if utf8.Valid(data) {
		text = string(data)
		decoding = DecodeStrict
		return
	}

	text = strings.ToValidUTF8(string(data), replacementChar)
	if strings.Trim(text, replacementChar) != "" {
		decoding = DecodeLenient
		return
	}

	text = fmt.Sprintf("%q", data)
	decoding = DecodeEscaped
	return
}

// Splits text on the first whitespace run.
// Leading whitespace is skipped; the rest is returned as-is after the separating run.
func SplitToken(text string) (token string, rest string) {
	text = strings.TrimLeftFunc(text, unicode.IsSpace)

	end := strings.IndexFunc(text, unicode.IsSpace)
	if end < 0 {
		token = text
		return
	}

	token = text[:end]
	rest = strings.TrimLeftFunc(text[end:], unicode.IsSpace)
	return
}

package protocol

const (
	// Separator for origin prefix and message text
	originPrefixOpen  string = "["
	originPrefixClose string = "] "

	// Substituted for every invalid UTF-8 sequence during lenient decoding
	replacementChar string = "\uFFFD"
)

// Level names as they must appear (case-sensitive) in the leading token
const (
	nameUnknown  string = "UNKNOWN"
	nameDebug    string = "DEBUG"
	nameInfo     string = "INFO"
	nameWarning  string = "WARNING"
	nameError    string = "ERROR"
	nameCritical string = "CRITICAL"
)

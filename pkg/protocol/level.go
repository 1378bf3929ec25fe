package protocol

import (
	"fmt"
	"strings"
)

// Levels recognized in a token, in the order they are emitted
var MatchOrder = [...]Level{Debug, Info, Warning, Error, Critical}

var levelNames = map[Level]string{
	Unknown:  nameUnknown,
	Debug:    nameDebug,
	Info:     nameInfo,
	Warning:  nameWarning,
	Error:    nameError,
	Critical: nameCritical,
}

func (level Level) String() (name string) {
	name, ok := levelNames[level]
	if !ok {
		name = nameUnknown
	}
	return
}

// Exact (case-sensitive) lookup of a level name
func ParseLevel(name string) (level Level, err error) {
	for _, candidate := range MatchOrder {
		if levelNames[candidate] == name {
			level = candidate
			return
		}
	}
	err = fmt.Errorf("unknown level name: %q", name)
	return
}

// Returns every level whose name is contained in the token.
// Levels are checked independently, so a token like "INFOERROR" matches both INFO and ERROR.
func MatchLevels(token string) (matched []Level) {
	if token == "" {
		return
	}
	for _, level := range MatchOrder {
		if strings.Contains(token, levelNames[level]) {
			matched = append(matched, level)
		}
	}
	return
}

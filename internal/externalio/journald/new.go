package journald

import (
	"fmt"
	"os"

	journal "github.com/ssgreg/journald"
)

// Native protocol socket of the local systemd journal
const journalSocketPath string = "/run/systemd/journal/socket"

// Creates new local journal output module. Returns nil nil if disabled.
func NewOutput(enabled bool) (module *OutModule, err error) {
	if !enabled {
		return
	}

	_, err = os.Stat(journalSocketPath)
	if err != nil {
		err = fmt.Errorf("systemd journal is not available: %w", err)
		return
	}

	module = &OutModule{
		sink: &journal.Journal{},
	}
	return
}

// Gracefully stops module
func (mod *OutModule) Shutdown() (err error) {
	if mod == nil {
		return
	}
	if mod.sink != nil {
		err = mod.sink.Close()
	}
	return
}

package receiver

import (
	"fmt"
	"net"
	"os"
)

// Sets defaults for any missing values. The listen port is intentionally left as given.
func (cfg *Config) setDefaults() {
	if cfg.ConsoleOutput == nil {
		cfg.ConsoleOutput = os.Stdout
	}
}

// Checks settings that would otherwise fail late in startup
func (cfg Config) validate() (err error) {
	if cfg.BeatsEndpoint != "" {
		_, _, err = net.SplitHostPort(cfg.BeatsEndpoint)
		if err != nil {
			err = fmt.Errorf("invalid beats endpoint '%s': %v", cfg.BeatsEndpoint, err)
			return
		}
	}
	return
}

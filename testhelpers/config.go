package testhelpers

import (
	"github.com/domino14/wordhand/config"
)

// DefaultConfig returns a fresh default config; tests may change it freely.
func DefaultConfig() *config.Config {
	return config.DefaultConfig()
}

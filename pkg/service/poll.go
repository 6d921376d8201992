package service

import (
	"time"

	"github.com/emsuite/ems-cli/pkg/config"
)

// pollInterval returns the configured watch interval. Zero or negative config
// values would panic time.NewTicker, so they fall back to the default.
func pollInterval() time.Duration {
	seconds := config.GetInt("api.poll_interval")
	if seconds < 1 {
		seconds = 30
	}
	return time.Duration(seconds) * time.Second
}

// Package cmdlog wraps CLI command bodies with uniform logging and metrics.
package cmdlog

import (
	"birdscope/internal/logging"
	"birdscope/internal/metrics"
)

func Run(cmd string, f func() error) error {
	metrics.IncCommandRun(cmd)
	err := f()
	if err != nil {
		metrics.IncCommandError(cmd)
		logging.Error(cmd+"_error", map[string]any{"error": err.Error()})
	} else {
		logging.Info(cmd+"_ok", nil)
	}
	return err
}

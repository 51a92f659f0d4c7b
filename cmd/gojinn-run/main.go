// Command gojinn-run executes a compiled gojinn function locally against
// in-memory host capabilities.
package main

import (
	"os"

	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := newRootCmd(logger).Execute(); err != nil {
		logger.Error("gojinn-run failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

// Package config carries the driver's diagnostic settings and logger setup.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// envPrefix scopes the driver's environment variables (NN_DRIVER_*).
const envPrefix = "nn_driver"

// Options are the driver's diagnostic settings.
type Options struct {
	// DumpDir is the directory request tensors and network graphs are
	// written into. It must exist in advance; empty disables graph export.
	DumpDir string `envconfig:"DUMP_DIR"`

	// DumpTensors enables dumping of every request input and output tensor.
	DumpTensors bool `envconfig:"DUMP_TENSORS"`

	// DumpGraph enables exporting the network graph for prepared models.
	DumpGraph bool `envconfig:"DUMP_GRAPH"`

	// VerboseLogging lowers the log level to debug.
	VerboseLogging bool `envconfig:"VERBOSE_LOGGING"`
}

// FromEnv loads Options from NN_DRIVER_* environment variables.
func FromEnv() (Options, error) {
	var opts Options
	if err := envconfig.Process(envPrefix, &opts); err != nil {
		return Options{}, fmt.Errorf("driver options: %w", err)
	}
	return opts, nil
}

// NewLogger builds the driver's logger. Verbose lowers the level to debug;
// a logger that cannot be built degrades to a no-op logger rather than
// failing driver startup.
func NewLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

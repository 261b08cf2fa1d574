package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{
		"NN_DRIVER_DUMP_DIR", "NN_DRIVER_DUMP_TENSORS",
		"NN_DRIVER_DUMP_GRAPH", "NN_DRIVER_VERBOSE_LOGGING",
	} {
		t.Setenv(key, "")
	}

	opts, err := FromEnv()
	require.NoError(t, err)

	assert.Empty(t, opts.DumpDir)
	assert.False(t, opts.DumpTensors)
	assert.False(t, opts.DumpGraph)
	assert.False(t, opts.VerboseLogging)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("NN_DRIVER_DUMP_DIR", "/data/nn-dumps")
	t.Setenv("NN_DRIVER_DUMP_TENSORS", "true")
	t.Setenv("NN_DRIVER_DUMP_GRAPH", "1")
	t.Setenv("NN_DRIVER_VERBOSE_LOGGING", "true")

	opts, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "/data/nn-dumps", opts.DumpDir)
	assert.True(t, opts.DumpTensors)
	assert.True(t, opts.DumpGraph)
	assert.True(t, opts.VerboseLogging)
}

func TestFromEnvInvalidBool(t *testing.T) {
	t.Setenv("NN_DRIVER_DUMP_TENSORS", "certainly")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	assert.NotNil(t, NewLogger(false))

	verbose := NewLogger(true)
	require.NotNil(t, verbose)
	assert.True(t, verbose.Core().Enabled(zapcore.DebugLevel))
}

package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerDefaults(t *testing.T) {
	log, err := NewLogger(nil)
	require.NoError(t, err)
	require.NotNil(t, log)

	// Events must be constructible without panicking on a default logger.
	log.Info().Str("k", "v").Msg("default config")
}

func TestNewLoggerDebugOverridesLevel(t *testing.T) {
	log, err := NewLogger(&Config{Level: "error", Debug: true})
	require.NoError(t, err)

	assert.True(t, log.Debug().Enabled())
}

func TestNewLoggerInvalidLevel(t *testing.T) {
	_, err := NewLogger(&Config{Level: "shouting"})
	assert.Error(t, err)
}

func TestNewTestLoggerDiscards(t *testing.T) {
	log := NewTestLogger()

	assert.False(t, log.Info().Enabled())
	log.Error().Msg("discarded")
}

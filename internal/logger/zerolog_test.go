package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestZerologAdapterFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.DebugLevel)

	log.Info("ConfigStore", "config saved", map[string]interface{}{
		"items": 3,
	})

	out := buf.String()
	assert.Contains(t, out, `"component":"ConfigStore"`)
	assert.Contains(t, out, `"items":3`)
	assert.Contains(t, out, "config saved")
}

func TestZerologAdapterLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.WarnLevel)

	log.Debug("IconExtractor", "not emitted", nil)
	log.Info("IconExtractor", "not emitted either", nil)
	assert.Empty(t, buf.String())

	log.Warning("IconExtractor", "emitted", nil)
	assert.Contains(t, buf.String(), "emitted")
}

func TestNewConsoleLogger(t *testing.T) {
	assert.NotNil(t, NewConsoleLogger(zerolog.InfoLevel))
}

func TestLevelFromEnv(t *testing.T) {
	t.Setenv("DEBUG", "")

	t.Setenv("LOG_LEVEL", "debug")
	assert.Equal(t, zerolog.DebugLevel, LevelFromEnv())

	t.Setenv("LOG_LEVEL", "warn")
	assert.Equal(t, zerolog.WarnLevel, LevelFromEnv())

	t.Setenv("LOG_LEVEL", "error")
	assert.Equal(t, zerolog.ErrorLevel, LevelFromEnv())

	t.Setenv("LOG_LEVEL", "")
	assert.Equal(t, zerolog.InfoLevel, LevelFromEnv())

	t.Setenv("DEBUG", "1")
	assert.Equal(t, zerolog.DebugLevel, LevelFromEnv())
}

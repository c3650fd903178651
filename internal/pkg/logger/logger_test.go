package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure_JSONOutput(t *testing.T) {
	t.Cleanup(func() { Configure(Config{Level: InfoLevel, Pretty: true, Output: os.Stderr}) })

	var buf bytes.Buffer
	Configure(Config{Level: DebugLevel, Output: &buf})

	lgr := Get().With().Str("exercise", "hospital").Logger()
	lgr.Debug().Int("doctors", 5).Msg("loaded")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "hospital", entry["exercise"])
	assert.Equal(t, float64(5), entry["doctors"])
	assert.Equal(t, "loaded", entry["message"])
}

func TestConfigure_LevelFilters(t *testing.T) {
	t.Cleanup(func() { Configure(Config{Level: InfoLevel, Pretty: true, Output: os.Stderr}) })

	var buf bytes.Buffer
	Configure(Config{Level: WarnLevel, Output: &buf})

	Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestConfigure_UnknownLevelFallsBackToInfo(t *testing.T) {
	t.Cleanup(func() { Configure(Config{Level: InfoLevel, Pretty: true, Output: os.Stderr}) })

	Configure(Config{Level: "verbose", Output: &bytes.Buffer{}})
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

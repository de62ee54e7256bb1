// SPDX-License-Identifier: MIT
package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/katalvlaran/spectral/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		" WARN ":  zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, logging.ParseLevel(in), "%q", in)
	}
}

func TestNew_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logging.New("info", logging.FormatJSON, &buf)
	log.Debug().Msg("hidden")
	log.Info().Int("samples", 3).Msg("done")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "done", rec["message"])
	assert.Equal(t, "spectral", rec["service"])
	assert.EqualValues(t, 3, rec["samples"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNew_Console(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logging.New("debug", logging.FormatConsole, &buf)
	log.Debug().Str("family", "K_4").Msg("built")
	assert.Contains(t, buf.String(), "built")
	assert.Contains(t, buf.String(), "family=K_4")
}

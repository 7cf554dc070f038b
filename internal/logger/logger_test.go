package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestConfigureLevels(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	Configure(&buf, false, false)
	log.Debug().Int("n", 1).Msg("hidden")
	log.Warn().Str("game", "abc").Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "game=abc")

	buf.Reset()
	Configure(&buf, true, false)
	log.Debug().Int("n", 2).Msg("visible")

	assert.Contains(t, buf.String(), "visible")
}

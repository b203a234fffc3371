package loggers

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewWithWriter(&buf, "info", FormatJSON)
	require.NoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Info().Str(FieldComponent, "extractor").Msg("visible")

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "visible", line["message"])
	assert.Equal(t, "extractor", line[FieldComponent])
	assert.Equal(t, "info", line["level"])
}

func TestNewWithWriter_Console(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewWithWriter(&buf, "warn", FormatConsole)
	require.NoError(t, err)

	logger.Warn().Msg("directory unavailable")
	assert.Contains(t, buf.String(), "directory unavailable")
	assert.Contains(t, buf.String(), "WRN")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("loud", FormatJSON)
	assert.Error(t, err)
}

func TestCtx_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter(&buf, "debug", FormatJSON)
	require.NoError(t, err)

	ctx := logger.With().Str(FieldRunID, "run-1").Logger().WithContext(context.Background())
	Ctx(ctx).Debug().Msg("from context")

	assert.Contains(t, buf.String(), `"run_id":"run-1"`)
}

package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/travel-api/internal/config"
)

func TestNewLoggerServiceWithoutLicense(t *testing.T) {
	t.Parallel()

	service, err := NewLoggerService(config.DefaultObservabilityConfig())
	require.NoError(t, err)
	require.NotNil(t, service)
	assert.Nil(t, service.GetApplication())

	// Shutdown must be safe without an application.
	service.Shutdown()
}

func TestNilLoggerService(t *testing.T) {
	t.Parallel()

	var service *LoggerService
	assert.Nil(t, service.GetApplication())
	service.Shutdown()
}

func TestNewLoggerWithWriter(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultObservabilityConfig()
	cfg.Environment = "test"
	cfg.Logging.Level = "warn"

	var buf bytes.Buffer
	log := NewLoggerWithWriter(cfg, nil, &buf)

	log.Info().Msg("dropped")
	log.Warn().Str("destination", "Eiffel Tower").Msg("kept")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	entry := map[string]any{}
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "Eiffel Tower", entry["destination"])
	assert.Equal(t, config.ServiceName, entry["service"])
	assert.Equal(t, "test", entry["environment"])
}

func TestGetPgxTraceLogLevel(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		level    zerolog.Level
		expected tracelog.LogLevel
	}{
		"trace":    {level: zerolog.TraceLevel, expected: tracelog.LogLevelTrace},
		"debug":    {level: zerolog.DebugLevel, expected: tracelog.LogLevelDebug},
		"info":     {level: zerolog.InfoLevel, expected: tracelog.LogLevelInfo},
		"warn":     {level: zerolog.WarnLevel, expected: tracelog.LogLevelWarn},
		"error":    {level: zerolog.ErrorLevel, expected: tracelog.LogLevelError},
		"disabled": {level: zerolog.Disabled, expected: tracelog.LogLevelNone},
	}

	for name, test := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.expected, tracelog.LogLevel(GetPgxTraceLogLevel(test.level)))
		})
	}
}

package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rgehrsitz/budgetcalc/internal/calculation"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		level    string
		expected zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"WARNING", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"unknown", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tc := range testCases {
		t.Run(tc.level, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseLevel(tc.level))
		})
	}
}

func TestNew_WritesJSONToConfiguredOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "info", Output: &buf})

	logger.Info().Str("key", "value").Msg("test message")

	var event map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event), "Output should be one JSON event")
	assert.Equal(t, "test message", event["message"])
	assert.Equal(t, "value", event["key"])
	assert.Equal(t, "budgetcalc", event["app"])
	assert.Contains(t, event, "time")
}

func TestNew_LevelFiltersLower(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "error", Output: &buf})

	logger.Info().Msg("should not appear")
	assert.NotContains(t, buf.String(), "should not appear")

	logger.Error().Msg("should appear")
	assert.Contains(t, buf.String(), "should appear")
}

func TestNew_PrettyOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "info", Pretty: true, Output: &buf})

	logger.Info().Msg("pretty message")

	output := buf.String()
	assert.Contains(t, output, "pretty message")
	assert.False(t, strings.HasPrefix(output, "{"), "Console writer is not JSON")
}

func TestEngineLogger(t *testing.T) {
	var buf bytes.Buffer
	var l calculation.Logger = NewEngineLogger(New(Config{Level: "debug", Output: &buf}))

	l.Debugf("payment %s", "2022.62")
	l.Infof("score %d", 780)
	l.Warnf("degenerate %s", "loan")
	l.Errorf("failed %v", "x")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)

	levels := []string{"debug", "info", "warn", "error"}
	messages := []string{"payment 2022.62", "score 780", "degenerate loan", "failed x"}
	for i, line := range lines {
		var event map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &event))
		assert.Equal(t, levels[i], event["level"])
		assert.Equal(t, messages[i], event["message"])
		assert.Equal(t, "engine", event["component"])
	}
}

func TestEngineLogger_DrivesCalculationEngine(t *testing.T) {
	var buf bytes.Buffer
	engine := calculation.NewCalculationEngine()
	engine.SetLogger(NewEngineLogger(New(Config{Level: "warn", Output: &buf})))

	engine.Logger.Infof("hidden")
	engine.Logger.Warnf("visible")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "visible")
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")

	cfg, err := load()
	require.NoError(t, err)

	assert.Equal(t, int64(3), cfg.DailyCakeLimit)
	assert.Equal(t, 10, cfg.LeaderboardPageSize)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NotEmpty(t, cfg.Magic8BallResponses)
}

func TestLoadMagic8BallResponsesOverride(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("MAGIC_8BALL_RESPONSES", "Yes.|No.| Ask again later. ||")

	cfg, err := load()
	require.NoError(t, err)

	assert.Equal(t, []string{"Yes.", "No.", "Ask again later."}, cfg.Magic8BallResponses)
}

func TestParseResponseList(t *testing.T) {
	assert.Nil(t, parseResponseList(""))
	assert.Nil(t, parseResponseList(" | |"))
	assert.Equal(t, []string{"a", "b"}, parseResponseList("a|b"))
}

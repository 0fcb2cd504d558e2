package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadViewerDefaults(t *testing.T) {
	var cfg Viewer
	found, err := Load(&cfg)
	require.NoError(t, err)
	assert.False(t, found)

	assert.Equal(t, "http://localhost:8080", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Empty(t, cfg.TranslateAPIKey)
	assert.False(t, cfg.Headless)
}

func TestLoadViewerFromEnv(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://backend:9000")
	t.Setenv("VIEWER_LANG", "ko-KR")
	t.Setenv("HTTP_TIMEOUT", "2s")
	t.Setenv("VIEWER_HEADLESS", "true")

	var cfg Viewer
	_, err := Load(&cfg)
	require.NoError(t, err)

	assert.Equal(t, "http://backend:9000", cfg.APIBaseURL)
	assert.Equal(t, "ko-KR", cfg.Lang)
	assert.Equal(t, 2*time.Second, cfg.HTTPTimeout)
	assert.True(t, cfg.Headless)
}

func TestLoadViewerInvalidDuration(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "soon")

	var cfg Viewer
	_, err := Load(&cfg)
	assert.Error(t, err)
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"TELEGRAM_TOKEN", "LOG_LEVEL", "MAX_IMAGE_SIDE", "MAX_UPLOAD_MB", "DETECT_TIMEOUT", "CLAMP_CONFIDENCE"} {
		t.Setenv(key, "")
	}
	t.Setenv("HTTP_ADDR", ":9000")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9000", cfg.HTTPAddr)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, 1024, cfg.MaxImageSide)
	require.Equal(t, int64(10<<20), cfg.MaxUploadBytes())
	require.Equal(t, 15*time.Second, cfg.DetectTimeout)
	require.False(t, cfg.ClampConfidence)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":8081")
	t.Setenv("MAX_IMAGE_SIDE", "512")
	t.Setenv("DETECT_TIMEOUT", "3s")
	t.Setenv("CLAMP_CONFIDENCE", "true")
	t.Setenv("RESULT_HISTORY", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 512, cfg.MaxImageSide)
	require.Equal(t, 3*time.Second, cfg.DetectTimeout)
	require.True(t, cfg.ClampConfidence)
	require.Equal(t, 100, cfg.ResultHistory)
}

func TestLoad_EmptyHTTPAddrDisablesHTTP(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("TELEGRAM_TOKEN", "token")

	cfg, err := Load()
	require.NoError(t, err)
	require.Empty(t, cfg.HTTPAddr)
}

func TestValidate_NeedsTransport(t *testing.T) {
	cfg := &Config{MaxUploadMB: 1}
	require.Error(t, cfg.Validate())

	cfg.TelegramToken = "token"
	require.NoError(t, cfg.Validate())
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	keys := []string{
		"LOG_LEVEL", "LOG_PRETTY", "LOG_FILE", "LOG_COMPRESS",
		"SEND_LOGS_TO_AXIOM", "AXIOM_API_KEY", "AXIOM_DATASET", "AXIOM_FLUSH_INTERVAL",
		"METRICS_PUSH_URL", "METRICS_JOB",
		"FONT_SCAN_MAX_DEPTH",
		"CLEANUP_DIR", "CLEANUP_MAX_AGE", "CLEANUP_UPLOADS_DIR",
		"VERIFY_UPLOADS_BASE",
		"INDESIGN_SERVER_DIR", "INDESIGN_SERVER_BIN", "INDESIGN_SERVER_PORT",
		"ENVIRONMENT",
	}
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := FromEnv()

	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, "logs/idmltools.log", cfg.Logging.File)
	require.True(t, cfg.Logging.Compress)
	require.False(t, cfg.Axiom.Send)
	require.Equal(t, "dev_idmltools", cfg.Axiom.Dataset)
	require.Equal(t, 10*time.Second, cfg.Axiom.FlushInterval)
	require.Equal(t, "idmltools", cfg.Metrics.Job)
	require.Empty(t, cfg.Metrics.PushURL)
	require.Equal(t, 3, cfg.Fonts.ScanMaxDepth)
	require.Equal(t, ".", cfg.Cleanup.Dir)
	require.Zero(t, cfg.Cleanup.MaxAge)
	require.Equal(t, "uploads", cfg.Cleanup.UploadsDirName)
	require.Equal(t, "uploads", cfg.Verify.UploadsBase)
	require.Equal(t, "InDesignServer.com", cfg.Server.Binary)
	require.Equal(t, 1235, cfg.Server.Port)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("FONT_SCAN_MAX_DEPTH", "5")
	t.Setenv("CLEANUP_MAX_AGE", "24h")
	t.Setenv("INDESIGN_SERVER_PORT", "2001")
	t.Setenv("INDESIGN_SERVER_DIR", "/opt/indesign")
	t.Setenv("AXIOM_DATASET", "prod")
	t.Setenv("SEND_LOGS_TO_AXIOM", "1")

	cfg := FromEnv()

	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, 5, cfg.Fonts.ScanMaxDepth)
	require.Equal(t, 24*time.Hour, cfg.Cleanup.MaxAge)
	require.Equal(t, 2001, cfg.Server.Port)
	require.Equal(t, "/opt/indesign", cfg.Server.Dir)
	require.Equal(t, "prod_idmltools", cfg.Axiom.Dataset)
	require.True(t, cfg.Axiom.Send)
}

func TestFromEnv_MalformedValues_FallBackToDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("FONT_SCAN_MAX_DEPTH", "not-a-number")
	t.Setenv("INDESIGN_SERVER_PORT", "9.5")
	t.Setenv("CLEANUP_MAX_AGE", "yesterday")

	cfg := FromEnv()

	require.Equal(t, 3, cfg.Fonts.ScanMaxDepth)
	require.Equal(t, 1235, cfg.Server.Port)
	require.Zero(t, cfg.Cleanup.MaxAge)
}

func TestFromEnv_PrettyDefault_TracksEnvironment(t *testing.T) {
	clearEnv(t)
	require.False(t, FromEnv().Logging.Pretty)

	t.Setenv("ENVIRONMENT", "dev")
	require.True(t, FromEnv().Logging.Pretty)
}

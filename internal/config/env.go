package config

import (
    "os"
    "strconv"
    "strings"
    "time"

    "github.com/joho/godotenv"
)

// LoggingConfig holds logging-related configuration.
type LoggingConfig struct {
    Level        string
    Pretty       bool
    File         string
    MaxSizeMB    int
    MaxBackups   int
    MaxAgeDays   int
    Compress     bool
}

// AxiomConfig holds Axiom logging configuration.
type AxiomConfig struct {
    Send          bool
    APIKey        string
    OrgID         string
    Dataset       string
    FlushInterval time.Duration
}

// MetricsConfig defines Pushgateway delivery. One-shot tools expose no
// scrape endpoint, so metrics are pushed at the end of each run when a
// gateway URL is configured.
type MetricsConfig struct {
    PushURL string
    Job     string
}

// FontsConfig defines font discovery behavior.
type FontsConfig struct {
    ScanMaxDepth int
}

// CleanupConfig defines temp-artifact cleanup behavior.
type CleanupConfig struct {
    Dir            string
    MaxAge         time.Duration // zero deletes regardless of age
    UploadsDirName string
}

// VerifyConfig defines the font verification target.
type VerifyConfig struct {
    UploadsBase string
}

// ServerConfig defines InDesign Server launch parameters.
type ServerConfig struct {
    Dir    string
    Binary string
    Port   int
}

// Config is the top-level configuration shared by the tools.
type Config struct {
    Logging LoggingConfig
    Axiom   AxiomConfig
    Metrics MetricsConfig
    Fonts   FontsConfig
    Cleanup CleanupConfig
    Verify  VerifyConfig
    Server  ServerConfig
}

// Load reads an optional .env file, then builds the configuration from the
// environment. A missing .env is not an error.
func Load() Config {
    _ = godotenv.Load()
    return FromEnv()
}

// FromEnv loads configuration from environment with sensible defaults.
func FromEnv() Config {
    cfg := Config{}

    // Logging defaults
    cfg.Logging = LoggingConfig{
        Level:      getEnv("LOG_LEVEL", "info"),
        Pretty:     parseBool(getEnv("LOG_PRETTY", devDefaultPretty())),
        File:       getEnv("LOG_FILE", "logs/idmltools.log"),
        MaxSizeMB:  parseInt(getEnv("LOG_MAX_SIZE_MB", "100"), 100),
        MaxBackups: parseInt(getEnv("LOG_MAX_BACKUPS", "10"), 10),
        MaxAgeDays: parseInt(getEnv("LOG_MAX_AGE_DAYS", "30"), 30),
        Compress:   parseBool(getEnv("LOG_COMPRESS", "true")),
    }

    // Axiom defaults
    baseDataset := getEnv("AXIOM_DATASET", "dev")
    cfg.Axiom = AxiomConfig{
        Send:          parseBool(getEnv("SEND_LOGS_TO_AXIOM", "0")),
        APIKey:        getEnv("AXIOM_API_KEY", ""),
        OrgID:         getEnv("AXIOM_ORG_ID", ""),
        Dataset:       baseDataset + "_idmltools",
        FlushInterval: parseDuration(getEnv("AXIOM_FLUSH_INTERVAL", "10s"), 10*time.Second),
    }

    // Metrics defaults
    cfg.Metrics = MetricsConfig{
        PushURL: getEnv("METRICS_PUSH_URL", ""),
        Job:     getEnv("METRICS_JOB", "idmltools"),
    }

    // Font discovery defaults
    cfg.Fonts = FontsConfig{
        ScanMaxDepth: parseInt(getEnv("FONT_SCAN_MAX_DEPTH", "3"), 3),
    }

    // Cleanup defaults
    cfg.Cleanup = CleanupConfig{
        Dir:            getEnv("CLEANUP_DIR", "."),
        MaxAge:         parseDuration(getEnv("CLEANUP_MAX_AGE", ""), 0),
        UploadsDirName: getEnv("CLEANUP_UPLOADS_DIR", "uploads"),
    }

    // Verify defaults
    cfg.Verify = VerifyConfig{
        UploadsBase: getEnv("VERIFY_UPLOADS_BASE", "uploads"),
    }

    // InDesign Server defaults
    cfg.Server = ServerConfig{
        Dir:    getEnv("INDESIGN_SERVER_DIR", `C:\Program Files\Adobe\Adobe InDesign Server 2025`),
        Binary: getEnv("INDESIGN_SERVER_BIN", "InDesignServer.com"),
        Port:   parseInt(getEnv("INDESIGN_SERVER_PORT", "1235"), 1235),
    }

    return cfg
}

// Helpers
func getEnv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}

func parseInt(s string, def int) int {
    if s == "" { return def }
    if n, err := strconv.Atoi(s); err == nil { return n }
    return def
}

func parseBool(s string) bool {
    v := strings.ToLower(strings.TrimSpace(s))
    return v == "1" || v == "true" || v == "yes" || v == "on"
}

func parseDuration(s string, def time.Duration) time.Duration {
    if s == "" { return def }
    if d, err := time.ParseDuration(s); err == nil { return d }
    return def
}

func devDefaultPretty() string {
    env := strings.ToLower(os.Getenv("ENVIRONMENT"))
    if env == "dev" || env == "development" || env == "local" { return "true" }
    return "false"
}

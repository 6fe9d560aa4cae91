package main

import (
    "flag"
    "fmt"
    "os"
    "time"

    "github.com/google/uuid"

    "github.com/local/idmltools/internal/cleanup"
    cfgpkg "github.com/local/idmltools/internal/config"
    logpkg "github.com/local/idmltools/internal/logger"
    "github.com/local/idmltools/internal/metrics"
)

// cleanup removes the render artifacts one pipeline pass leaves behind:
// idml-*.json and page-*.json files plus the whole uploads folder. The
// target directory comes from the positional argument or CLEANUP_DIR.
func main() {
    os.Exit(run())
}

func run() int {
    cfg := cfgpkg.Load()

    // Init logging
    lg, err := logpkg.New(logpkg.Options{
        Service:      "cleanup",
        Level:        cfg.Logging.Level,
        Pretty:       cfg.Logging.Pretty,
        File:         cfg.Logging.File,
        MaxSizeMB:    cfg.Logging.MaxSizeMB,
        MaxBackups:   cfg.Logging.MaxBackups,
        MaxAgeDays:   cfg.Logging.MaxAgeDays,
        Compress:     cfg.Logging.Compress,
        SendToAxiom:  cfg.Axiom.Send && cfg.Axiom.APIKey != "",
        AxiomAPIKey:  cfg.Axiom.APIKey,
        AxiomOrgID:   cfg.Axiom.OrgID,
        AxiomDataset: cfg.Axiom.Dataset,
        AxiomFlush:   cfg.Axiom.FlushInterval,
    })
    if err != nil {
        fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
        return 1
    }
    defer lg.Close()

    log := lg.With().Str("run_id", uuid.NewString()).Logger()

    metrics.Init()

    flag.Parse()
    dir := flag.Arg(0)
    if dir == "" {
        dir = cfg.Cleanup.Dir
    }

    if st, err := os.Stat(dir); err != nil || !st.IsDir() {
        log.Error().Str("dir", dir).Msg("cleanup target is not a directory")
        metrics.ObserveRun("cleanup", "failure", 0)
        _ = metrics.Push(cfg.Metrics.PushURL, cfg.Metrics.Job)
        return 1
    }

    start := time.Now()
    cleaner := cleanup.New(log, cfg.Cleanup.MaxAge, cfg.Cleanup.UploadsDirName)
    rep := cleaner.Run(dir)

    metrics.ObserveRun("cleanup", "success", time.Since(start))
    if err := metrics.Push(cfg.Metrics.PushURL, cfg.Metrics.Job); err != nil {
        log.Warn().Err(err).Msg("metrics push failed")
    }

    log.Info().
        Int("deleted", len(rep.FilesDeleted)).
        Int("failed", rep.FilesFailed).
        Int("skipped", rep.FilesSkipped).
        Bool("uploads_removed", rep.UploadsRemoved).
        Msg("cleanup complete")
    return 0
}

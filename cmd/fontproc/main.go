package main

import (
    "flag"
    "fmt"
    "os"
    "time"

    "github.com/google/uuid"

    cfgpkg "github.com/local/idmltools/internal/config"
    "github.com/local/idmltools/internal/fonts"
    logpkg "github.com/local/idmltools/internal/logger"
    "github.com/local/idmltools/internal/metrics"
)

// fontproc scans an upload directory for font files and consolidates them
// into a Fonts folder at the upload root. Exit code 0 means the run
// completed, including runs that found nothing; 1 means the directory was
// missing or processing failed.
func main() {
    os.Exit(run())
}

func run() int {
    cfg := cfgpkg.Load()

    // Init logging
    lg, err := logpkg.New(logpkg.Options{
        Service:      "fontproc",
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
    dir := resolveTargetDir(flag.Arg(0))

    start := time.Now()
    processor := fonts.NewProcessor(log, cfg.Fonts.ScanMaxDepth)
    result := processor.Process(dir)

    outcome := "success"
    if !result.Success {
        outcome = "failure"
    }
    metrics.ObserveRun("fontproc", outcome, time.Since(start))
    if err := metrics.Push(cfg.Metrics.PushURL, cfg.Metrics.Job); err != nil {
        log.Warn().Err(err).Msg("metrics push failed")
    }

    if result.Success {
        log.Info().Int("found", result.FontsFound).Int("copied", result.FontsCopied).Msg("font processing complete")
        return 0
    }
    log.Error().Str("error", result.Error).Msg("font processing failed")
    return 1
}

// resolveTargetDir applies the historical argument contract: an explicit
// positional argument wins; with none, the first raw argument is used when
// it names an existing directory; otherwise the current working directory.
func resolveTargetDir(positional string) string {
    if positional != "" {
        return positional
    }
    if len(os.Args) > 1 {
        if st, err := os.Stat(os.Args[1]); err == nil && st.IsDir() {
            return os.Args[1]
        }
    }
    wd, err := os.Getwd()
    if err != nil {
        return "."
    }
    return wd
}

package main

import (
    "flag"
    "fmt"
    "os"
    "time"

    "github.com/google/uuid"

    cfgpkg "github.com/local/idmltools/internal/config"
    logpkg "github.com/local/idmltools/internal/logger"
    "github.com/local/idmltools/internal/metrics"
    "github.com/local/idmltools/internal/verify"
)

// verifyfonts walks a base uploads directory and reports, per upload,
// whether font consolidation produced a Fonts folder and whether its
// contents are really fonts. The report goes to stdout for the operator.
func main() {
    os.Exit(run())
}

func run() int {
    cfg := cfgpkg.Load()

    // Init logging
    lg, err := logpkg.New(logpkg.Options{
        Service:      "verifyfonts",
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
    base := flag.Arg(0)
    if base == "" {
        base = cfg.Verify.UploadsBase
    }

    start := time.Now()
    verifier := verify.New(log)
    summary, err := verifier.CheckUploads(base)
    if err != nil {
        log.Error().Err(err).Str("base", base).Msg("verification failed")
        metrics.ObserveRun("verifyfonts", "failure", time.Since(start))
        _ = metrics.Push(cfg.Metrics.PushURL, cfg.Metrics.Job)
        return 1
    }

    summary.Print(os.Stdout)

    metrics.ObserveRun("verifyfonts", "success", time.Since(start))
    if err := metrics.Push(cfg.Metrics.PushURL, cfg.Metrics.Job); err != nil {
        log.Warn().Err(err).Msg("metrics push failed")
    }
    return 0
}

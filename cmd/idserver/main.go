package main

import (
    "context"
    "errors"
    "flag"
    "fmt"
    "os"
    "os/exec"
    "os/signal"
    "syscall"

    "github.com/google/uuid"

    cfgpkg "github.com/local/idmltools/internal/config"
    "github.com/local/idmltools/internal/indesign"
    logpkg "github.com/local/idmltools/internal/logger"
)

// idserver launches InDesign Server in console mode and supervises it in
// the foreground. SIGINT or SIGTERM stops the server; otherwise the exit
// code of the server is passed through.
func main() {
    os.Exit(run())
}

func run() int {
    cfg := cfgpkg.Load()

    // Init logging
    lg, err := logpkg.New(logpkg.Options{
        Service:      "idserver",
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

    flag.Parse()
    dir := flag.Arg(0)
    if dir == "" {
        dir = cfg.Server.Dir
    }

    launcher := indesign.New(indesign.Options{
        Log:    log,
        Dir:    dir,
        Binary: cfg.Server.Binary,
        Port:   cfg.Server.Port,
    })

    if err := launcher.CheckInstallation(); err != nil {
        log.Error().Err(err).Msg("InDesign Server not available")
        return 1
    }

    if err := launcher.Start(); err != nil {
        log.Error().Err(err).Msg("failed to start InDesign Server")
        return 1
    }

    // Graceful shutdown
    ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
    defer stop()

    err = launcher.Wait(ctx)
    switch {
    case err == nil:
        return 0
    case errors.Is(err, context.Canceled):
        return 0
    default:
        var exitErr *exec.ExitError
        if errors.As(err, &exitErr) {
            return exitErr.ExitCode()
        }
        return 1
    }
}

package cleanup

import (
    "os"
    "path/filepath"
    "time"

    "github.com/rs/zerolog"

    "github.com/local/idmltools/internal/metrics"
)

// TempPatterns are the render artifacts the pipeline leaves beside the app
// root: one JSON per processed IDML plus per-page records.
var TempPatterns = []string{"idml-*.json", "page-*.json"}

// Cleaner removes stale pipeline artifacts from a directory.
type Cleaner struct {
    log        zerolog.Logger
    maxAge     time.Duration
    uploadsDir string
}

// Report summarizes one cleanup run.
type Report struct {
    FilesDeleted   []string
    FilesFailed    int
    FilesSkipped   int // younger than the age threshold
    UploadsRemoved bool
}

// New builds a cleaner. A zero maxAge deletes matching files regardless of
// age; uploadsDirName defaults to "uploads".
func New(log zerolog.Logger, maxAge time.Duration, uploadsDirName string) *Cleaner {
    if uploadsDirName == "" {
        uploadsDirName = "uploads"
    }
    return &Cleaner{log: log, maxAge: maxAge, uploadsDir: uploadsDirName}
}

// Run deletes temp artifacts matching TempPatterns directly under dir, then
// removes the uploads folder tree if present. Every failure is logged and
// counted but never stops the remaining work.
func (c *Cleaner) Run(dir string) Report {
    var rep Report
    now := time.Now()

    for _, pattern := range TempPatterns {
        matches, err := filepath.Glob(filepath.Join(dir, pattern))
        if err != nil {
            // only a malformed pattern errors here
            c.log.Warn().Err(err).Str("pattern", pattern).Msg("bad cleanup pattern")
            continue
        }
        for _, path := range matches {
            if c.maxAge > 0 {
                info, err := os.Stat(path)
                if err != nil {
                    c.log.Warn().Err(err).Str("file", path).Msg("cannot stat file, skipping")
                    rep.FilesFailed++
                    metrics.IncCleanupFailure()
                    continue
                }
                if now.Sub(info.ModTime()) < c.maxAge {
                    rep.FilesSkipped++
                    continue
                }
            }
            if err := os.Remove(path); err != nil {
                c.log.Error().Err(err).Str("file", path).Msg("error deleting file")
                rep.FilesFailed++
                metrics.IncCleanupFailure()
                continue
            }
            c.log.Info().Str("file", path).Msg("deleted file")
            rep.FilesDeleted = append(rep.FilesDeleted, path)
            metrics.IncCleanupDeleted()
        }
    }

    uploads := filepath.Join(dir, c.uploadsDir)
    if st, err := os.Stat(uploads); err == nil && st.IsDir() {
        if err := os.RemoveAll(uploads); err != nil {
            c.log.Error().Err(err).Str("dir", uploads).Msg("error deleting uploads folder")
            metrics.IncCleanupFailure()
        } else {
            c.log.Info().Str("dir", uploads).Msg("deleted uploads folder")
            rep.UploadsRemoved = true
        }
    } else {
        c.log.Info().Msg("no uploads folder found")
    }

    return rep
}

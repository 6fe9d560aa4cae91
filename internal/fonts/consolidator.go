package fonts

import (
    "fmt"
    "io"
    "os"
    "path/filepath"

    "github.com/rs/zerolog"

    "github.com/local/idmltools/internal/metrics"
)

// CopyStatus classifies the outcome of one copy attempt.
type CopyStatus string

const (
    CopyCopied  CopyStatus = "copied"
    CopySkipped CopyStatus = "skipped"
    CopyFailed  CopyStatus = "failed"
)

// CopyOutcome is the per-file result the consolidator accumulates. A failed
// outcome never aborts the remaining copies.
type CopyOutcome struct {
    Source string
    Status CopyStatus
    Record CopyRecord // set when Status == CopyCopied
    Err    error      // set when Status == CopyFailed
}

// Consolidator copies discovered fonts into a single flattened directory.
type Consolidator struct {
    log zerolog.Logger
}

// NewConsolidator builds a consolidator logging through the given logger.
func NewConsolidator(log zerolog.Logger) *Consolidator {
    return &Consolidator{log: log}
}

// Consolidate copies each asset into destDir under its base name. A
// destination name that already exists is skipped, never overwritten or
// renamed, which makes repeated runs over the same upload idempotent.
// baseDir is the scanned directory and is used for log context only; the
// destination is always flattened to the file name.
func (c *Consolidator) Consolidate(assets []FontAsset, destDir, baseDir string) []CopyOutcome {
    outcomes := make([]CopyOutcome, 0, len(assets))
    for _, a := range assets {
        out := c.copyOne(a, destDir)
        outcomes = append(outcomes, out)

        switch out.Status {
        case CopyCopied:
            metrics.IncFontCopied()
            c.log.Info().Str("file", out.Record.OriginalName).Str("from", relTo(baseDir, a.Path)).Msg("copied")
        case CopySkipped:
            metrics.IncFontSkipped()
            c.log.Info().Str("file", filepath.Base(a.Path)).Msg("skipped (already exists)")
        case CopyFailed:
            metrics.IncFontCopyFailure()
            c.log.Error().Err(out.Err).Str("file", a.Path).Msg("failed to copy")
        }
    }
    return outcomes
}

func (c *Consolidator) copyOne(a FontAsset, destDir string) CopyOutcome {
    name := filepath.Base(a.Path)
    dest := filepath.Join(destDir, name)

    if _, err := os.Stat(dest); err == nil {
        return CopyOutcome{Source: a.Path, Status: CopySkipped}
    }

    if err := copyFile(a.Path, dest); err != nil {
        return CopyOutcome{Source: a.Path, Status: CopyFailed, Err: err}
    }

    return CopyOutcome{
        Source: a.Path,
        Status: CopyCopied,
        Record: CopyRecord{Source: a.Path, Destination: dest, OriginalName: name},
    }
}

// CopiedRecords filters outcomes down to the records of files actually
// copied, in scan order. The result is non-nil even when empty so it
// marshals as an empty JSON array.
func CopiedRecords(outcomes []CopyOutcome) []CopyRecord {
    records := make([]CopyRecord, 0, len(outcomes))
    for _, o := range outcomes {
        if o.Status == CopyCopied {
            records = append(records, o.Record)
        }
    }
    return records
}

// copyFile copies file content; mode and modification time carry over
// best-effort.
func copyFile(src, dst string) error {
    in, err := os.Open(src)
    if err != nil {
        return fmt.Errorf("open source: %w", err)
    }
    defer in.Close()

    st, err := in.Stat()
    if err != nil {
        return fmt.Errorf("stat source: %w", err)
    }

    out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, st.Mode().Perm())
    if err != nil {
        return fmt.Errorf("create destination: %w", err)
    }
    if _, err := io.Copy(out, in); err != nil {
        out.Close()
        return fmt.Errorf("copy contents: %w", err)
    }
    if err := out.Close(); err != nil {
        return fmt.Errorf("close destination: %w", err)
    }
    _ = os.Chtimes(dst, st.ModTime(), st.ModTime())
    return nil
}

func relTo(base, path string) string {
    if rel, err := filepath.Rel(base, path); err == nil {
        return rel
    }
    return path
}

package fonts

import (
    "os"
    "path/filepath"
    "strings"

    "github.com/rs/zerolog"

    "github.com/local/idmltools/internal/filetype"
    "github.com/local/idmltools/internal/metrics"
)

// FontUploadsDirName is the dedicated drop folder clients may place fonts
// in. Files directly inside it are collected ahead of the generic walk and
// regardless of the depth limit; its subdirectories are not entered.
const FontUploadsDirName = "FontUploads"

// DefaultScanMaxDepth bounds the generic recursive scan.
const DefaultScanMaxDepth = 3

// hintDirNames are folder names that usually carry fonts in IDML packages.
// They are surfaced to the operator but recursed into like any other folder.
var hintDirNames = map[string]bool{
    "fonts":          true,
    "font":           true,
    "document fonts": true,
}

// Locator discovers font files beneath an upload directory.
type Locator struct {
    log      zerolog.Logger
    maxDepth int
}

// NewLocator builds a locator. A non-positive maxDepth falls back to
// DefaultScanMaxDepth.
func NewLocator(log zerolog.Logger, maxDepth int) *Locator {
    if maxDepth <= 0 {
        maxDepth = DefaultScanMaxDepth
    }
    return &Locator{log: log, maxDepth: maxDepth}
}

// Scan returns the font files reachable from dir. The dedicated FontUploads
// folder is read first, then every other immediate subdirectory is walked
// down to the depth limit. Files sitting directly in dir itself are not
// collected, duplicate base names across folders are all returned, and an
// empty result is valid. Access errors are logged and skipped.
func (l *Locator) Scan(dir string) []FontAsset {
    var found []FontAsset

    fontUploads := filepath.Join(dir, FontUploadsDirName)
    if st, err := os.Stat(fontUploads); err == nil && st.IsDir() {
        l.log.Info().Str("dir", fontUploads).Msg("found dedicated FontUploads directory")
        entries, err := os.ReadDir(fontUploads)
        if err != nil {
            l.log.Warn().Err(err).Str("dir", fontUploads).Msg("error accessing directory")
            metrics.IncScanAccessError()
        } else {
            for _, e := range entries {
                path := filepath.Join(fontUploads, e.Name())
                st, err := os.Stat(path)
                if err != nil {
                    l.log.Warn().Err(err).Str("path", path).Msg("error accessing entry")
                    metrics.IncScanAccessError()
                    continue
                }
                if st.Mode().IsRegular() && filetype.IsFontFile(e.Name()) {
                    found = append(found, newAsset(path))
                }
            }
        }
    }

    // Walk the remaining immediate subdirectories. FontUploads is skipped
    // because it was already read above.
    entries, err := os.ReadDir(dir)
    if err != nil {
        l.log.Warn().Err(err).Str("dir", dir).Msg("error accessing directory")
        metrics.IncScanAccessError()
        return found
    }
    for _, e := range entries {
        if e.Name() == FontUploadsDirName {
            continue
        }
        path := filepath.Join(dir, e.Name())
        st, err := os.Stat(path)
        if err != nil {
            l.log.Warn().Err(err).Str("path", path).Msg("error accessing entry")
            metrics.IncScanAccessError()
            continue
        }
        if st.IsDir() {
            l.scanDir(path, 0, &found)
        }
    }
    return found
}

func (l *Locator) scanDir(dir string, depth int, found *[]FontAsset) {
    if depth > l.maxDepth {
        return
    }

    entries, err := os.ReadDir(dir)
    if err != nil {
        l.log.Warn().Err(err).Str("dir", dir).Msg("error accessing directory")
        metrics.IncScanAccessError()
        return
    }

    for _, e := range entries {
        path := filepath.Join(dir, e.Name())
        st, err := os.Stat(path)
        if err != nil {
            l.log.Warn().Err(err).Str("path", path).Msg("error accessing entry")
            metrics.IncScanAccessError()
            continue
        }

        switch {
        case st.Mode().IsRegular() && filetype.IsFontFile(e.Name()):
            *found = append(*found, newAsset(path))
        case st.IsDir():
            if hintDirNames[strings.ToLower(e.Name())] {
                l.log.Info().Str("dir", path).Msg("found potential font directory")
            }
            l.scanDir(path, depth+1, found)
        }
    }
}

func newAsset(path string) FontAsset {
    return FontAsset{Path: path, Extension: strings.ToLower(filepath.Ext(path))}
}

package verify

import (
    "fmt"
    "io"
    "io/fs"
    "os"
    "path/filepath"
    "strings"

    "github.com/rs/zerolog"

    "github.com/local/idmltools/internal/filetype"
    "github.com/local/idmltools/internal/fonts"
)

// strayExtensions is the narrower set the verifier hunts for when a Fonts
// folder is missing. Web and legacy variants are left to the processor; a
// stray report only needs the formats InDesign actually loads.
var strayExtensions = []string{".otf", ".ttf", ".woff", ".woff2"}

// FontFile is one entry found inside an upload's Fonts folder. IsFont comes
// from magic-byte detection, so a renamed archive shows up as suspect here
// even though the processor copied it by extension.
type FontFile struct {
    Name     string `json:"name"`
    IsFont   bool   `json:"isFont"`
    MIMEType string `json:"mimeType,omitempty"`
}

// UploadStatus reports one upload directory's consolidation state.
type UploadStatus struct {
    Upload     string     `json:"upload"`
    FontsDir   string     `json:"fontsDir"`
    OK         bool       `json:"ok"`
    FontFiles  []FontFile `json:"fontFiles,omitempty"`
    StrayFonts []string   `json:"strayFonts,omitempty"`
}

// Summary bundles the per-upload statuses for the operator.
type Summary struct {
    Base    string         `json:"base"`
    Uploads []UploadStatus `json:"uploads"`
}

// Verifier re-reads upload directories and reports whether font
// consolidation left each one with a populated Fonts folder.
type Verifier struct {
    log      zerolog.Logger
    detector *filetype.Detector
}

// New creates a verifier logging through the given logger.
func New(log zerolog.Logger) *Verifier {
    return &Verifier{log: log, detector: filetype.New(log)}
}

// CheckUploads inspects every immediate subdirectory of base as one upload.
func (v *Verifier) CheckUploads(base string) (Summary, error) {
    summary := Summary{Base: base}

    entries, err := os.ReadDir(base)
    if err != nil {
        return summary, fmt.Errorf("read uploads directory: %w", err)
    }
    for _, e := range entries {
        path := filepath.Join(base, e.Name())
        st, err := os.Stat(path)
        if err != nil || !st.IsDir() {
            continue
        }
        summary.Uploads = append(summary.Uploads, v.checkUpload(path))
    }

    v.log.Info().Int("uploads", len(summary.Uploads)).Str("base", base).Msg("verified upload directories")
    return summary, nil
}

func (v *Verifier) checkUpload(uploadDir string) UploadStatus {
    status := UploadStatus{
        Upload:   filepath.Base(uploadDir),
        FontsDir: filepath.Join(uploadDir, fonts.FontsDirName),
    }

    info, err := os.Stat(status.FontsDir)
    if err != nil || !info.IsDir() {
        // No Fonts folder; look for fonts the processor should have moved.
        status.StrayFonts = v.findStrays(uploadDir)
        return status
    }

    status.OK = true
    entries, err := os.ReadDir(status.FontsDir)
    if err != nil {
        v.log.Warn().Err(err).Str("dir", status.FontsDir).Msg("error accessing fonts directory")
        return status
    }
    for _, e := range entries {
        path := filepath.Join(status.FontsDir, e.Name())
        st, err := os.Stat(path)
        if err != nil || !st.Mode().IsRegular() {
            continue
        }
        ff := FontFile{Name: e.Name()}
        if det, err := v.detector.Detect(path); err == nil {
            ff.IsFont = det.IsFont
            ff.MIMEType = det.MIMEType
        }
        status.FontFiles = append(status.FontFiles, ff)
    }
    return status
}

// findStrays walks the whole upload for font files that never made it into
// a Fonts folder. Paths come back relative to the upload directory.
func (v *Verifier) findStrays(uploadDir string) []string {
    var strays []string
    _ = filepath.WalkDir(uploadDir, func(path string, d fs.DirEntry, err error) error {
        if err != nil || d.IsDir() || !isStrayFont(d.Name()) {
            return nil
        }
        if rel, rerr := filepath.Rel(uploadDir, path); rerr == nil {
            strays = append(strays, rel)
        }
        return nil
    })
    return strays
}

func isStrayFont(name string) bool {
    ext := strings.ToLower(filepath.Ext(name))
    for _, e := range strayExtensions {
        if e == ext {
            return true
        }
    }
    return false
}

// Print writes the operator report to w in the layout the pipeline's
// runbooks quote.
func (s Summary) Print(w io.Writer) {
    fmt.Fprintf(w, "Checking uploads directory: %s\n", s.Base)
    fmt.Fprintf(w, "Found %d upload directories\n", len(s.Uploads))

    for _, u := range s.Uploads {
        fmt.Fprintf(w, "\nChecking upload: %s\n", u.Upload)
        if u.OK {
            fmt.Fprintf(w, "✅ Fonts directory exists: %s\n", u.FontsDir)
            names := make([]string, 0, len(u.FontFiles))
            var suspects []string
            for _, f := range u.FontFiles {
                names = append(names, f.Name)
                if !f.IsFont {
                    suspects = append(suspects, fmt.Sprintf("%s (%s)", f.Name, f.MIMEType))
                }
            }
            joined := "None"
            if len(names) > 0 {
                joined = strings.Join(names, ", ")
            }
            fmt.Fprintf(w, "   Contains %d font files: %s\n", len(names), joined)
            if len(suspects) > 0 {
                fmt.Fprintf(w, "   Content mismatch (not font data): %s\n", strings.Join(suspects, ", "))
            }
            continue
        }

        fmt.Fprintf(w, "❌ Fonts directory missing: %s\n", u.FontsDir)
        if len(u.StrayFonts) > 0 {
            fmt.Fprintf(w, "   Found %d font files in other locations:\n", len(u.StrayFonts))
            for _, stray := range u.StrayFonts {
                fmt.Fprintf(w, "   - %s\n", stray)
            }
        }
    }
}

package fonts

import (
    "os"
    "path/filepath"

    "github.com/rs/zerolog"

    "github.com/local/idmltools/internal/metrics"
)

// FontsDirName is the flattened consolidation folder created at the upload
// root. InDesign Server resolves document fonts from it.
const FontsDirName = "Fonts"

// Processor wires the resolver, locator and consolidator into the single
// synchronous pipeline behind the fontproc binary.
type Processor struct {
    log          zerolog.Logger
    locator      *Locator
    consolidator *Consolidator
}

// NewProcessor builds a processor scanning at most maxDepth levels deep.
func NewProcessor(log zerolog.Logger, maxDepth int) *Processor {
    return &Processor{
        log:          log,
        locator:      NewLocator(log, maxDepth),
        consolidator: NewConsolidator(log),
    }
}

// Process runs the pipeline over one upload directory. It always returns a
// structured Result; failures are reported in the result, never panicked or
// returned as errors. A run that finds zero fonts is a success and still
// leaves an empty Fonts directory behind, but writes no summary file.
func (p *Processor) Process(uploadDir string) Result {
    p.log.Info().Str("dir", uploadDir).Msg("processing upload directory")

    st, err := os.Stat(uploadDir)
    if err != nil || !st.IsDir() {
        p.log.Error().Str("dir", uploadDir).Msg("directory not found")
        return Result{Success: false, Error: "Directory not found", Directory: uploadDir}
    }

    uploadRoot := ResolveUploadRoot(p.log, uploadDir)

    assets := p.locator.Scan(uploadDir)
    p.log.Info().Int("count", len(assets)).Str("dir", uploadDir).Msg("font scan complete")
    metrics.AddFontsFound(len(assets))

    fontsDir := filepath.Join(uploadRoot, FontsDirName)
    if err := os.MkdirAll(fontsDir, 0o755); err != nil {
        p.log.Error().Err(err).Str("dir", fontsDir).Msg("cannot create fonts directory")
        return Result{Success: false, Error: "Cannot create fonts directory", Directory: uploadDir, UploadRoot: uploadRoot}
    }

    if len(assets) == 0 {
        p.log.Info().Str("fonts_dir", fontsDir).Msg("no font files found, created empty fonts directory")
        return Result{
            Success:        true,
            Directory:      uploadDir,
            UploadRoot:     uploadRoot,
            FontsDirectory: fontsDir,
        }
    }

    outcomes := p.consolidator.Consolidate(assets, fontsDir, uploadDir)
    records := CopiedRecords(outcomes)

    result := Result{
        Success:        true,
        FontsFound:     len(assets),
        FontsCopied:    len(records),
        Directory:      uploadDir,
        UploadRoot:     uploadRoot,
        FontsDirectory: fontsDir,
        CopiedFonts:    records,
    }

    // The summary is advisory; a write failure must not fail the run.
    if err := WriteSummary(uploadDir, result); err != nil {
        p.log.Warn().Err(err).Msg("could not save summary")
    }

    return result
}

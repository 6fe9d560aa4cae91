package fonts

import (
    "encoding/json"
    "fmt"
    "os"
    "path/filepath"
)

// SummaryFileName is the per-upload record read by the rest of the
// pipeline. The name and the Result field set behind it are frozen.
const SummaryFileName = "font_processing_summary.json"

// WriteSummary persists the run result as indented JSON inside the
// processed directory.
func WriteSummary(dir string, res Result) error {
    data, err := json.MarshalIndent(res, "", "  ")
    if err != nil {
        return fmt.Errorf("marshal summary: %w", err)
    }
    if err := os.WriteFile(filepath.Join(dir, SummaryFileName), data, 0o644); err != nil {
        return fmt.Errorf("write summary: %w", err)
    }
    return nil
}

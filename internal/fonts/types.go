package fonts

// FontAsset is one discovered font file: its absolute path plus the
// lowercased extension that matched. Assets are produced by a scan and
// consumed by consolidation; they are never mutated.
type FontAsset struct {
    Path      string
    Extension string
}

// CopyRecord describes one font copied into the Fonts directory. The
// destination is always <fontsDir>/<originalName>; source nesting is never
// reflected there.
type CopyRecord struct {
    Source       string `json:"source"`
    Destination  string `json:"destination"`
    OriginalName string `json:"originalName"`
}

// Result summarizes one processing run. It doubles as the wire format of
// font_processing_summary.json, so field names here are a frozen contract
// with the rest of the pipeline.
type Result struct {
    Success        bool         `json:"success"`
    Error          string       `json:"error,omitempty"`
    FontsFound     int          `json:"fontsFound"`
    FontsCopied    int          `json:"fontsCopied"`
    Directory      string       `json:"directory"`
    UploadRoot     string       `json:"uploadRoot"`
    FontsDirectory string       `json:"fontsDirectory"`
    CopiedFonts    []CopyRecord `json:"copiedFonts"`
}

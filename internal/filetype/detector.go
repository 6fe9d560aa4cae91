package filetype

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"
)

// FontExtensions is the fixed set of file extensions the upload pipeline
// treats as font assets. TIFF is included for legacy bitmap fonts that ship
// inside IDML packages.
var FontExtensions = []string{".otf", ".ttf", ".woff", ".woff2", ".eot", ".tiff"}

// IsFontFile reports whether a file name carries one of the recognized font
// extensions. Matching is case-insensitive, considers the final extension
// only, and never looks at content.
func IsFontFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range FontExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// FontInfo contains detected font type information
type FontInfo struct {
	MIMEType    string
	Extension   string
	IsFont      bool
	Description string
}

// Detector handles file type detection using magic bytes
type Detector struct {
	log zerolog.Logger
}

// New creates a new file type detector
func New(log zerolog.Logger) *Detector {
	return &Detector{log: log}
}

// Detect detects the actual file type using magic bytes, not filename
func (d *Detector) Detect(filePath string) (*FontInfo, error) {
	// Detect MIME type using magic bytes
	mtype, err := mimetype.DetectFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to detect file type: %w", err)
	}

	mimeType := mtype.String()
	extension := mtype.Extension()

	d.log.Debug().Str("mime", mimeType).Str("ext", extension).Str("file", filePath).Msg("detected file type")

	// Special handling for Embedded OpenType containers. Some EOT variants
	// embed the font table at offsets magic sniffing misses and come back as
	// a generic binary blob; fall back to the extension for those.
	if mimeType == "application/octet-stream" {
		ext := strings.ToLower(filepath.Ext(filePath))
		if ext == ".eot" {
			mimeType = "application/vnd.ms-fontobject"
			extension = ".eot"
			d.log.Debug().Str("original", mtype.String()).Str("override", mimeType).Msg("overriding binary detection based on extension")
		}
	}

	info := &FontInfo{
		MIMEType:  mimeType,
		Extension: extension,
	}

	// Classify the content against the pipeline's recognized font types
	d.classify(info)

	return info, nil
}

// classify determines whether the detected type is a recognized font asset
func (d *Detector) classify(info *FontInfo) {
	mimeType := info.MIMEType

	switch {
	case mimeType == "font/ttf":
		info.IsFont = true
		info.Description = "TrueType font"

	case mimeType == "font/otf":
		info.IsFont = true
		info.Description = "OpenType font"

	case mimeType == "font/woff":
		info.IsFont = true
		info.Description = "WOFF font"

	case mimeType == "font/woff2":
		info.IsFont = true
		info.Description = "WOFF2 font"

	case mimeType == "application/vnd.ms-fontobject": // .eot
		info.IsFont = true
		info.Description = "Embedded OpenType font"

	// Legacy bitmap fonts are delivered as TIFF images
	case mimeType == "image/tiff":
		info.IsFont = true
		info.Description = "TIFF image (legacy font asset)"

	// Anything else under font/ (e.g. font/collection)
	case strings.HasPrefix(mimeType, "font/"):
		info.IsFont = true
		info.Description = "Font file"

	// Default: not a font asset
	default:
		info.IsFont = false
		info.Description = fmt.Sprintf("Not a font asset: %s", mimeType)
	}
}

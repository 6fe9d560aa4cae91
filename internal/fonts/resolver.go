package fonts

import (
    "path/filepath"
    "strings"

    "github.com/rs/zerolog"
)

// uploadsSegment is the literal ancestor folder that marks one upload
// session: uploads/<id>.
const uploadsSegment = "uploads"

// rootMaxAscent caps how many directories the resolver inspects walking
// upward, the start directory included.
const rootMaxAscent = 3

// reservedIDChars may not appear in an upload id segment.
const reservedIDChars = `:*?"<>|`

// ResolveUploadRoot walks upward from dir looking for the nearest ancestor
// shaped like .../uploads/<id>. It checks dir itself, its parent and its
// grandparent, stopping early at the filesystem root. When no ancestor
// qualifies it falls back to dir unchanged, so consolidation still has a
// home. The check is pure path inspection and touches no filesystem state.
func ResolveUploadRoot(log zerolog.Logger, dir string) string {
    current := filepath.Clean(dir)
    for i := 0; i < rootMaxAscent; i++ {
        if isUploadRoot(current) {
            log.Info().Str("upload_root", current).Msg("found upload root directory")
            return current
        }
        parent := filepath.Dir(current)
        if parent == current { // filesystem root reached
            break
        }
        current = parent
    }
    log.Warn().Str("dir", dir).Msg("could not find upload root, using provided directory")
    return dir
}

// isUploadRoot inspects path segments directly: the last segment must be a
// non-empty id free of reserved characters and the one before it must be
// literally "uploads". Comparing segments instead of the joined string keeps
// a folder like "myuploads" from matching and is safe across separator
// conventions.
func isUploadRoot(path string) bool {
    segs := splitSegments(path)
    if len(segs) < 2 {
        return false
    }
    id := segs[len(segs)-1]
    if id == "" || strings.ContainsAny(id, reservedIDChars) {
        return false
    }
    return segs[len(segs)-2] == uploadsSegment
}

func splitSegments(path string) []string {
    clean := filepath.ToSlash(filepath.Clean(path))
    var segs []string
    for _, s := range strings.Split(clean, "/") {
        if s != "" {
            segs = append(segs, s)
        }
    }
    return segs
}

package cleanup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestRun_MatchingArtifacts_Deleted(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "idml-123.json"))
	touch(t, filepath.Join(dir, "page-7.json"))
	touch(t, filepath.Join(dir, "keep.json"))
	touch(t, filepath.Join(dir, "notes.txt"))

	rep := New(zerolog.Nop(), 0, "").Run(dir)

	require.Len(t, rep.FilesDeleted, 2)
	require.Zero(t, rep.FilesFailed)
	require.NoFileExists(t, filepath.Join(dir, "idml-123.json"))
	require.NoFileExists(t, filepath.Join(dir, "page-7.json"))
	require.FileExists(t, filepath.Join(dir, "keep.json"))
	require.FileExists(t, filepath.Join(dir, "notes.txt"))
}

func TestRun_MatchesOnlyTopLevel_NotSubdirectories(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "sub", "idml-nested.json"))

	rep := New(zerolog.Nop(), 0, "").Run(dir)

	require.Empty(t, rep.FilesDeleted)
	require.FileExists(t, filepath.Join(dir, "sub", "idml-nested.json"))
}

func TestRun_UploadsFolder_RemovedRecursively(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "uploads", "sess1", "Fonts", "A.ttf"))

	rep := New(zerolog.Nop(), 0, "").Run(dir)

	require.True(t, rep.UploadsRemoved)
	require.NoDirExists(t, filepath.Join(dir, "uploads"))
}

func TestRun_NoUploadsFolder_Reported(t *testing.T) {
	dir := t.TempDir()

	rep := New(zerolog.Nop(), 0, "").Run(dir)

	require.False(t, rep.UploadsRemoved)
}

func TestRun_UploadsNameIsFile_LeftAlone(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "uploads"))

	rep := New(zerolog.Nop(), 0, "").Run(dir)

	require.False(t, rep.UploadsRemoved)
	require.FileExists(t, filepath.Join(dir, "uploads"))
}

func TestRun_AgeThreshold_KeepsYoungFiles(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "idml-old.json")
	young := filepath.Join(dir, "idml-young.json")
	touch(t, old)
	touch(t, young)
	stale := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(old, stale, stale))

	rep := New(zerolog.Nop(), time.Hour, "").Run(dir)

	require.Equal(t, []string{old}, rep.FilesDeleted)
	require.Equal(t, 1, rep.FilesSkipped)
	require.FileExists(t, young)
	require.NoFileExists(t, old)
}

func TestRun_CustomUploadsDirName_Honored(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "incoming", "sess", "file"))
	touch(t, filepath.Join(dir, "uploads", "sess", "file"))

	rep := New(zerolog.Nop(), 0, "incoming").Run(dir)

	require.True(t, rep.UploadsRemoved)
	require.NoDirExists(t, filepath.Join(dir, "incoming"))
	require.DirExists(t, filepath.Join(dir, "uploads"))
}

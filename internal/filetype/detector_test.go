package filetype

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func writeBytes(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

// ttfHeader is the sfnt version tag TrueType files start with.
var ttfHeader = append([]byte{0x00, 0x01, 0x00, 0x00}, []byte("fontdatapadding")...)

func TestIsFontFile_Table(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"Regular.ttf", true},
		{"UPPER.TTF", true},
		{"Web.woff", true},
		{"Web2.WoFF2", true},
		{"Open.otf", true},
		{"Embedded.eot", true},
		{"Legacy.tiff", true},
		{"notes.txt", false},
		{"archive.ttf.bak", false},
		{"noextension", false},
		{"image.tif", false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, IsFontFile(tc.name), "name %q", tc.name)
	}
}

func TestDetect_TrueType_ByMagicBytes(t *testing.T) {
	dir := t.TempDir()
	path := writeBytes(t, dir, "sample.ttf", ttfHeader)

	info, err := New(zerolog.Nop()).Detect(path)
	require.NoError(t, err)
	require.Equal(t, "font/ttf", info.MIMEType)
	require.True(t, info.IsFont)
}

func TestDetect_OpenType_ByMagicBytes(t *testing.T) {
	dir := t.TempDir()
	path := writeBytes(t, dir, "sample.otf", append([]byte("OTTO"), []byte("fontdatapadding")...))

	info, err := New(zerolog.Nop()).Detect(path)
	require.NoError(t, err)
	require.Equal(t, "font/otf", info.MIMEType)
	require.True(t, info.IsFont)
}

func TestDetect_Woff_ByMagicBytes(t *testing.T) {
	dir := t.TempDir()
	path := writeBytes(t, dir, "sample.woff", append([]byte("wOFF"), []byte("fontdatapadding")...))

	info, err := New(zerolog.Nop()).Detect(path)
	require.NoError(t, err)
	require.Equal(t, "font/woff", info.MIMEType)
	require.True(t, info.IsFont)
}

func TestDetect_Woff2_ByMagicBytes(t *testing.T) {
	dir := t.TempDir()
	path := writeBytes(t, dir, "sample.woff2", append([]byte("wOF2"), []byte("fontdatapadding")...))

	info, err := New(zerolog.Nop()).Detect(path)
	require.NoError(t, err)
	require.Equal(t, "font/woff2", info.MIMEType)
	require.True(t, info.IsFont)
}

func TestDetect_Tiff_TreatedAsLegacyFontAsset(t *testing.T) {
	dir := t.TempDir()
	path := writeBytes(t, dir, "bitmap.tiff", append([]byte{'I', 'I', '*', 0x00}, []byte("imagedata")...))

	info, err := New(zerolog.Nop()).Detect(path)
	require.NoError(t, err)
	require.Equal(t, "image/tiff", info.MIMEType)
	require.True(t, info.IsFont)
}

func TestDetect_RenamedTextFile_NotAFont(t *testing.T) {
	dir := t.TempDir()
	path := writeBytes(t, dir, "imposter.ttf", []byte("just some plain text"))

	info, err := New(zerolog.Nop()).Detect(path)
	require.NoError(t, err)
	require.False(t, info.IsFont)
}

func TestDetect_GenericBinaryWithEotName_OverriddenByExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeBytes(t, dir, "embedded.eot", make([]byte, 64))

	info, err := New(zerolog.Nop()).Detect(path)
	require.NoError(t, err)
	require.Equal(t, "application/vnd.ms-fontobject", info.MIMEType)
	require.True(t, info.IsFont)
}

func TestDetect_MissingFile_ReturnsError(t *testing.T) {
	_, err := New(zerolog.Nop()).Detect(filepath.Join(t.TempDir(), "absent.ttf"))
	require.Error(t, err)
}

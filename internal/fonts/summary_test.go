package fonts

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteSummary_MissingDirectory_ReturnsError(t *testing.T) {
	err := WriteSummary(filepath.Join(t.TempDir(), "absent"), Result{Success: true})
	require.Error(t, err)
}

func TestWriteSummary_ZeroCopies_KeepsCopiedFontsArray(t *testing.T) {
	dir := t.TempDir()
	res := Result{
		Success:        true,
		FontsFound:     2,
		FontsCopied:    0,
		Directory:      dir,
		UploadRoot:     dir,
		FontsDirectory: filepath.Join(dir, FontsDirName),
		CopiedFonts:    []CopyRecord{},
	}
	require.NoError(t, WriteSummary(dir, res))

	data, err := os.ReadFile(filepath.Join(dir, SummaryFileName))
	require.NoError(t, err)

	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &m))
	require.Contains(t, m, "copiedFonts")
	require.JSONEq(t, "[]", string(m["copiedFonts"]))
	require.NotContains(t, m, "error")
}

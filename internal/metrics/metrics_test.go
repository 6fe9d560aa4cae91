package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInit_RegistersWithoutPanic(t *testing.T) {
	require.NotPanics(t, Init)

	// counters must accept updates after registration
	AddFontsFound(3)
	IncFontCopied()
	IncFontSkipped()
	IncFontCopyFailure()
	IncScanAccessError()
	IncCleanupDeleted()
	IncCleanupFailure()
	ObserveRun("fontproc", "success", 125*time.Millisecond)
}

func TestPush_NoURLConfigured_NoOp(t *testing.T) {
	require.NoError(t, Push("", "idmltools"))
}

package testutils

import (
	"time"

	"github.com/edge-classic/EDGE-classic-sub008/internal/output"
	"github.com/edge-classic/EDGE-classic-sub008/internal/repositories/lumps"
)

const (
	// TestRunID is the default run id for test fixtures
	TestRunID = "run_test_001"

	// TestVersion is the patch format version used by most tests
	TestVersion = 21
)

// TestCreatedAt is the fixed creation time of test runs
var TestCreatedAt = time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)

// CreateTestRun creates a run holding a things and a sounds lump
func CreateTestRun(id string) *lumps.Run {
	return lumps.NewRun(id, TestCreatedAt, []output.Lump{
		{
			Kind: output.LumpThings,
			Name: output.LumpThings.Name(),
			Text: "<THINGS>\n\n[IMP:3001]\nSPAWNHEALTH = 100;\n\n",
		},
		{
			Kind: output.LumpSounds,
			Name: output.LumpSounds.Name(),
			Text: "<SOUNDS>\n\n[PISTOL]\nLUMP_NAME = \"DSPEW\";\nPRIORITY = 64;\n\n",
		},
	})
}

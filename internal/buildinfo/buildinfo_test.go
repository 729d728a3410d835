package buildinfo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintBuildData(t *testing.T) {
	origVersion, origDate, origCommit := Version, BuildDate, Commit
	t.Cleanup(func() { Version, BuildDate, Commit = origVersion, origDate, origCommit })

	Version, BuildDate, Commit = "v1.2.3", "", "abc"

	var buf bytes.Buffer
	PrintBuildData(&buf)

	assert.Equal(t, "Build version: v1.2.3\nBuild date: N/A\nBuild commit: abc\n", buf.String())
}

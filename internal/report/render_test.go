package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nejtool/nej/internal/types"
)

func sample() []types.FileReport {
	return []types.FileReport{
		{Path: "notes.txt", Removed: 3, Outcome: types.OutcomeReported},
		{Path: "blob.bin", Outcome: types.OutcomeSkippedBinary},
		{Path: "gone.txt", Outcome: types.OutcomeFailed, Err: "open gone.txt: no such file"},
		{Path: "clean.md", Removed: 0, Outcome: types.OutcomeReported},
	}
}

func TestPrintReportsFormat(t *testing.T) {
	var buf bytes.Buffer
	PrintReports(&buf, sample())
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2, "only processed non-binary files get a line")
	assert.Equal(t, `File: "notes.txt", Emojis removed: 3`, lines[0])
	assert.Equal(t, `File: "clean.md", Emojis removed: 0`, lines[1])
}

func TestPrintDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	PrintDiagnostics(&buf, sample())
	out := buf.String()
	assert.Contains(t, out, `skipping binary file "blob.bin"`)
	assert.Contains(t, out, "gone.txt: open gone.txt: no such file")
	assert.NotContains(t, out, "notes.txt")
}

func TestPrintJSONRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintJSON(&buf, sample()))

	var got []types.FileReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 4)
	assert.Equal(t, "notes.txt", got[0].Path)
	assert.Equal(t, 3, got[0].Removed)
	assert.Equal(t, types.OutcomeSkippedBinary, got[1].Outcome)
}

func TestPrintTableFooter(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, sample(), PrintOptions{NoColor: true, FilesProcessed: 3})
	out := buf.String()
	assert.Contains(t, out, "Emojis removed: 3")
	assert.Contains(t, out, "Files processed: 3")
	assert.NotContains(t, out, "\x1b[", "no ANSI codes with NoColor")
}

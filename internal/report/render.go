// Package report renders per-file results for humans and pipelines. Normal
// reports go to stdout; binary skips and per-path failures are diagnostics
// and belong on stderr.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/term"

	"github.com/nejtool/nej/internal/types"
)

// PrintOptions control the human-readable renderers.
type PrintOptions struct {
	NoColor        bool
	Duration       time.Duration
	FilesProcessed int
}

// StdoutIsTTY reports whether stdout is a terminal; callers use it to decide
// whether color is worth emitting at all.
func StdoutIsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// PrintReports writes one line per processed, non-binary file:
//
//	File: "<path>", Emojis removed: <N>
//
// Skipped and failed paths produce no line here; see PrintDiagnostics.
func PrintReports(w io.Writer, reports []types.FileReport) {
	for _, r := range reports {
		switch r.Outcome {
		case types.OutcomeReported, types.OutcomeWritten, types.OutcomeUnchanged:
			fmt.Fprintf(w, "File: %q, Emojis removed: %d\n", r.Path, r.Removed)
		}
	}
}

// PrintDiagnostics writes binary-skip notices and per-path failures. Meant
// for the error stream.
func PrintDiagnostics(w io.Writer, reports []types.FileReport) {
	for _, r := range reports {
		switch r.Outcome {
		case types.OutcomeSkippedBinary:
			fmt.Fprintf(w, "nej: skipping binary file %q\n", r.Path)
		case types.OutcomeFailed:
			fmt.Fprintf(w, "nej: %s: %s\n", r.Path, r.Err)
		}
	}
}

// PrintTable renders a bordered summary of all reports plus a footer with
// run statistics.
func PrintTable(w io.Writer, reports []types.FileReport, opts PrintOptions) {
	tbl := tablewriter.NewTable(w)
	tbl.Header([]string{"File", "Removed", "Status"})
	total := 0
	for _, r := range reports {
		total += r.Removed
		_ = tbl.Append([]string{r.Path, fmt.Sprintf("%d", r.Removed), statusText(r, opts.NoColor)})
	}
	_ = tbl.Render()

	fmt.Fprintf(w, "\nEmojis removed: %d\n", total)
	if opts.FilesProcessed > 0 {
		fmt.Fprintf(w, "Files processed: %d\n", opts.FilesProcessed)
	}
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Duration: %.2fs\n", opts.Duration.Seconds())
	}
}

// PrintJSON emits the raw reports for pipelines.
func PrintJSON(w io.Writer, reports []types.FileReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}

func statusText(r types.FileReport, noColor bool) string {
	s := string(r.Outcome)
	if noColor {
		return s
	}
	switch r.Outcome {
	case types.OutcomeWritten:
		return "\x1b[32m" + s + "\x1b[0m" // green
	case types.OutcomeFailed:
		return "\x1b[31m" + s + "\x1b[0m" // red
	case types.OutcomeSkippedBinary:
		return "\x1b[33m" + s + "\x1b[0m" // yellow
	default:
		return s
	}
}

package types

// Outcome is the terminal state a file task reached.
type Outcome string

const (
	// OutcomeReported means a dry run computed and reported the count.
	OutcomeReported Outcome = "reported"
	// OutcomeWritten means the file was rewritten in place.
	OutcomeWritten Outcome = "written"
	// OutcomeUnchanged means no emoji was found, so no write happened.
	OutcomeUnchanged Outcome = "unchanged"
	// OutcomeSkippedBinary means the file failed the text check.
	OutcomeSkippedBinary Outcome = "skipped-binary"
	// OutcomeFailed means the path could not be read or written.
	OutcomeFailed Outcome = "failed"
)

// FileReport describes the result of processing one input path.
type FileReport struct {
	Path    string  `json:"path"`
	Removed int     `json:"removed"`
	Outcome Outcome `json:"outcome"`
	Backup  string  `json:"backup,omitempty"` // backup path written, if any
	Err     string  `json:"error,omitempty"`
}

// Failed reports whether the task ended in an error state. Binary skips are
// a policy decision, not failures.
func (r FileReport) Failed() bool {
	return r.Outcome == OutcomeFailed
}

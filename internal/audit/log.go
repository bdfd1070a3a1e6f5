// Package audit keeps an append-only record of in-place edit runs so a
// rewritten tree can be traced back to the invocation that changed it.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nejtool/nej/internal/types"
)

// RunRecord is one line of the audit log.
type RunRecord struct {
	Timestamp    time.Time `json:"timestamp"`
	RunID        string    `json:"run_id"`
	Root         string    `json:"root"`
	FilesChanged int       `json:"files_changed"`
	Removed      int       `json:"removed"`
	Skipped      int       `json:"skipped"`
	Failed       int       `json:"failed"`
	Duration     string    `json:"duration"`
	Changed      []string  `json:"changed,omitempty"`
}

// Log appends run records under root, preferring the .git directory so the
// log stays out of commits.
type Log struct {
	path string
}

// New returns a Log anchored at root.
func New(root string) *Log {
	gitDir := filepath.Join(root, ".git")
	path := filepath.Join(root, ".nej_audit.jsonl")
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		path = filepath.Join(gitDir, "nej_audit.jsonl")
	}
	return &Log{path: path}
}

// Record builds a RunRecord from the reports of one in-place run.
func Record(root string, reports []types.FileReport, duration time.Duration) RunRecord {
	rec := RunRecord{
		Timestamp: time.Now(),
		RunID:     fmt.Sprintf("run_%d", time.Now().UnixNano()),
		Root:      root,
		Duration:  duration.String(),
	}
	for _, r := range reports {
		switch r.Outcome {
		case types.OutcomeWritten:
			rec.FilesChanged++
			rec.Removed += r.Removed
			rec.Changed = append(rec.Changed, r.Path)
		case types.OutcomeSkippedBinary:
			rec.Skipped++
		case types.OutcomeFailed:
			rec.Failed++
		}
	}
	return rec
}

// Append writes one record to the log.
func (l *Log) Append(rec RunRecord) error {
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(rec); err != nil {
		return fmt.Errorf("write audit record: %w", err)
	}
	return nil
}

// History returns recorded runs, newest first. Corrupt lines are skipped.
func (l *Log) History() ([]RunRecord, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()

	var records []RunRecord
	dec := json.NewDecoder(f)
	for dec.More() {
		var rec RunRecord
		if err := dec.Decode(&rec); err != nil {
			break
		}
		records = append(records, rec)
	}
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

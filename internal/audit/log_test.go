package audit

import (
	"testing"
	"time"

	"github.com/nejtool/nej/internal/types"
)

func TestRecordCounts(t *testing.T) {
	reports := []types.FileReport{
		{Path: "a.txt", Removed: 2, Outcome: types.OutcomeWritten},
		{Path: "b.txt", Removed: 0, Outcome: types.OutcomeUnchanged},
		{Path: "c.bin", Outcome: types.OutcomeSkippedBinary},
		{Path: "d.txt", Outcome: types.OutcomeFailed, Err: "nope"},
	}
	rec := Record("/tmp/x", reports, time.Second)
	if rec.FilesChanged != 1 || rec.Removed != 2 || rec.Skipped != 1 || rec.Failed != 1 {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if len(rec.Changed) != 1 || rec.Changed[0] != "a.txt" {
		t.Fatalf("changed list wrong: %v", rec.Changed)
	}
}

func TestAppendAndHistory(t *testing.T) {
	root := t.TempDir()
	l := New(root)

	first := Record(root, []types.FileReport{{Path: "a", Removed: 1, Outcome: types.OutcomeWritten}}, time.Millisecond)
	second := Record(root, nil, time.Millisecond)
	if err := l.Append(first); err != nil {
		t.Fatal(err)
	}
	if err := l.Append(second); err != nil {
		t.Fatal(err)
	}

	got, err := l.History()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	// Newest first.
	if got[0].RunID != second.RunID {
		t.Fatalf("expected newest record first, got %s", got[0].RunID)
	}
}

func TestHistoryMissingLog(t *testing.T) {
	l := New(t.TempDir())
	if _, err := l.History(); err == nil {
		t.Fatal("expected error for missing log")
	}
}

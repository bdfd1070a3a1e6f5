package engine

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/nejtool/nej/internal/cache"
	"github.com/nejtool/nej/internal/files"
	"github.com/nejtool/nej/internal/transform"
	"github.com/nejtool/nej/internal/types"
)

// binarySniffWindow is how many leading bytes are inspected for a NUL byte
// before a file is treated as binary and skipped.
const binarySniffWindow = 8 * 1024

// Config controls one processing run.
type Config struct {
	// Paths are processed in the order given. Directories are expanded when
	// Recursive is set.
	Paths []string

	// InPlace rewrites files; otherwise the run is a dry run that only
	// reports counts.
	InPlace bool
	// BackupSuffix, when non-empty, keeps the pre-edit original at
	// path+BackupSuffix for in-place edits.
	BackupSuffix string
	// Pad replaces removed graphemes with a blank run of equal display
	// width instead of deleting them.
	Pad bool

	// Directory expansion controls (applied only to walked files, never to
	// explicitly named paths).
	Recursive       bool
	IncludeGlobs    string
	ExcludeGlobs    string
	MaxBytes        int64
	DefaultExcludes bool

	// Root anchors the ignore file and result cache. Defaults to ".".
	Root    string
	NoCache bool
}

// Result carries per-file reports plus run statistics.
type Result struct {
	Reports        []types.FileReport
	FilesProcessed int
	Removed        int
	Duration       time.Duration
}

// Failures counts reports that ended in an error state.
func (r Result) Failures() int {
	n := 0
	for _, rep := range r.Reports {
		if rep.Failed() {
			n++
		}
	}
	return n
}

// Run processes cfg.Paths sequentially. Per-path failures are recorded in
// the corresponding report and never abort the run; Run itself only errors
// on misconfiguration. Report order matches input argument order.
func Run(cfg Config) (Result, error) {
	var res Result
	if len(cfg.Paths) == 0 {
		return res, fmt.Errorf("no input paths")
	}
	if cfg.Root == "" {
		cfg.Root = "."
	}

	ign, _ := files.LoadIgnore(ignorePath(cfg.Root))

	var db cache.DB
	if !cfg.NoCache {
		db, _ = cache.Load(cfg.Root)
	} else {
		db.Entries = map[string]string{}
	}
	updated := map[string]string{}

	started := time.Now()
	paths, expandReports := expandPaths(cfg, ign)
	res.Reports = append(res.Reports, expandReports...)

	for _, p := range paths {
		rep := processFile(cfg, p, db, updated)
		res.Reports = append(res.Reports, rep)
		if rep.Outcome != types.OutcomeFailed {
			res.FilesProcessed++
		}
		res.Removed += rep.Removed
	}
	res.Duration = time.Since(started)

	if !cfg.NoCache && len(updated) > 0 {
		if db.Entries == nil {
			db.Entries = map[string]string{}
		}
		for k, v := range updated {
			db.Entries[k] = v
		}
		_ = cache.Save(cfg.Root, db)
	}
	return res, nil
}

func processFile(cfg Config, path string, db cache.DB, updated map[string]string) types.FileReport {
	rep := types.FileReport{Path: path}

	data, binary, err := readTextFile(path)
	if err != nil {
		rep.Outcome = types.OutcomeFailed
		rep.Err = err.Error()
		return rep
	}
	if binary {
		rep.Outcome = types.OutcomeSkippedBinary
		return rep
	}

	h := cache.Hash(data)
	if !cfg.NoCache && db.Entries != nil && db.Entries[path] == h {
		// Content already verified emoji-free on a previous run.
		if cfg.InPlace {
			rep.Outcome = types.OutcomeUnchanged
		} else {
			rep.Outcome = types.OutcomeReported
		}
		return rep
	}

	out, removed := transform.Strip(data, transform.Options{Pad: cfg.Pad})
	rep.Removed = removed

	if !cfg.InPlace {
		rep.Outcome = types.OutcomeReported
		if removed == 0 && bytes.Equal(out, data) {
			updated[path] = h
		}
		return rep
	}

	if removed == 0 {
		rep.Outcome = types.OutcomeUnchanged
		if bytes.Equal(out, data) {
			updated[path] = h
		}
		return rep
	}

	backup, err := files.ReplaceAtomic(path, out, cfg.BackupSuffix)
	rep.Backup = backup
	if err != nil {
		rep.Outcome = types.OutcomeFailed
		rep.Err = err.Error()
		return rep
	}
	rep.Outcome = types.OutcomeWritten
	updated[path] = cache.Hash(out)
	return rep
}

// readTextFile reads path, first sniffing a bounded prefix for NUL bytes so
// binary files are skipped without reading them whole.
func readTextFile(path string) ([]byte, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false, err
	}
	defer f.Close()

	prefix := make([]byte, binarySniffWindow)
	n, err := io.ReadFull(f, prefix)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, false, err
	}
	prefix = prefix[:n]
	if bytes.IndexByte(prefix, 0) >= 0 {
		return nil, true, nil
	}

	rest, err := io.ReadAll(f)
	if err != nil {
		return nil, false, err
	}
	if len(rest) == 0 {
		return prefix, false, nil
	}
	return append(prefix, rest...), false, nil
}

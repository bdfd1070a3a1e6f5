package engine

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"

	"github.com/nejtool/nej/internal/files"
	"github.com/nejtool/nej/internal/types"
)

func ignorePath(root string) string {
	return filepath.Join(root, ".nejignore")
}

// expandPaths resolves the configured paths into the ordered list of files
// to process. Explicit file arguments always pass through; directory
// arguments are walked (when Recursive is set) with ignore rules, globs,
// default excludes and the size cap applied. Unresolvable arguments come
// back as failed reports so the caller keeps argument ordering intact.
func expandPaths(cfg Config, ign files.Matcher) ([]string, []types.FileReport) {
	var out []string
	var failed []types.FileReport

	for _, arg := range cfg.Paths {
		st, err := os.Stat(arg)
		if err != nil {
			failed = append(failed, types.FileReport{
				Path:    arg,
				Outcome: types.OutcomeFailed,
				Err:     err.Error(),
			})
			continue
		}
		if !st.IsDir() {
			out = append(out, arg)
			continue
		}
		if !cfg.Recursive {
			failed = append(failed, types.FileReport{
				Path:    arg,
				Outcome: types.OutcomeFailed,
				Err:     "is a directory (use --recursive)",
			})
			continue
		}
		out = append(out, walkDir(cfg, arg, ign)...)
	}
	return out, failed
}

func walkDir(cfg Config, dir string, ign files.Matcher) []string {
	var out []string
	_ = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if cfg.DefaultExcludes && isDefaultDirExcluded(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		rel, _ := filepath.Rel(dir, p)
		if !allowedByGlobs(rel, cfg) {
			return nil
		}
		if ign.Match(rel) {
			return nil
		}
		if cfg.DefaultExcludes && isDefaultFileExcluded(strings.ToLower(rel)) {
			return nil
		}
		if cfg.MaxBytes > 0 {
			if info, err := d.Info(); err == nil && info.Size() > cfg.MaxBytes {
				return nil
			}
		}
		out = append(out, p)
		return nil
	})
	return out
}

// allowedByGlobs applies the include/exclude glob configuration to a
// slash-separated relative path. Includes, when present, act as a positive
// filter; excludes are subtracted last. Globs also match against the base
// name so `*.md` works without a `**/` prefix.
func allowedByGlobs(relPath string, cfg Config) bool {
	rp := strings.ReplaceAll(relPath, "\\", "/")
	includes := splitGlobs(cfg.IncludeGlobs)
	excludes := splitGlobs(cfg.ExcludeGlobs)
	if len(includes) > 0 && !matchAnyGlob(rp, includes) {
		return false
	}
	if len(excludes) > 0 && matchAnyGlob(rp, excludes) {
		return false
	}
	return true
}

func splitGlobs(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func matchAnyGlob(path string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, path); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, filepath.Base(path)); ok {
			return true
		}
	}
	return false
}

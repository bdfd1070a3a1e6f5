// Package files holds filesystem helpers shared by the engine: ignore-file
// matching and atomic in-place replacement.
package files

import (
	"bufio"
	"os"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// Matcher answers whether a relative path is excluded by an ignore file.
// The zero value matches nothing.
type Matcher struct {
	patterns []string
}

// LoadIgnore parses an ignore file (one glob per line, # comments, blank
// lines skipped). A missing file yields an empty matcher and no error from
// the caller's perspective; genuine read errors are returned.
func LoadIgnore(path string) (Matcher, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Matcher{}, nil
		}
		return Matcher{}, err
	}
	defer f.Close()

	var m Matcher
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m.patterns = append(m.patterns, line)
	}
	return m, sc.Err()
}

// Match reports whether rel is covered by any ignore pattern. Patterns ending
// in "/" exclude a whole directory subtree; bare-name patterns match at any
// depth (gitignore-style convenience).
func (m Matcher) Match(rel string) bool {
	rel = strings.ReplaceAll(rel, "\\", "/")
	for _, p := range m.patterns {
		if strings.HasSuffix(p, "/") {
			dir := strings.TrimSuffix(p, "/")
			if rel == dir || strings.HasPrefix(rel, dir+"/") {
				return true
			}
			continue
		}
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
		if !strings.Contains(p, "/") {
			if ok, _ := doublestar.Match("**/"+p, rel); ok {
				return true
			}
		}
	}
	return false
}

package files

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIgnoreMatch(t *testing.T) {
	dir := t.TempDir()
	ig := filepath.Join(dir, ".nejignore")
	content := "node_modules/\n*.min.js\n# comment\n\nvendor.txt\ndocs/**/*.snap\n"
	if err := os.WriteFile(ig, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := LoadIgnore(ig)
	if err != nil {
		t.Fatal(err)
	}
	cases := map[string]bool{
		"node_modules/pkg/index.js": true,
		"assets/app.min.js":         true,
		"vendor.txt":                true,
		"sub/dir/vendor.txt":        true,
		"docs/a/b/golden.snap":      true,
		"src/app.go":                false,
		"notes.txt":                 false,
	}
	for p, want := range cases {
		if got := m.Match(p); got != want {
			t.Fatalf("Match(%q)=%v want %v", p, got, want)
		}
	}
}

func TestIgnoreMissingFile(t *testing.T) {
	m, err := LoadIgnore(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("missing ignore file should not error: %v", err)
	}
	if m.Match("anything.txt") {
		t.Fatal("empty matcher must match nothing")
	}
}

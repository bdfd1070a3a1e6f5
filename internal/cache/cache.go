// Package cache remembers which file contents are already known to be
// emoji-free so unchanged files can be skipped on repeat runs.
package cache

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	xxhash "github.com/cespare/xxhash/v2"
)

// DB maps a file path to the content hash that was last verified clean.
type DB struct {
	Entries map[string]string `json:"entries"`
}

func defaultPath(root string) string {
	// Prefer storing the cache under .git to keep it out of commits.
	gitDir := filepath.Join(root, ".git")
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		return filepath.Join(gitDir, "nejcache.json")
	}
	return filepath.Join(root, ".nejcache.json")
}

// Load reads the cache for root. A missing or corrupt cache yields an empty
// DB so callers can treat the cache as best-effort.
func Load(root string) (DB, error) {
	var db DB
	b, err := os.ReadFile(defaultPath(root))
	if err != nil {
		return DB{Entries: map[string]string{}}, err
	}
	if err := json.Unmarshal(b, &db); err != nil {
		return DB{Entries: map[string]string{}}, err
	}
	if db.Entries == nil {
		db.Entries = map[string]string{}
	}
	return db, nil
}

// Save persists the cache for root.
func Save(root string, db DB) error {
	if db.Entries == nil {
		return errors.New("empty cache")
	}
	b, _ := json.MarshalIndent(db, "", "  ")
	return os.WriteFile(defaultPath(root), b, 0644)
}

// Hash is the content fingerprint used for cache entries.
func Hash(b []byte) string {
	if len(b) == 0 {
		return "0000000000000000"
	}
	sum := xxhash.Sum64(b)
	var buf [16]byte
	const hex = "0123456789abcdef"
	for i := 15; i >= 0; i-- {
		buf[i] = hex[sum&0xF]
		sum >>= 4
	}
	return string(buf[:])
}

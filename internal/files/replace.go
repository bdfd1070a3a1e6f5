package files

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"
)

// ReplaceAtomic writes data over path so that no reader ever observes a
// partially written file. The new content goes to a uniquely named temporary
// file in the same directory (rename is only atomic within one filesystem),
// and the original is replaced by a single rename. A failure before the
// rename leaves the original untouched.
//
// When backupSuffix is non-empty the pre-edit original is first copied to
// path+backupSuffix; the backup path is returned.
func ReplaceAtomic(path string, data []byte, backupSuffix string) (string, error) {
	mode := os.FileMode(0644)
	if st, err := os.Stat(path); err == nil {
		mode = st.Mode().Perm()
	}

	tmp := tempName(path)
	if err := os.WriteFile(tmp, data, mode); err != nil {
		return "", fmt.Errorf("write temp file: %w", err)
	}

	var backup string
	if backupSuffix != "" {
		backup = path + backupSuffix
		if err := copyFile(path, backup, mode); err != nil {
			_ = os.Remove(tmp)
			return "", fmt.Errorf("write backup: %w", err)
		}
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return backup, fmt.Errorf("replace %s: %w", path, err)
	}
	return backup, nil
}

var tempSeq atomic.Uint32

// tempName builds a sibling path unique across concurrent invocations by
// combining process identity with a nanosecond timestamp. A per-process
// sequence number keeps names distinct even on coarse clocks.
func tempName(path string) string {
	dir, base := filepath.Split(path)
	return filepath.Join(dir, fmt.Sprintf(".%s.%d.%d.%d.nej-tmp",
		base, os.Getpid(), time.Now().UnixNano(), tempSeq.Add(1)))
}

func copyFile(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, mode)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// Package paths provides textual path normalization, dated path
// construction, and boolean-result directory creation helpers.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

var reSeparators = regexp.MustCompile(`[/\\]+`)

// Trim replaces every run of slashes or backslashes with a single platform
// separator. Purely textual, no filesystem access, and idempotent.
func Trim(path string) string {
	return reSeparators.ReplaceAllString(path, string(filepath.Separator))
}

// DateSegment formats a Unix timestamp as a "YYYY/MM/DD/" relative path
// segment. A non-positive timestamp means now.
func DateSegment(ts int64) string {
	t := time.Now()
	if ts > 0 {
		t = time.Unix(ts, 0)
	}
	return fmt.Sprintf("%04d/%02d/%02d/", t.Year(), int(t.Month()), t.Day())
}

// ByDate returns DateSegment normalized for the current platform.
func ByDate(ts int64) string {
	return Trim(DateSegment(ts))
}

// Make ensures path exists as a directory, creating missing ancestors with
// the given permission bits. Returns false if the path exists but is not a
// directory, or creation fails.
func Make(path string, perm os.FileMode) bool {
	if info, err := os.Stat(path); err == nil {
		return info.IsDir()
	}
	return os.MkdirAll(path, perm) == nil
}

// MakeFile ensures the parent directory of filePath exists.
func MakeFile(filePath string, perm os.FileMode) bool {
	return Make(filepath.Dir(Trim(filePath)), perm)
}

// DirExists reports whether path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// FileExists reports whether path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

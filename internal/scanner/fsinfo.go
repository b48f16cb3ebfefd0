package scanner

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ageDays returns whole days between now and the modification time.
// A zero time yields the very-old sentinel.
func ageDays(modTime time.Time) int {
	if modTime.IsZero() {
		return sentinelAgeDays
	}
	days := int(time.Since(modTime).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// sizeKB measures the entry in kilobytes. Directories are walked
// recursively; the walk observes ctx and returns whatever it has
// accumulated when the deadline hits, so a huge or circularly-mounted
// tree costs a bounded amount of time and still reports a best-effort
// size. Missing paths measure as zero and fall to the floor check.
func sizeKB(ctx context.Context, path string, isDir bool) int64 {
	if !isDir {
		info, err := os.Lstat(path)
		if err != nil {
			return 0
		}
		return bytesToKB(info.Size())
	}

	var total int64
	filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return fs.SkipAll
		default:
		}
		if err != nil {
			return nil // unreadable subtree, keep going
		}
		if d.Type().IsRegular() {
			if info, err := d.Info(); err == nil {
				total += info.Size()
			}
		}
		return nil
	})
	return bytesToKB(total)
}

func bytesToKB(n int64) int64 {
	if n <= 0 {
		return 0
	}
	kb := n / 1024
	if n%1024 != 0 {
		kb++
	}
	return kb
}

// visibleChildren counts non-hidden immediate children of a directory.
func visibleChildren(path string) int {
	entries, err := os.ReadDir(path)
	if err != nil {
		return 0
	}
	count := 0
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), ".") {
			count++
		}
	}
	return count
}

// homeRelative rewrites paths under home as ~/... for display.
func homeRelative(home, path string) string {
	if home == "" {
		return path
	}
	if path == home {
		return "~"
	}
	if rel, ok := strings.CutPrefix(path, home+string(os.PathSeparator)); ok {
		return "~" + string(os.PathSeparator) + rel
	}
	return path
}

// modifiedDate renders the report date or N/A for unresolvable times.
func modifiedDate(modTime time.Time) string {
	if modTime.IsZero() {
		return "N/A"
	}
	return modTime.Format("2006-01-02")
}

//go:build darwin || linux

package platform

import "golang.org/x/sys/unix"

// DiskUsage holds filesystem totals for the volume containing path.
type DiskUsage struct {
	TotalBytes int64
	UsedBytes  int64
	FreeBytes  int64
	UsedPct    float64
}

// GetDiskUsage reports usage for the filesystem containing path.
func GetDiskUsage(path string) (*DiskUsage, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return nil, err
	}

	total := int64(st.Blocks) * int64(st.Bsize)
	free := int64(st.Bavail) * int64(st.Bsize)
	used := total - free

	usedPct := 0.0
	if total > 0 {
		usedPct = float64(used) / float64(total) * 100
	}

	return &DiskUsage{
		TotalBytes: total,
		UsedBytes:  used,
		FreeBytes:  free,
		UsedPct:    usedPct,
	}, nil
}

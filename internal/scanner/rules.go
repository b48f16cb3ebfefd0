package scanner

import (
	"path/filepath"
	"strings"

	"github.com/fenilsonani/appsweep/internal/config"
	"github.com/fenilsonani/appsweep/internal/report"
)

// extension families for large downloads
var extensionFamilies = map[string]string{
	".mkv": "Video file", ".mp4": "Video file", ".avi": "Video file",
	".mov": "Video file", ".wmv": "Video file", ".webm": "Video file",

	".zip": "Archive", ".tar": "Archive", ".gz": "Archive", ".tgz": "Archive",
	".bz2": "Archive", ".xz": "Archive", ".rar": "Archive", ".7z": "Archive",

	".dmg": "Disk image", ".iso": "Disk image", ".img": "Disk image",

	".pkg": "Installer", ".mpkg": "Installer", ".msi": "Installer",
	".exe": "Installer", ".deb": "Installer", ".rpm": "Installer",

	".pdf": "PDF document",
}

// extensionFamily labels a file by its extension family.
func extensionFamily(name string) string {
	if family, ok := extensionFamilies[strings.ToLower(filepath.Ext(name))]; ok {
		return family
	}
	return "Large file"
}

// deriveOwner turns a directory name into a display label for the
// owning application. It is a label, not a key back into the index.
func deriveOwner(name string) string {
	name = strings.TrimPrefix(name, ".")

	// Reverse-domain identifiers read best by their final segment.
	if strings.Count(name, ".") >= 2 {
		if segment := name[strings.LastIndex(name, ".")+1:]; segment != "" {
			name = segment
		}
	}

	if name == "" {
		return "Unknown"
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// appSupportRule reports unmatched app-support directories as
// leftovers, with a stale-flavored label once they pass the age
// threshold. Matched directories belong to live software.
func appSupportRule(t config.Thresholds) RuleFunc {
	return func(e Entry, installed bool) (Disposition, bool) {
		if installed {
			return Disposition{}, false
		}
		owner := deriveOwner(e.Name)
		if e.AgeDays > t.StaleAgeDays {
			owner += " (stale)"
		}
		return Disposition{Category: report.CategoryLeftover, Owner: owner}, true
	}
}

// cacheRule: caches of installed software are reclaimable as cache;
// caches of unknown software are leftovers.
func cacheRule(config.Thresholds) RuleFunc {
	return func(e Entry, installed bool) (Disposition, bool) {
		owner := deriveOwner(e.Name)
		if installed {
			return Disposition{Category: report.CategoryCache, Owner: owner}, true
		}
		return Disposition{Category: report.CategoryLeftover, Owner: owner}, true
	}
}

// staleOrLeftoverRule covers saved state and logs: unmatched entries
// are leftovers, matched ones only surface once untouched past the
// threshold.
func staleOrLeftoverRule(t config.Thresholds) RuleFunc {
	return func(e Entry, installed bool) (Disposition, bool) {
		owner := deriveOwner(e.Name)
		if !installed {
			return Disposition{Category: report.CategoryLeftover, Owner: owner}, true
		}
		if e.AgeDays > t.StaleAgeDays {
			return Disposition{Category: report.CategoryStale, Owner: owner}, true
		}
		return Disposition{}, false
	}
}

// leftoverOnlyRule covers preferences, containers and /usr/local:
// matched entries are never reported.
func leftoverOnlyRule(config.Thresholds) RuleFunc {
	return func(e Entry, installed bool) (Disposition, bool) {
		if installed {
			return Disposition{}, false
		}
		return Disposition{Category: report.CategoryLeftover, Owner: deriveOwner(e.Name)}, true
	}
}

// dotfileRule implements the asymmetric dotfile policy: unmatched
// entries surface when old, or when fresh but over the large floor;
// matched entries only when both old and over the stale floor. The
// asymmetry is intentional and preserved as-is.
func dotfileRule(t config.Thresholds) RuleFunc {
	return func(e Entry, installed bool) (Disposition, bool) {
		sizeMB := config.SizeMB(e.SizeKB) / 1024
		owner := deriveOwner(e.Name)

		if !installed {
			if e.AgeDays > t.StaleAgeDays {
				return Disposition{Category: report.CategoryLeftover, Owner: owner}, true
			}
			if sizeMB > t.DotfileLargeMB {
				return Disposition{Category: report.CategoryLeftover, Owner: owner}, true
			}
			return Disposition{}, false
		}

		if e.AgeDays > t.StaleAgeDays && sizeMB > t.DotfileStaleMB {
			return Disposition{Category: report.CategoryStale, Owner: owner}, true
		}
		return Disposition{}, false
	}
}

// devCacheRule reports fixed developer caches unconditionally,
// labeled by tool name.
func devCacheRule(config.Thresholds) RuleFunc {
	return func(e Entry, installed bool) (Disposition, bool) {
		return Disposition{Category: report.CategoryCache, Owner: e.Tag + " cache"}, true
	}
}

// downloadsRule covers both Downloads bands: files over the large
// threshold are flagged for size alone; files in the 1 MB..large band
// only when old. The bands are mutually exclusive so a file is never
// double-reported.
func downloadsRule(t config.Thresholds) RuleFunc {
	return func(e Entry, installed bool) (Disposition, bool) {
		sizeMB := config.SizeMB(e.SizeKB) / 1024

		if sizeMB > t.DownloadsLargeMB {
			return Disposition{Category: report.CategoryLarge, Owner: extensionFamily(e.Name)}, true
		}
		if sizeMB > t.DownloadsOldMinMB && e.AgeDays > t.StaleAgeDays {
			return Disposition{Category: report.CategoryStale, Owner: "Old download"}, true
		}
		return Disposition{}, false
	}
}

// homeFolderRule applies the tiered home-directory policy. Empty and
// near-empty folders always surface at a nominal size; beyond that the
// size and age tiers decide.
func homeFolderRule(t config.Thresholds) RuleFunc {
	return func(e Entry, installed bool) (Disposition, bool) {
		if visibleChildren(e.Path) <= 1 {
			return Disposition{
				Category:  report.CategoryStale,
				Owner:     "Empty or near-empty folder",
				NominalMB: nominalNearEmptyMB,
			}, true
		}

		sizeMB := config.SizeMB(e.SizeKB) / 1024
		if sizeMB > t.HomeLargeMB {
			if e.AgeDays > t.StaleAgeDays {
				return Disposition{Category: report.CategoryStale, Owner: "Large unused folder"}, true
			}
			return Disposition{Category: report.CategoryLarge, Owner: "Large folder"}, true
		}
		if sizeMB > t.HomeStaleMinMB && e.AgeDays > t.StaleAgeDays {
			return Disposition{Category: report.CategoryStale, Owner: "Unused folder"}, true
		}
		return Disposition{}, false
	}
}

package scanner

import (
	"strings"

	"github.com/fenilsonani/appsweep/internal/config"
	"github.com/fenilsonani/appsweep/internal/platform"
)

type enumMode int

const (
	// modeChildren enumerates the immediate children of Root.
	modeChildren enumMode = iota
	// modeFilesToDepth enumerates regular files down to MaxDepth.
	modeFilesToDepth
	// modeFixedPaths treats each fixed path as its own entry.
	modeFixedPaths
)

// Location is one probe root plus its policy: what to enumerate, what
// to always skip, the size floor, and the disposition rule.
type Location struct {
	Name     string
	Root     string
	Mode     enumMode
	MaxDepth int

	Exclude         map[string]struct{}
	ExcludePrefixes []string
	Filter          func(name string, isDir bool) bool

	FloorMB  float64
	Fixed    []platform.DevCache
	Classify RuleFunc
}

// excluded reports whether a name is on the location's skip list.
func (l *Location) excluded(name string) bool {
	if _, ok := l.Exclude[name]; ok {
		return true
	}
	lower := strings.ToLower(name)
	for _, prefix := range l.ExcludePrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

func nameSet(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// System-owned names skipped per location. These are OS or vendor
// directories that correlate with nothing the user installed.
var (
	appSupportExclusions = nameSet(
		"Apple", "AddressBook", "CallHistoryDB", "CloudDocs",
		"CrashReporter", "FileProvider", "iCloud", "Knowledge",
		"MobileSync", "SyncServices", "icdd",
	)

	cacheExclusions = nameSet(
		"Apple", "CloudKit", "FamilyCircle", "GeoServices",
		"Cleanup At Startup", "TemporaryItems", ".DS_Store",
	)

	logExclusions = nameSet(
		"Apple", "Bluetooth", "CrashReporter", "DiagnosticReports",
	)

	// Shell and tooling dotfiles the user always wants intact.
	dotfileAllowlist = nameSet(
		".ssh", ".gnupg", ".gitconfig", ".gitignore_global",
		".zshrc", ".zshenv", ".zprofile", ".zsh_history", ".zsh_sessions",
		".bashrc", ".bash_profile", ".bash_history", ".profile",
		".vim", ".vimrc", ".viminfo",
		".CFUserTextEncoding", ".DS_Store", ".Trash", ".localized",
	)

	localPrefixExclusions = nameSet(
		"bin", "etc", "include", "lib", "libexec", "man", "opt",
		"sbin", "share", "var", "Cellar", "Caskroom", "Homebrew",
		"Frameworks",
	)

	standardHomeFolders = nameSet(
		"Applications", "Desktop", "Documents", "Downloads", "Library",
		"Movies", "Music", "Pictures", "Public",
	)
)

// BuildLocations assembles the probe-location table for this run.
// Order here fixes the order of the final report.
func BuildLocations(cfg *config.Config, info *platform.Info) []Location {
	t := cfg.Thresholds
	var locations []Location

	if cfg.Locations.AppSupport {
		locations = append(locations, Location{
			Name:            "application support",
			Root:            info.AppSupportDir,
			Exclude:         appSupportExclusions,
			ExcludePrefixes: []string{"com.apple."},
			Classify:        appSupportRule(t),
		})
	}

	if cfg.Locations.Caches {
		locations = append(locations, Location{
			Name:            "caches",
			Root:            info.CachesDir,
			Exclude:         cacheExclusions,
			ExcludePrefixes: []string{"com.apple."},
			FloorMB:         float64(t.CacheFloorMB),
			Classify:        cacheRule(t),
		})
	}

	if cfg.Locations.SavedState {
		locations = append(locations, Location{
			Name:     "saved application state",
			Root:     info.SavedStateDir,
			Classify: staleOrLeftoverRule(t),
		})
	}

	if cfg.Locations.Logs {
		locations = append(locations, Location{
			Name:            "logs",
			Root:            info.LogsDir,
			Exclude:         logExclusions,
			ExcludePrefixes: []string{"com.apple."},
			Classify:        staleOrLeftoverRule(t),
		})
	}

	if cfg.Locations.Preferences {
		locations = append(locations, Location{
			Name:     "preferences",
			Root:     info.PreferencesDir,
			Filter:   func(name string, isDir bool) bool { return isDir },
			Classify: leftoverOnlyRule(t),
		})
	}

	if cfg.Locations.Containers {
		locations = append(locations, Location{
			Name:            "containers",
			Root:            info.ContainersDir,
			ExcludePrefixes: []string{"com.apple."},
			FloorMB:         float64(t.ContainerFloorMB),
			Classify:        leftoverOnlyRule(t),
		})
	}

	if cfg.Locations.GroupContainers {
		locations = append(locations, Location{
			Name:            "group containers",
			Root:            info.GroupContainersDir,
			ExcludePrefixes: []string{"group.com.apple.", "com.apple."},
			FloorMB:         float64(t.ContainerFloorMB),
			Classify:        leftoverOnlyRule(t),
		})
	}

	if cfg.Locations.Dotfiles {
		locations = append(locations, Location{
			Name:    "dotfiles",
			Root:    info.HomeDir,
			Exclude: dotfileAllowlist,
			Filter: func(name string, isDir bool) bool {
				return strings.HasPrefix(name, ".")
			},
			Classify: dotfileRule(t),
		})
	}

	if cfg.Locations.DevCaches {
		locations = append(locations, Location{
			Name:     "developer caches",
			Mode:     modeFixedPaths,
			Fixed:    info.DevCaches,
			Classify: devCacheRule(t),
		})
	}

	if cfg.Locations.Downloads {
		locations = append(locations, Location{
			Name:     "downloads",
			Root:     info.DownloadsDir,
			Mode:     modeFilesToDepth,
			MaxDepth: 2,
			Classify: downloadsRule(t),
		})
	}

	if cfg.Locations.LocalPrefix {
		locations = append(locations, Location{
			Name:     "local prefix",
			Root:     info.LocalPrefixDir,
			Exclude:  localPrefixExclusions,
			Classify: leftoverOnlyRule(t),
		})
	}

	if cfg.Locations.HomeFolders {
		locations = append(locations, Location{
			Name:    "home folders",
			Root:    info.HomeDir,
			Exclude: standardHomeFolders,
			Filter: func(name string, isDir bool) bool {
				return isDir && !strings.HasPrefix(name, ".")
			},
			Classify: homeFolderRule(t),
		})
	}

	return locations
}

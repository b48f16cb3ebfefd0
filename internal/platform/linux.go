package platform

import (
	"os"
	"path/filepath"
)

// getLinuxInfo returns platform-specific information for Linux.
// XDG equivalents stand in for the macOS Library layout.
func getLinuxInfo(homeDir, username string) *Info {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = filepath.Join(homeDir, ".local/share")
	}
	cacheHome := os.Getenv("XDG_CACHE_HOME")
	if cacheHome == "" {
		cacheHome = filepath.Join(homeDir, ".cache")
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(homeDir, ".config")
	}

	return &Info{
		OS:       Linux,
		HomeDir:  homeDir,
		Username: username,

		AppSupportDir:      dataHome,
		CachesDir:          cacheHome,
		SavedStateDir:      filepath.Join(dataHome, "recently-used.xbel.d"),
		LogsDir:            filepath.Join(homeDir, ".local/state"),
		PreferencesDir:     configHome,
		ContainersDir:      filepath.Join(homeDir, ".var/app"),
		GroupContainersDir: filepath.Join(dataHome, "flatpak"),
		DownloadsDir:       filepath.Join(homeDir, "Downloads"),

		LocalPrefixDir: "/usr/local",

		AppInstallDirs: []string{
			"/usr/share/applications",
			"/usr/local/share/applications",
			filepath.Join(dataHome, "applications"),
		},

		DevCaches: []DevCache{
			{filepath.Join(cacheHome, "go-build"), "Go build"},
			{filepath.Join(cacheHome, "pip"), "pip"},
			{filepath.Join(cacheHome, "yarn"), "Yarn"},
			{filepath.Join(homeDir, ".npm"), "npm"},
			{filepath.Join(homeDir, ".gradle/caches"), "Gradle"},
			{filepath.Join(homeDir, ".m2/repository"), "Maven"},
			{filepath.Join(homeDir, ".cargo/registry"), "Cargo"},
		},
	}
}

package platform

import "path/filepath"

// getMacOSInfo returns platform-specific information for macOS
func getMacOSInfo(homeDir, username string) *Info {
	return &Info{
		OS:       MacOS,
		HomeDir:  homeDir,
		Username: username,

		AppSupportDir:      filepath.Join(homeDir, "Library/Application Support"),
		CachesDir:          filepath.Join(homeDir, "Library/Caches"),
		SavedStateDir:      filepath.Join(homeDir, "Library/Saved Application State"),
		LogsDir:            filepath.Join(homeDir, "Library/Logs"),
		PreferencesDir:     filepath.Join(homeDir, "Library/Preferences"),
		ContainersDir:      filepath.Join(homeDir, "Library/Containers"),
		GroupContainersDir: filepath.Join(homeDir, "Library/Group Containers"),
		DownloadsDir:       filepath.Join(homeDir, "Downloads"),

		LocalPrefixDir: "/usr/local",

		AppInstallDirs: []string{
			"/Applications",
			"/Applications/Utilities",
			"/System/Applications",
			filepath.Join(homeDir, "Applications"),
		},

		DevCaches: []DevCache{
			{filepath.Join(homeDir, "Library/Developer/Xcode/DerivedData"), "Xcode"},
			{filepath.Join(homeDir, "Library/Developer/CoreSimulator/Caches"), "iOS Simulator"},
			{filepath.Join(homeDir, "Library/Caches/CocoaPods"), "CocoaPods"},
			{filepath.Join(homeDir, "Library/Caches/go-build"), "Go build"},
			{filepath.Join(homeDir, "Library/Caches/pip"), "pip"},
			{filepath.Join(homeDir, ".npm"), "npm"},
			{filepath.Join(homeDir, ".yarn/cache"), "Yarn"},
			{filepath.Join(homeDir, ".gradle/caches"), "Gradle"},
			{filepath.Join(homeDir, ".m2/repository"), "Maven"},
			{filepath.Join(homeDir, ".cargo/registry"), "Cargo"},
		},
	}
}

package config

// GetDefault returns the default configuration
func GetDefault() *Config {
	return &Config{
		Locations: Locations{
			AppSupport:      true,
			Caches:          true,
			SavedState:      true,
			Logs:            true,
			Preferences:     true,
			Containers:      true,
			GroupContainers: true,
			Dotfiles:        true,
			DevCaches:       true,
			Downloads:       true,
			LocalPrefix:     true,
			HomeFolders:     true,

			HomebrewEstimate: true,
		},
		Thresholds: Thresholds{
			StaleAgeDays:      365,
			CacheFloorMB:      1,
			ContainerFloorMB:  5,
			DownloadsLargeMB:  50,
			DownloadsOldMinMB: 1,
			DotfileLargeMB:    10,
			DotfileStaleMB:    5,
			HomeLargeMB:       100,
			HomeStaleMinMB:    1,
		},
		Scan: Scan{
			Workers:             0, // derive from CPU count
			EntryTimeoutSeconds: 20,
		},
	}
}

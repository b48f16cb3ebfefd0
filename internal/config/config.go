package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/fenilsonani/appsweep/pkg/utils"
)

// Config represents the application configuration
type Config struct {
	Locations  Locations  `yaml:"locations"`
	Thresholds Thresholds `yaml:"thresholds"`
	Scan       Scan       `yaml:"scan"`
	Verbose    bool       `yaml:"verbose"`
}

// Locations toggles individual probe locations.
type Locations struct {
	AppSupport      bool `yaml:"app_support"`
	Caches          bool `yaml:"caches"`
	SavedState      bool `yaml:"saved_state"`
	Logs            bool `yaml:"logs"`
	Preferences     bool `yaml:"preferences"`
	Containers      bool `yaml:"containers"`
	GroupContainers bool `yaml:"group_containers"`
	Dotfiles        bool `yaml:"dotfiles"`
	DevCaches       bool `yaml:"dev_caches"`
	Downloads       bool `yaml:"downloads"`
	LocalPrefix     bool `yaml:"local_prefix"`
	HomeFolders     bool `yaml:"home_folders"`

	// HomebrewEstimate folds the package manager's own cleanup
	// estimate into the report as a synthetic item.
	HomebrewEstimate bool `yaml:"homebrew_estimate"`
}

// SizeMB is a megabyte quantity. In YAML it accepts either a bare
// number of megabytes or a human-readable string like "50MB" or "1.5GB".
type SizeMB float64

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *SizeMB) UnmarshalYAML(value *yaml.Node) error {
	var mb float64
	if err := value.Decode(&mb); err == nil {
		*s = SizeMB(mb)
		return nil
	}

	var raw string
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("size must be a number of MB or a string like \"50MB\"")
	}
	bytes, err := utils.ParseSize(raw)
	if err != nil {
		return err
	}
	*s = SizeMB(float64(bytes) / float64(utils.MB))
	return nil
}

// Thresholds defines the age boundary and per-location size floors.
// Floors are in megabytes; items resolving below a floor are dropped.
type Thresholds struct {
	StaleAgeDays      int    `yaml:"stale_age_days"`
	CacheFloorMB      SizeMB `yaml:"cache_floor_mb"`
	ContainerFloorMB  SizeMB `yaml:"container_floor_mb"`
	DownloadsLargeMB  SizeMB `yaml:"downloads_large_mb"`
	DownloadsOldMinMB SizeMB `yaml:"downloads_old_min_mb"`
	DotfileLargeMB    SizeMB `yaml:"dotfile_large_mb"`
	DotfileStaleMB    SizeMB `yaml:"dotfile_stale_mb"`
	HomeLargeMB       SizeMB `yaml:"home_large_mb"`
	HomeStaleMinMB    SizeMB `yaml:"home_stale_min_mb"`
}

// Scan controls the worker pool and per-entry measurement budget.
type Scan struct {
	Workers             int `yaml:"workers"`               // 0 = derive from CPU count
	EntryTimeoutSeconds int `yaml:"entry_timeout_seconds"` // budget for one recursive size
}

// Load loads configuration from a file
func Load(configPath string) (*Config, error) {
	// If config doesn't exist, return default config
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return GetDefault(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Save saves configuration to a file
func Save(config *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Thresholds.StaleAgeDays <= 0 {
		return fmt.Errorf("stale age threshold must be > 0 days")
	}

	floors := map[string]SizeMB{
		"cache_floor_mb":       c.Thresholds.CacheFloorMB,
		"container_floor_mb":   c.Thresholds.ContainerFloorMB,
		"downloads_large_mb":   c.Thresholds.DownloadsLargeMB,
		"downloads_old_min_mb": c.Thresholds.DownloadsOldMinMB,
		"dotfile_large_mb":     c.Thresholds.DotfileLargeMB,
		"dotfile_stale_mb":     c.Thresholds.DotfileStaleMB,
		"home_large_mb":        c.Thresholds.HomeLargeMB,
		"home_stale_min_mb":    c.Thresholds.HomeStaleMinMB,
	}
	for name, floor := range floors {
		if floor < 0 {
			return fmt.Errorf("%s must be >= 0", name)
		}
	}

	if c.Thresholds.DownloadsOldMinMB > c.Thresholds.DownloadsLargeMB {
		return fmt.Errorf("downloads_old_min_mb must not exceed downloads_large_mb")
	}

	if c.Scan.Workers < 0 {
		return fmt.Errorf("workers must be >= 0")
	}
	if c.Scan.EntryTimeoutSeconds < 0 {
		return fmt.Errorf("entry timeout must be >= 0")
	}

	return nil
}

// GetConfigPath returns the default config path
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	configDir := filepath.Join(homeDir, ".config", "appsweep")
	return filepath.Join(configDir, "config.yaml"), nil
}

// EnsureConfigExists creates a default config file if it doesn't exist
func EnsureConfigExists() (string, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := Save(GetDefault(), configPath); err != nil {
			return "", err
		}
	}

	return configPath, nil
}

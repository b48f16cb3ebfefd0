package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetDefaultIsValid(t *testing.T) {
	cfg := GetDefault()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	if cfg.Thresholds.StaleAgeDays != 365 {
		t.Errorf("StaleAgeDays = %d, want 365", cfg.Thresholds.StaleAgeDays)
	}
	if cfg.Thresholds.CacheFloorMB != 1 {
		t.Errorf("CacheFloorMB = %v, want 1", cfg.Thresholds.CacheFloorMB)
	}
	if cfg.Thresholds.ContainerFloorMB != 5 {
		t.Errorf("ContainerFloorMB = %v, want 5", cfg.Thresholds.ContainerFloorMB)
	}
	if cfg.Thresholds.DownloadsLargeMB != 50 {
		t.Errorf("DownloadsLargeMB = %v, want 50", cfg.Thresholds.DownloadsLargeMB)
	}
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Thresholds.StaleAgeDays != 365 {
		t.Errorf("missing file should yield defaults, got %+v", cfg.Thresholds)
	}
}

func TestSaveAndLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "appsweep", "config.yaml")

	cfg := GetDefault()
	cfg.Thresholds.StaleAgeDays = 180
	cfg.Locations.Downloads = false
	cfg.Scan.Workers = 8

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Thresholds.StaleAgeDays != 180 {
		t.Errorf("StaleAgeDays = %d, want 180", loaded.Thresholds.StaleAgeDays)
	}
	if loaded.Locations.Downloads {
		t.Error("Downloads toggle should survive roundtrip as false")
	}
	if loaded.Scan.Workers != 8 {
		t.Errorf("Workers = %d, want 8", loaded.Scan.Workers)
	}
}

func TestLoadAcceptsHumanReadableSizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
thresholds:
  stale_age_days: 365
  cache_floor_mb: "2.5MB"
  downloads_large_mb: "1.5GB"
  downloads_old_min_mb: 1
  home_large_mb: "0.25GB"
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Thresholds.CacheFloorMB != 2.5 {
		t.Errorf("CacheFloorMB = %v, want 2.5", cfg.Thresholds.CacheFloorMB)
	}
	if cfg.Thresholds.DownloadsLargeMB != 1536 {
		t.Errorf("DownloadsLargeMB = %v, want 1536", cfg.Thresholds.DownloadsLargeMB)
	}
	if cfg.Thresholds.DownloadsOldMinMB != 1 {
		t.Errorf("DownloadsOldMinMB = %v, want 1", cfg.Thresholds.DownloadsOldMinMB)
	}
	if cfg.Thresholds.HomeLargeMB != 256 {
		t.Errorf("HomeLargeMB = %v, want 256", cfg.Thresholds.HomeLargeMB)
	}
}

func TestLoadRejectsUnparseableSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
thresholds:
  stale_age_days: 365
  cache_floor_mb: "lots"
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should fail on an unparseable size string")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("locations: [not a map"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should fail on malformed yaml")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults ok", func(*Config) {}, false},
		{"zero age", func(c *Config) { c.Thresholds.StaleAgeDays = 0 }, true},
		{"negative floor", func(c *Config) { c.Thresholds.CacheFloorMB = -1 }, true},
		{"old band above large band", func(c *Config) { c.Thresholds.DownloadsOldMinMB = 100 }, true},
		{"negative workers", func(c *Config) { c.Scan.Workers = -2 }, true},
		{"negative timeout", func(c *Config) { c.Scan.EntryTimeoutSeconds = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefault()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

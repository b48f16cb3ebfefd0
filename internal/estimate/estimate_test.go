package estimate

import (
	"errors"
	"strings"
	"testing"

	"github.com/fenilsonani/appsweep/internal/report"
)

func TestParseSizeMB(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		want    float64
		wantErr bool
	}{
		{"gigabytes", "This operation would free approximately 2.3GB of disk space.", 2355.2, false},
		{"megabytes", "==> This operation would free approximately 512MB of disk space.", 512, false},
		{"spaced unit", "would free approximately 1.5 GB of disk space", 1536, false},
		{"kilobytes", "free approximately 512KB", 0.5, false},
		{"terabytes", "free approximately 1TB", 1024 * 1024, false},
		{"lowercase", "free approximately 100mb", 100, false},
		{"first figure wins", "free 2GB, then maybe 9GB", 2048, false},
		{"no figure", "Nothing to clean up.", 0, true},
		{"empty", "", 0, true},
		{"number without unit", "removed 42 files", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSizeMB(tt.output)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSizeMB(%q) error = %v, wantErr %v", tt.output, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseSizeMB(%q) = %v, want %v", tt.output, got, tt.want)
			}
		})
	}
}

func TestParseSizeMBReturnsTypedError(t *testing.T) {
	_, err := ParseSizeMB("nothing here")

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error = %T, want *ParseError", err)
	}
	if !strings.Contains(parseErr.Error(), "no size figure") {
		t.Errorf("unexpected message: %v", parseErr)
	}
}

func TestItemFromOutputHonorsFloor(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   bool
	}{
		{"usable figure", "would free approximately 2.3GB of disk space", true},
		{"zero figure", "would free approximately 0.0MB of disk space", false},
		{"sub-floor figure", "would free approximately 1KB of disk space", false},
		{"no figure", "Nothing to clean up.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, ok := itemFromOutput(tt.output)
			if ok != tt.want {
				t.Fatalf("itemFromOutput(%q) ok = %v, want %v", tt.output, ok, tt.want)
			}
			if ok && item.SizeMB < report.MinItemMB {
				t.Errorf("item below floor: %v MB", item.SizeMB)
			}
		})
	}
}

func TestSyntheticItemShape(t *testing.T) {
	item := Item(2355.2)

	if item.Path != SentinelPath {
		t.Errorf("Path = %q, want the sentinel", item.Path)
	}
	if item.Category != report.CategoryCache {
		t.Errorf("Category = %s, want cache", item.Category)
	}
	if item.OwnerLabel != "Homebrew" {
		t.Errorf("OwnerLabel = %q, want Homebrew", item.OwnerLabel)
	}
	if item.ModifiedDate != report.NoDate {
		t.Errorf("ModifiedDate = %q, want %q", item.ModifiedDate, report.NoDate)
	}
	if item.SizeMB != 2355.2 {
		t.Errorf("SizeMB = %v, want 2355.2", item.SizeMB)
	}
}

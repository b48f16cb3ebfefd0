package appindex

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/fenilsonani/appsweep/internal/platform"
)

// Source contributes raw software-name tokens to the index.
// Contribute is a read-only query; an error or empty result just means
// the source is unavailable and the index gets a little sparser.
type Source interface {
	Name() string
	Contribute(ctx context.Context) ([]string, error)
}

// SpotlightSource discovers application bundles through the OS
// content-type search facility (mdfind on macOS), contributing both the
// bundle display name and its reverse-domain identifier.
type SpotlightSource struct{}

func (SpotlightSource) Name() string { return "spotlight" }

func (SpotlightSource) Contribute(ctx context.Context) ([]string, error) {
	cmd := exec.CommandContext(ctx, "mdfind", "kMDItemContentType == 'com.apple.application-bundle'")
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = nil

	if err := cmd.Run(); err != nil {
		return nil, err
	}

	var tokens []string
	for _, line := range strings.Split(out.String(), "\n") {
		bundlePath := strings.TrimSpace(line)
		if bundlePath == "" {
			continue
		}
		tokens = append(tokens, bundleDisplayName(bundlePath))
		if id := bundleIdentifier(ctx, bundlePath); id != "" {
			tokens = append(tokens, id)
		}
	}

	return tokens, nil
}

// bundleDisplayName strips the .app suffix from a bundle path's base name.
func bundleDisplayName(bundlePath string) string {
	return strings.TrimSuffix(filepath.Base(bundlePath), ".app")
}

// bundleIdentifier reads the reverse-domain identifier from the bundle's
// Spotlight metadata. Missing metadata yields an empty string, not an error.
func bundleIdentifier(ctx context.Context, bundlePath string) string {
	cmd := exec.CommandContext(ctx, "mdls", "-name", "kMDItemCFBundleIdentifier", "-raw", bundlePath)
	out, err := cmd.Output()
	if err != nil {
		return ""
	}
	id := strings.TrimSpace(string(out))
	if id == "(null)" {
		return ""
	}
	return id
}

// AppDirsSource lists well-known application install directories.
// It backstops the search facility when indexing is disabled or stale.
type AppDirsSource struct {
	Dirs []string
}

// NewAppDirsSource builds the static-directory source from platform info.
func NewAppDirsSource(info *platform.Info) *AppDirsSource {
	return &AppDirsSource{Dirs: info.AppInstallDirs}
}

func (*AppDirsSource) Name() string { return "app-dirs" }

func (s *AppDirsSource) Contribute(ctx context.Context) ([]string, error) {
	var tokens []string
	for _, dir := range s.Dirs {
		select {
		case <-ctx.Done():
			return tokens, ctx.Err()
		default:
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			continue // directory absent on this system
		}
		for _, entry := range entries {
			name := entry.Name()
			name = strings.TrimSuffix(name, ".app")
			name = strings.TrimSuffix(name, ".desktop")
			if name != "" && !strings.HasPrefix(name, ".") {
				tokens = append(tokens, name)
			}
		}
	}
	return tokens, nil
}

// ProcessSource contributes the basenames of currently running
// executables. It catches background and menu-bar agents that have no
// user-visible bundle.
type ProcessSource struct{}

func (ProcessSource) Name() string { return "processes" }

func (ProcessSource) Contribute(ctx context.Context) ([]string, error) {
	cmd := exec.CommandContext(ctx, "ps", "-axo", "comm=")
	out, err := cmd.Output()
	if err != nil {
		return nil, err
	}

	var tokens []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		tokens = append(tokens, filepath.Base(line))
	}
	return tokens, nil
}

package platform

import (
	"os/user"
	"runtime"
)

// Platform represents the operating system platform
type Platform string

const (
	MacOS   Platform = "darwin"
	Linux   Platform = "linux"
	Unknown Platform = "unknown"
)

// DevCache is a well-known developer tool cache location
type DevCache struct {
	Path string
	Tool string
}

// Info contains platform-specific information and paths.
// Every path is a probe-location root; the scanner never looks anywhere else.
type Info struct {
	OS       Platform
	HomeDir  string
	Username string

	// Per-user application data locations
	AppSupportDir      string
	CachesDir          string
	SavedStateDir      string
	LogsDir            string
	PreferencesDir     string
	ContainersDir      string
	GroupContainersDir string
	DownloadsDir       string

	// System-wide
	LocalPrefixDir string

	// Where application bundles or desktop entries live; used by the
	// installed-app index as a fallback when the search facility is down.
	AppInstallDirs []string

	// Fixed developer caches reported unconditionally
	DevCaches []DevCache
}

// Detect returns the current platform
func Detect() Platform {
	switch runtime.GOOS {
	case "darwin":
		return MacOS
	case "linux":
		return Linux
	default:
		return Unknown
	}
}

// GetInfo returns platform-specific information
func GetInfo() (*Info, error) {
	platform := Detect()

	currentUser, err := user.Current()
	if err != nil {
		return nil, err
	}

	homeDir := currentUser.HomeDir
	username := currentUser.Username

	switch platform {
	case MacOS:
		return getMacOSInfo(homeDir, username), nil
	case Linux:
		return getLinuxInfo(homeDir, username), nil
	default:
		return nil, ErrUnsupportedPlatform
	}
}

// Errors
var (
	ErrUnsupportedPlatform = &PlatformError{"unsupported platform"}
)

// PlatformError represents a platform-related error
type PlatformError struct {
	Message string
}

func (e *PlatformError) Error() string {
	return e.Message
}

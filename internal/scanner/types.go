package scanner

import (
	"time"

	"github.com/fenilsonani/appsweep/internal/report"
)

// sentinelAgeDays stands in for the age of an entry whose modification
// time cannot be resolved. A vanished entry degrades to "very old"
// instead of erroring.
const sentinelAgeDays = 36500

// nominalNearEmptyMB is the fixed size reported for empty or
// near-empty home folders, regardless of their measured size.
const nominalNearEmptyMB = 0.01

// Entry is one enumerated child of a probe location: the intermediate
// unit between filesystem enumeration and classification. Never exposed
// outside the scanner.
type Entry struct {
	Path    string
	Name    string
	SizeKB  int64
	ModTime time.Time
	AgeDays int
	IsDir   bool
	Tag     string // tool label for fixed developer-cache entries
}

// Disposition is a rule's verdict for one entry.
type Disposition struct {
	Category report.Category
	Owner    string
	// NominalMB, when positive, overrides the measured size and
	// bypasses the location floor.
	NominalMB float64
}

// RuleFunc combines the match verdict with the entry's size and age
// into a disposition. The second return value is false when the entry
// should not be reported.
type RuleFunc func(e Entry, installed bool) (Disposition, bool)

// ProgressFunc receives scan progress updates. Counts and sizes are
// running totals for the named location.
type ProgressFunc func(location, currentPath string, itemsFound int, totalSizeKB int64)

// Matcher answers whether a name correlates with installed software.
type Matcher interface {
	IsInstalled(name string) bool
}

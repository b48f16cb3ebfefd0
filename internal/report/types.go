// Package report defines the engine's output payload: the classified
// reclaim candidates and the run summary handed to renderers. Field
// names and category values are the contract downstream consumers
// depend on, so they never change casually.
package report

import "time"

// Category classifies a reclaim candidate.
type Category string

const (
	// CategoryLeftover is data attributable to software no longer
	// detected as installed.
	CategoryLeftover Category = "leftover"
	// CategoryCache is regenerable data of currently installed software.
	CategoryCache Category = "cache"
	// CategoryStale is data untouched beyond the age threshold.
	CategoryStale Category = "stale"
	// CategoryLarge is data flagged purely for absolute size.
	CategoryLarge Category = "large"
)

// NoDate is the ModifiedDate value for entries without a resolvable
// modification time.
const NoDate = "N/A"

// Item is one reclaim candidate. Immutable once emitted.
type Item struct {
	DisplayName  string   `json:"displayName" yaml:"displayName"`
	Path         string   `json:"path" yaml:"path"`
	SizeMB       float64  `json:"sizeMB" yaml:"sizeMB"`
	ModifiedDate string   `json:"modifiedDate" yaml:"modifiedDate"`
	Category     Category `json:"category" yaml:"category"`
	OwnerLabel   string   `json:"ownerLabel" yaml:"ownerLabel"`
}

// RunSummary carries aggregate disk totals and scan metadata.
// It is independent of the item collection.
type RunSummary struct {
	DiskTotalBytes int64     `json:"diskTotalBytes" yaml:"diskTotalBytes"`
	DiskUsedBytes  int64     `json:"diskUsedBytes" yaml:"diskUsedBytes"`
	DiskFreeBytes  int64     `json:"diskFreeBytes" yaml:"diskFreeBytes"`
	DiskUsedPct    float64   `json:"diskUsedPct" yaml:"diskUsedPct"`
	ScannedAt      time.Time `json:"scannedAt" yaml:"scannedAt"`
	IndexedApps    int       `json:"indexedApps" yaml:"indexedApps"`
	Warnings       []string  `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Payload is the complete engine output handed to a renderer.
type Payload struct {
	Items   []Item     `json:"items" yaml:"items"`
	Summary RunSummary `json:"summary" yaml:"summary"`
}

// TotalSizeMB sums the item sizes.
func (p *Payload) TotalSizeMB() float64 {
	var total float64
	for _, item := range p.Items {
		total += item.SizeMB
	}
	return total
}

// CountByCategory tallies items per category.
func (p *Payload) CountByCategory() map[Category]int {
	counts := make(map[Category]int)
	for _, item := range p.Items {
		counts[item.Category]++
	}
	return counts
}

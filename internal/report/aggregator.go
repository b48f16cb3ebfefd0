package report

import (
	"sort"
	"sync"
)

// MinItemMB is the global size floor: the final backstop after each
// location's own floor. Items resolving below ~5 KB are noise. Anything
// injected into a Payload from outside the aggregator must honor it too.
const MinItemMB = 0.005

// Aggregator is the single synchronized append path for scan workers.
// It drops sub-floor items, refuses duplicate absolute paths, and keeps
// enough ordering information to emit a deterministic collection no
// matter how the workers interleave.
type Aggregator struct {
	mu       sync.Mutex
	items    []orderedItem
	seen     map[string]struct{}
	warnings []string
}

type orderedItem struct {
	location int
	sequence int
	item     Item
}

// NewAggregator returns an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{seen: make(map[string]struct{})}
}

// Add appends item unless it falls below the global floor or its
// absolute path was already reported. location and sequence preserve
// per-location discovery order in the final collection.
func (a *Aggregator) Add(location, sequence int, absPath string, item Item) bool {
	if item.SizeMB < MinItemMB {
		return false
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if absPath != "" {
		if _, dup := a.seen[absPath]; dup {
			return false
		}
		a.seen[absPath] = struct{}{}
	}

	a.items = append(a.items, orderedItem{location: location, sequence: sequence, item: item})
	return true
}

// Warn records a non-fatal problem (an unreadable probe location) for
// the run summary.
func (a *Aggregator) Warn(message string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.warnings = append(a.warnings, message)
}

// Items returns the collection ordered by (location, discovery order).
func (a *Aggregator) Items() []Item {
	a.mu.Lock()
	defer a.mu.Unlock()

	sorted := make([]orderedItem, len(a.items))
	copy(sorted, a.items)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].location != sorted[j].location {
			return sorted[i].location < sorted[j].location
		}
		return sorted[i].sequence < sorted[j].sequence
	})

	items := make([]Item, len(sorted))
	for i, oi := range sorted {
		items[i] = oi.item
	}
	return items
}

// Warnings returns the recorded non-fatal problems in arrival order.
func (a *Aggregator) Warnings() []string {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]string, len(a.warnings))
	copy(out, a.warnings)
	return out
}

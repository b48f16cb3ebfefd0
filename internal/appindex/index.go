// Package appindex builds a normalized index of currently installed
// software from several discovery sources. The index is built once per
// run and is read-only afterwards, so it needs no locking during scans.
package appindex

import (
	"sort"
	"strings"
)

// Index is a deduplicated set of lowercase tokens naming installed
// software: short app names and dotted reverse-domain identifiers.
type Index struct {
	entries map[string]struct{}
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{entries: make(map[string]struct{})}
}

// Add inserts a token after normalizing it. Empty strings are ignored.
func (ix *Index) Add(token string) {
	token = Normalize(token)
	if token == "" {
		return
	}
	ix.entries[token] = struct{}{}
}

// Has reports whether the exact normalized token is present.
func (ix *Index) Has(token string) bool {
	_, ok := ix.entries[Normalize(token)]
	return ok
}

// ContainsSubstring reports whether s occurs inside any index entry.
// This is the deliberately loose lookup used by the weaker match layers.
func (ix *Index) ContainsSubstring(s string) bool {
	s = Normalize(s)
	if s == "" {
		return false
	}
	for entry := range ix.entries {
		if strings.Contains(entry, s) {
			return true
		}
	}
	return false
}

// Len returns the number of indexed tokens.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// Entries returns the indexed tokens in sorted order.
func (ix *Index) Entries() []string {
	out := make([]string, 0, len(ix.entries))
	for entry := range ix.entries {
		out = append(out, entry)
	}
	sort.Strings(out)
	return out
}

// Normalize lowercases and trims a raw token the way every index
// insertion and lookup does.
func Normalize(token string) string {
	return strings.ToLower(strings.TrimSpace(token))
}

// Package match decides whether a directory or file name correlates
// with installed software. Matching is layered: each strategy is looser
// than the one before it, and the first positive verdict wins. Layers
// only ever add recall, so their order is load-bearing.
package match

import (
	"strings"

	"github.com/fenilsonani/appsweep/internal/appindex"
)

// Strategy is one layer of the name-matching heuristic.
type Strategy interface {
	Name() string
	Match(name string, index *appindex.Index) bool
}

// Matcher evaluates strategies in order, stopping at the first match.
type Matcher struct {
	index      *appindex.Index
	strategies []Strategy
}

// New returns a matcher over the given index with the standard layers.
func New(index *appindex.Index) *Matcher {
	return &Matcher{
		index: index,
		strategies: []Strategy{
			exactStrategy{},
			dottedIdentifierStrategy{},
			tokenSubstringStrategy{},
			hyphenPrefixStrategy{},
		},
	}
}

// IsInstalled reports whether name correlates with an index entry.
func (m *Matcher) IsInstalled(name string) bool {
	_, ok := m.Explain(name)
	return ok
}

// Explain returns the name of the strategy that matched, for auditing.
func (m *Matcher) Explain(name string) (string, bool) {
	name = appindex.Normalize(name)
	if name == "" {
		return "", false
	}
	for _, strategy := range m.strategies {
		if strategy.Match(name, m.index) {
			return strategy.Name(), true
		}
	}
	return "", false
}

// exactStrategy: the lowercased name equals an index entry.
type exactStrategy struct{}

func (exactStrategy) Name() string { return "exact" }

func (exactStrategy) Match(name string, index *appindex.Index) bool {
	return index.Has(name)
}

// dottedIdentifierStrategy treats dotted names as reverse-domain
// identifiers: the whole string as a substring of an entry, the final
// segment as an exact entry, or the pre-dot prefix as a substring.
type dottedIdentifierStrategy struct{}

func (dottedIdentifierStrategy) Name() string { return "dotted-identifier" }

func (dottedIdentifierStrategy) Match(name string, index *appindex.Index) bool {
	if !strings.Contains(name, ".") {
		return false
	}

	if index.ContainsSubstring(name) {
		return true
	}

	lastDot := strings.LastIndex(name, ".")
	if segment := name[lastDot+1:]; len(segment) >= 3 && index.Has(segment) {
		return true
	}

	if prefix := name[:lastDot]; prefix != "" && index.ContainsSubstring(prefix) {
		return true
	}

	return false
}

// tokenSubstringStrategy matches any space-separated word of length >= 4
// as a substring of an entry. Shorter words produce too many false
// positives from generic fragments.
type tokenSubstringStrategy struct{}

func (tokenSubstringStrategy) Name() string { return "token-substring" }

func (tokenSubstringStrategy) Match(name string, index *appindex.Index) bool {
	for _, word := range strings.Fields(name) {
		if len(word) >= 4 && index.ContainsSubstring(word) {
			return true
		}
	}
	return false
}

// hyphenPrefixStrategy matches the portion before the first hyphen,
// catching vendor-prefixed directory names like "spotify-helper".
type hyphenPrefixStrategy struct{}

func (hyphenPrefixStrategy) Name() string { return "hyphen-prefix" }

func (hyphenPrefixStrategy) Match(name string, index *appindex.Index) bool {
	prefix, _, found := strings.Cut(name, "-")
	if !found || prefix == name || len(prefix) < 3 {
		return false
	}
	return index.ContainsSubstring(prefix)
}

// Package estimate folds a package manager's own cleanup estimate into
// the report as one synthetic cache item. Everything here degrades to
// "no item": a missing tool or unparseable output is not an error.
package estimate

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/fenilsonani/appsweep/internal/report"
)

// SentinelPath marks the synthetic item as not deletable by path.
// A consumer generating cleanup commands must special-case it and emit
// the tool's own cleanup invocation instead of a path removal.
const SentinelPath = "homebrew://cleanup"

// ParseError reports that the tool's output did not contain a
// recognizable size figure.
type ParseError struct {
	Output string
}

func (e *ParseError) Error() string {
	out := e.Output
	if len(out) > 120 {
		out = out[:120] + "..."
	}
	return fmt.Sprintf("no size figure in cleanup output: %q", out)
}

// sizePattern extracts a number-plus-unit figure like "2.3GB" or
// "512 MB" from free-form tool output.
var sizePattern = regexp.MustCompile(`(?i)([0-9]+(?:\.[0-9]+)?)\s*(KB|MB|GB|TB)`)

// ParseSizeMB extracts the first size figure and normalizes it to
// megabytes.
func ParseSizeMB(output string) (float64, error) {
	m := sizePattern.FindStringSubmatch(output)
	if m == nil {
		return 0, &ParseError{Output: output}
	}

	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, &ParseError{Output: output}
	}

	switch strings.ToUpper(m[2]) {
	case "KB":
		return value / 1024, nil
	case "MB":
		return value, nil
	case "GB":
		return value * 1024, nil
	case "TB":
		return value * 1024 * 1024, nil
	}
	return 0, &ParseError{Output: output}
}

// Homebrew queries `brew cleanup` in dry-run mode and converts its
// reclaimable-space figure into a synthetic item.
type Homebrew struct{}

// Available reports whether the brew binary is on PATH.
func (Homebrew) Available() bool {
	_, err := exec.LookPath("brew")
	return err == nil
}

// Estimate runs the dry-run query and builds the synthetic item.
// The second return value is false when no item should be injected.
func (h Homebrew) Estimate(ctx context.Context) (report.Item, bool) {
	if !h.Available() {
		return report.Item{}, false
	}

	cmd := exec.CommandContext(ctx, "brew", "cleanup", "--dry-run")
	out, err := cmd.CombinedOutput()
	if err != nil && len(out) == 0 {
		log.Debug("brew cleanup query failed", "err", err)
		return report.Item{}, false
	}

	return itemFromOutput(string(out))
}

// itemFromOutput parses the dry-run output into the synthetic item.
// Unparseable output and figures under the global reporting floor
// inject nothing.
func itemFromOutput(output string) (report.Item, bool) {
	sizeMB, err := ParseSizeMB(output)
	if err != nil {
		log.Debug("brew estimate unusable", "err", err)
		return report.Item{}, false
	}
	if sizeMB < report.MinItemMB {
		return report.Item{}, false
	}
	return Item(sizeMB), true
}

// Item builds the synthetic cache item for a given estimate.
func Item(sizeMB float64) report.Item {
	return report.Item{
		DisplayName:  "Homebrew cleanup",
		Path:         SentinelPath,
		SizeMB:       sizeMB,
		ModifiedDate: report.NoDate,
		Category:     report.CategoryCache,
		OwnerLabel:   "Homebrew",
	}
}

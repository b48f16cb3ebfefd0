package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/fenilsonani/appsweep/pkg/utils"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatYAML    OutputFormat = "yaml"
	FormatSummary OutputFormat = "summary"
)

// Reporter renders a payload in one of the supported formats.
type Reporter struct {
	writer io.Writer
	format OutputFormat
}

// New creates a new Reporter
func New(writer io.Writer, format OutputFormat) *Reporter {
	return &Reporter{
		writer: writer,
		format: format,
	}
}

// Report renders the payload.
func (r *Reporter) Report(payload *Payload) error {
	switch r.format {
	case FormatTable:
		return r.reportTable(payload)
	case FormatJSON:
		return r.reportJSON(payload)
	case FormatYAML:
		return r.reportYAML(payload)
	case FormatSummary:
		return r.reportSummary(payload)
	default:
		return fmt.Errorf("unsupported format: %s", r.format)
	}
}

func (r *Reporter) reportSummary(payload *Payload) error {
	s := payload.Summary

	fmt.Fprintf(r.writer, "=== Reclaim Report ===\n")
	fmt.Fprintf(r.writer, "Scanned: %s\n", s.ScannedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(r.writer, "Disk: %s used of %s (%.1f%%), %s free\n",
		utils.FormatBytes(s.DiskUsedBytes),
		utils.FormatBytes(s.DiskTotalBytes),
		s.DiskUsedPct,
		utils.FormatBytes(s.DiskFreeBytes))
	fmt.Fprintf(r.writer, "Installed apps indexed: %d\n", s.IndexedApps)
	fmt.Fprintf(r.writer, "\nCandidates: %d items, %.2f MB reclaimable\n",
		len(payload.Items), payload.TotalSizeMB())

	fmt.Fprintf(r.writer, "\nBreakdown by Category:\n")
	counts := payload.CountByCategory()
	for _, category := range []Category{CategoryLeftover, CategoryCache, CategoryStale, CategoryLarge} {
		if counts[category] == 0 {
			continue
		}
		var sizeMB float64
		for _, item := range payload.Items {
			if item.Category == category {
				sizeMB += item.SizeMB
			}
		}
		fmt.Fprintf(r.writer, "  %-9s %d items, %.2f MB\n", category, counts[category], sizeMB)
	}

	if len(s.Warnings) > 0 {
		fmt.Fprintf(r.writer, "\nWarnings:\n")
		for _, warning := range s.Warnings {
			fmt.Fprintf(r.writer, "  - %s\n", warning)
		}
	}

	return nil
}

func (r *Reporter) reportTable(payload *Payload) error {
	fmt.Fprintf(r.writer, "%-40s | %-10s | %-8s | %-13s | %s\n",
		"Name", "Size", "Category", "Modified", "Owner")
	fmt.Fprintf(r.writer, "%s\n", strings.Repeat("-", 100))

	for _, item := range payload.Items {
		name := item.DisplayName
		if len(name) > 40 {
			name = "..." + name[len(name)-37:]
		}

		modified := item.ModifiedDate
		if t, err := time.Parse("2006-01-02", item.ModifiedDate); err == nil {
			modified = humanize.Time(t)
		}
		if len(modified) > 13 {
			modified = modified[:13]
		}

		fmt.Fprintf(r.writer, "%-40s | %7.2f MB | %-8s | %-13s | %s\n",
			name, item.SizeMB, item.Category, modified, item.OwnerLabel)
	}

	fmt.Fprintf(r.writer, "%s\n", strings.Repeat("-", 100))
	fmt.Fprintf(r.writer, "Total: %d items, %.2f MB\n", len(payload.Items), payload.TotalSizeMB())

	return nil
}

func (r *Reporter) reportJSON(payload *Payload) error {
	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func (r *Reporter) reportYAML(payload *Payload) error {
	encoder := yaml.NewEncoder(r.writer)
	defer encoder.Close()
	return encoder.Encode(payload)
}

// SaveToFile writes the payload to a file in the given format.
func SaveToFile(payload *Payload, path string, format OutputFormat) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	reporter := New(file, format)
	return reporter.Report(payload)
}

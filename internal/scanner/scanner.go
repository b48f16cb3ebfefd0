// Package scanner walks a fixed set of probe locations, measures each
// immediate entry, asks the matcher whether it correlates with
// installed software, and classifies it into a reclaim candidate.
// The scan is read-only: nothing is ever modified or deleted.
package scanner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/fenilsonani/appsweep/internal/config"
	"github.com/fenilsonani/appsweep/internal/platform"
	"github.com/fenilsonani/appsweep/internal/report"
	"github.com/fenilsonani/appsweep/pkg/utils"
)

// Scanner coordinates enumeration, measurement and classification
// across all enabled probe locations.
type Scanner struct {
	cfg       *config.Config
	info      *platform.Info
	matcher   Matcher
	locations []Location

	workers      int
	entryTimeout time.Duration
	progress     ProgressFunc

	// per-location running counters, indexed like locations
	locItems  []int64
	locSizeKB []int64
}

// job is one (location, entry) work item for the pool.
type job struct {
	location int
	sequence int
	loc      *Location
	entry    Entry
}

// New creates a Scanner over the standard probe locations.
func New(cfg *config.Config, info *platform.Info, matcher Matcher) *Scanner {
	workers := cfg.Scan.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers < 4 {
		workers = 4 // keep some I/O parallelism on small machines
	}
	if workers > 16 {
		workers = 16
	}

	return &Scanner{
		cfg:          cfg,
		info:         info,
		matcher:      matcher,
		locations:    BuildLocations(cfg, info),
		workers:      workers,
		entryTimeout: time.Duration(cfg.Scan.EntryTimeoutSeconds) * time.Second,
	}
}

// SetProgressFunc registers a progress callback.
func (s *Scanner) SetProgressFunc(fn ProgressFunc) {
	s.progress = fn
}

// SetLocations replaces the probe-location table. Tests use this to
// point the scanner at fixture directories.
func (s *Scanner) SetLocations(locations []Location) {
	s.locations = locations
}

// Scan runs the full pipeline and returns the classified items plus
// any non-fatal warnings. Cancelling ctx stops new work; items already
// aggregated are still returned, since partial results are valid.
func (s *Scanner) Scan(ctx context.Context) ([]report.Item, []string) {
	agg := report.NewAggregator()
	jobs := make(chan job, 64)

	s.locItems = make([]int64, len(s.locations))
	s.locSizeKB = make([]int64, len(s.locations))

	var wg sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				select {
				case <-ctx.Done():
					continue // drain without processing
				default:
				}
				s.process(ctx, j, agg)
			}
		}()
	}

emit:
	for li := range s.locations {
		loc := &s.locations[li]

		entries, err := s.enumerate(loc)
		if err != nil {
			if !os.IsNotExist(err) {
				agg.Warn(fmt.Sprintf("skipped %s: %v", loc.Name, err))
				log.Warn("cannot enumerate probe location", "location", loc.Name, "err", err)
			}
			continue
		}

		for ei, entry := range entries {
			select {
			case <-ctx.Done():
				break emit
			case jobs <- job{location: li, sequence: ei, loc: loc, entry: entry}:
			}
		}
	}

	close(jobs)
	wg.Wait()

	return agg.Items(), agg.Warnings()
}

// enumerate lists a location's entries according to its mode. It does
// no measurement; entries come back with name, path and mtime only.
func (s *Scanner) enumerate(loc *Location) ([]Entry, error) {
	switch loc.Mode {
	case modeFixedPaths:
		return s.enumerateFixed(loc), nil
	case modeFilesToDepth:
		return s.enumerateFiles(loc)
	default:
		return s.enumerateChildren(loc)
	}
}

func (s *Scanner) enumerateChildren(loc *Location) ([]Entry, error) {
	dirEntries, err := os.ReadDir(loc.Root)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, de := range dirEntries {
		name := de.Name()
		if loc.excluded(name) {
			continue
		}
		if loc.Filter != nil && !loc.Filter(name, de.IsDir()) {
			continue
		}

		entry := Entry{
			Path:  filepath.Join(loc.Root, name),
			Name:  name,
			IsDir: de.IsDir(),
		}
		// A vanished entry keeps its zero mtime and ages to the
		// sentinel instead of failing the scan.
		if info, err := de.Info(); err == nil {
			entry.ModTime = info.ModTime()
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *Scanner) enumerateFiles(loc *Location) ([]Entry, error) {
	if _, err := os.Stat(loc.Root); err != nil {
		return nil, err
	}

	var entries []Entry
	err := filepath.WalkDir(loc.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}

		depth := 0
		if rel, relErr := filepath.Rel(loc.Root, path); relErr == nil && rel != "." {
			depth = strings.Count(rel, string(os.PathSeparator)) + 1
		}

		if d.IsDir() {
			if depth >= loc.MaxDepth {
				return fs.SkipDir
			}
			return nil
		}
		if depth > loc.MaxDepth || !d.Type().IsRegular() {
			return nil
		}
		if loc.excluded(d.Name()) {
			return nil
		}

		entry := Entry{Path: path, Name: d.Name()}
		if info, err := d.Info(); err == nil {
			entry.ModTime = info.ModTime()
		}
		entries = append(entries, entry)
		return nil
	})
	return entries, err
}

func (s *Scanner) enumerateFixed(loc *Location) []Entry {
	var entries []Entry
	for _, fixed := range loc.Fixed {
		info, err := os.Stat(fixed.Path)
		if err != nil {
			continue // tool not present on this system
		}
		entries = append(entries, Entry{
			Path:    fixed.Path,
			Name:    filepath.Base(fixed.Path),
			ModTime: info.ModTime(),
			IsDir:   info.IsDir(),
			Tag:     fixed.Tool,
		})
	}
	return entries
}

// process measures one entry, classifies it and appends the result.
func (s *Scanner) process(ctx context.Context, j job, agg *report.Aggregator) {
	entry := j.entry

	measureCtx := ctx
	if s.entryTimeout > 0 {
		var cancel context.CancelFunc
		measureCtx, cancel = context.WithTimeout(ctx, s.entryTimeout)
		defer cancel()
	}

	entry.SizeKB = sizeKB(measureCtx, entry.Path, entry.IsDir)
	entry.AgeDays = ageDays(entry.ModTime)

	installed := s.matcher.IsInstalled(entry.Name)

	disposition, ok := j.loc.Classify(entry, installed)
	if !ok {
		return
	}

	sizeMB := utils.KBToMB(entry.SizeKB)
	if disposition.NominalMB > 0 {
		sizeMB = disposition.NominalMB
	} else if sizeMB < j.loc.FloorMB {
		return
	}

	item := report.Item{
		DisplayName:  entry.Name,
		Path:         homeRelative(s.info.HomeDir, entry.Path),
		SizeMB:       sizeMB,
		ModifiedDate: modifiedDate(entry.ModTime),
		Category:     disposition.Category,
		OwnerLabel:   disposition.Owner,
	}

	if agg.Add(j.location, j.sequence, entry.Path, item) {
		found := atomic.AddInt64(&s.locItems[j.location], 1)
		total := atomic.AddInt64(&s.locSizeKB[j.location], entry.SizeKB)
		if s.progress != nil {
			s.progress(j.loc.Name, entry.Path, int(found), total)
		}
	}
}

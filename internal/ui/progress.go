package ui

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"

	"github.com/fenilsonani/appsweep/pkg/utils"
)

// LiveProgress renders an in-place terminal status area while a scan
// runs. It is the lightweight alternative to the full Bubble Tea view
// for plain terminals and piped output.
type LiveProgress struct {
	mu          sync.Mutex
	location    string
	currentPath string
	itemsFound  int
	totalSizeKB int64
	startTime   time.Time
	lastUpdate  time.Time
	termWidth   int
	enabled     bool
	statusLines int
}

// NewLiveProgress creates a live progress display sized to the current
// terminal. Progress is disabled automatically when stdout is not a
// terminal.
func NewLiveProgress() *LiveProgress {
	width := 80
	enabled := false
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
		enabled = true
	}

	return &LiveProgress{
		startTime:   time.Now(),
		termWidth:   width,
		enabled:     enabled,
		statusLines: 3,
	}
}

// Start reserves the status area.
func (lp *LiveProgress) Start() {
	if !lp.enabled {
		return
	}
	fmt.Print("\n\n\n")
	fmt.Printf("\033[%dA", lp.statusLines)
}

// Update refreshes the status area. Safe to call from scan workers.
func (lp *LiveProgress) Update(location, currentPath string, itemsFound int, totalSizeKB int64) {
	lp.mu.Lock()
	defer lp.mu.Unlock()

	if !lp.enabled {
		return
	}

	// Throttle to at most 10 redraws per second to avoid flicker.
	now := time.Now()
	if now.Sub(lp.lastUpdate) < 100*time.Millisecond {
		return
	}
	lp.lastUpdate = now

	lp.location = location
	lp.currentPath = currentPath
	lp.itemsFound = itemsFound
	lp.totalSizeKB = totalSizeKB

	lp.render()
}

func (lp *LiveProgress) render() {
	fmt.Print("\033[s")

	width := lp.termWidth - 2

	elapsed := time.Since(lp.startTime).Round(time.Second)
	line1 := fmt.Sprintf("Scanning: %-24s | Candidates: %d | Size: %s | Time: %s",
		lp.location, lp.itemsFound, utils.FormatBytes(lp.totalSizeKB*1024), elapsed)
	fmt.Printf("\033[K%s\n", truncate(line1, width))

	spinner := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	spinIdx := int(time.Now().UnixMilli()/100) % len(spinner)
	path := lp.currentPath
	if len(path) > width-10 {
		path = "..." + path[len(path)-(width-13):]
	}
	line2 := fmt.Sprintf("%s %s", spinner[spinIdx], path)
	fmt.Printf("\033[K%s\n", truncate(line2, width))

	line3 := strings.Repeat("─", width)
	fmt.Printf("\033[K%s", line3)

	fmt.Print("\033[u")
}

// Finish clears the status area.
func (lp *LiveProgress) Finish() {
	if !lp.enabled {
		return
	}
	lp.mu.Lock()
	defer lp.mu.Unlock()

	fmt.Printf("\033[%dB", lp.statusLines)
	fmt.Print("\033[K\n")
}

// SetEnabled overrides terminal autodetection.
func (lp *LiveProgress) SetEnabled(enabled bool) {
	lp.mu.Lock()
	defer lp.mu.Unlock()
	lp.enabled = enabled
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	return s[:width-3] + "..."
}

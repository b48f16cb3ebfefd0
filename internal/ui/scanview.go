package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fenilsonani/appsweep/internal/ui/styles"
	"github.com/fenilsonani/appsweep/pkg/utils"
)

// ProgressMsg updates the scan view with per-location progress. The
// caller sends it from the scanner's progress callback via Program.Send.
type ProgressMsg struct {
	Location    string
	CurrentPath string
	Items       int
	SizeKB      int64
}

// DoneMsg signals that the scan has finished. Err carries a scan
// failure; partial results may still follow.
type DoneMsg struct {
	Items    int
	SizeMB   float64
	Warnings int
	Err      error
}

// locationProgress tracks per-location counters in arrival order.
type locationProgress struct {
	name   string
	items  int
	sizeKB int64
}

// ScanView is the Bubble Tea model shown while a scan runs. It renders
// a spinner, the entry being measured, and running per-location totals.
type ScanView struct {
	spinner   spinner.Model
	scanning  bool
	startTime time.Time
	current   string
	order     []string
	progress  map[string]*locationProgress
	done      DoneMsg
}

// NewScanView creates the scan progress view.
func NewScanView() *ScanView {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SpinnerStyle

	return &ScanView{
		spinner:   s,
		scanning:  true,
		startTime: time.Now(),
		progress:  make(map[string]*locationProgress),
	}
}

// Init starts the spinner.
func (m *ScanView) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles spinner ticks, progress updates, and completion.
func (m *ScanView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ProgressMsg:
		prog, ok := m.progress[msg.Location]
		if !ok {
			prog = &locationProgress{name: msg.Location}
			m.progress[msg.Location] = prog
			m.order = append(m.order, msg.Location)
		}
		prog.items = msg.Items
		prog.sizeKB = msg.SizeKB
		m.current = msg.CurrentPath
		return m, nil

	case DoneMsg:
		m.scanning = false
		m.done = msg
		return m, tea.Quit
	}

	return m, nil
}

// View renders the progress screen.
func (m *ScanView) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Scanning for reclaimable data"))
	b.WriteString("\n\n")

	if m.scanning {
		b.WriteString(m.spinner.View())
		b.WriteString(" Scanning... ")
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf("(%s)", time.Since(m.startTime).Round(time.Second))))
		b.WriteString("\n\n")

		if m.current != "" {
			b.WriteString(styles.DimStyle.Render("Current: "))
			b.WriteString(styles.PathStyle.Render(truncatePath(m.current, 60)))
			b.WriteString("\n\n")
		}

		b.WriteString(styles.SubtitleStyle.Render("Progress by location:"))
		b.WriteString("\n")

		totalItems := 0
		var totalKB int64
		for _, name := range m.order {
			prog := m.progress[name]
			if prog.items == 0 {
				continue
			}
			b.WriteString(fmt.Sprintf("  %s: %s items, %s\n",
				styles.LocationStyle.Render(prog.name),
				styles.BoldStyle.Render(fmt.Sprintf("%d", prog.items)),
				styles.SizeStyle.Render(utils.FormatBytes(prog.sizeKB*1024)),
			))
			totalItems += prog.items
			totalKB += prog.sizeKB
		}

		b.WriteString("\n")
		b.WriteString(styles.BoldStyle.Render(fmt.Sprintf("Total: %d items, %s",
			totalItems, utils.FormatBytes(totalKB*1024))))
	} else {
		if m.done.Err != nil {
			b.WriteString(styles.ErrorStyle.Render("✗ Scan failed"))
			b.WriteString("\n\n")
			b.WriteString(styles.DimStyle.Render(m.done.Err.Error()))
		} else {
			b.WriteString(styles.SuccessStyle.Render("✓ Scan complete"))
			b.WriteString("\n\n")
			b.WriteString(fmt.Sprintf("Found %s candidates totaling %s\n",
				styles.BoldStyle.Render(fmt.Sprintf("%d", m.done.Items)),
				styles.SizeStyle.Render(fmt.Sprintf("%.2f MB", m.done.SizeMB)),
			))
			if m.done.Warnings > 0 {
				b.WriteString(styles.WarningStyle.Render(
					fmt.Sprintf("%d locations could not be fully read", m.done.Warnings)))
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\n\n")
	b.WriteString(styles.HelpStyle.Render("Press ctrl+c to cancel"))

	return b.String()
}

func truncatePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	return "..." + path[len(path)-maxLen+3:]
}

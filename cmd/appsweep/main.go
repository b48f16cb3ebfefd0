package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/fenilsonani/appsweep/internal/appindex"
	"github.com/fenilsonani/appsweep/internal/config"
	"github.com/fenilsonani/appsweep/internal/estimate"
	"github.com/fenilsonani/appsweep/internal/match"
	"github.com/fenilsonani/appsweep/internal/platform"
	"github.com/fenilsonani/appsweep/internal/report"
	"github.com/fenilsonani/appsweep/internal/scanner"
	"github.com/fenilsonani/appsweep/internal/ui"
)

var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

var (
	configPath string
	verbose    bool
	outputFmt  string
	outputFile string
	live       bool
	noEstimate bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "appsweep",
	Short: "Find app leftovers, caches, and stale data",
	Long: `AppSweep inventories the software installed on this machine, scans the
user-data locations applications write to, and reports orphaned leftovers,
caches, stale data, and unusually large files that are safe to review for
removal. It never deletes anything.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan user-data locations and report reclaim candidates",
	Long: `Builds the installed-application index, scans every enabled location,
and reports each candidate with its size, last-modified date, category,
and owning application.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if verbose {
			cfg.Verbose = true
		}

		info, err := platform.GetInfo()
		if err != nil {
			return fmt.Errorf("failed to get platform info: %w", err)
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		index := appindex.Build(ctx, appindex.DefaultSources(info)...)
		matcher := match.New(index)
		scnr := scanner.New(cfg, info, matcher)

		var items []report.Item
		var warnings []string
		if live {
			items, warnings, err = runLiveScan(ctx, scnr)
			if err != nil {
				return err
			}
		} else {
			items, warnings = runPlainScan(ctx, scnr)
		}

		if cfg.Locations.HomebrewEstimate && !noEstimate {
			if item, ok := (estimate.Homebrew{}).Estimate(ctx); ok {
				items = append(items, item)
			}
		}

		payload := &report.Payload{
			Items:   items,
			Summary: buildSummary(index.Len(), warnings),
		}

		format := parseFormat(outputFmt)
		if outputFile != "" {
			if err := report.SaveToFile(payload, outputFile, format); err != nil {
				return fmt.Errorf("failed to save report: %w", err)
			}
			fmt.Printf("Report saved to: %s\n", outputFile)
			return nil
		}

		rptr := report.New(os.Stdout, format)
		if err := rptr.Report(payload); err != nil {
			return fmt.Errorf("failed to generate report: %w", err)
		}

		return nil
	},
}

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Print the installed-application index",
	Long: `Builds the installed-application index from Spotlight, the application
directories, and the process list, then prints every indexed name.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := platform.GetInfo()
		if err != nil {
			return fmt.Errorf("failed to get platform info: %w", err)
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		index := appindex.Build(ctx, appindex.DefaultSources(info)...)
		for _, entry := range index.Entries() {
			fmt.Println(entry)
		}
		fmt.Fprintf(os.Stderr, "\n%d entries\n", index.Len())

		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, err := config.GetConfigPath()
		if err != nil {
			return err
		}

		fmt.Printf("Config file: %s\n", cfgPath)

		if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
			fmt.Println("Config file does not exist. Using default configuration.")
			fmt.Println("Run 'appsweep config init' to create one.")
		}

		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, err := config.EnsureConfigExists()
		if err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}

		fmt.Printf("Config file: %s\n", cfgPath)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "verbose output")

	scanCmd.Flags().StringVar(&outputFmt, "output", "table", "output format (summary, table, json, yaml)")
	scanCmd.Flags().StringVar(&outputFile, "file", "", "save report to file")
	scanCmd.Flags().BoolVar(&live, "live", false, "show full-screen progress while scanning")
	scanCmd.Flags().BoolVar(&noEstimate, "no-estimate", false, "skip the Homebrew cleanup estimate")

	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(configCmd)
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}

	cfgPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}

	return config.Load(cfgPath)
}

func parseFormat(name string) report.OutputFormat {
	switch name {
	case "json":
		return report.FormatJSON
	case "yaml":
		return report.FormatYAML
	case "summary":
		return report.FormatSummary
	default:
		return report.FormatTable
	}
}

// runPlainScan drives the scan with the in-place terminal progress
// lines, suppressed automatically for piped output.
func runPlainScan(ctx context.Context, scnr *scanner.Scanner) ([]report.Item, []string) {
	progress := ui.NewLiveProgress()
	if outputFile == "" && (outputFmt == "json" || outputFmt == "yaml") {
		// Structured output goes to stdout; keep it clean.
		progress.SetEnabled(false)
	}
	scnr.SetProgressFunc(progress.Update)

	progress.Start()
	items, warnings := scnr.Scan(ctx)
	progress.Finish()

	return items, warnings
}

// runLiveScan drives the scan under the full-screen Bubble Tea view.
// Quitting the view cancels the scan; partial results are kept.
func runLiveScan(ctx context.Context, scnr *scanner.Scanner) ([]report.Item, []string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(ui.NewScanView())
	scnr.SetProgressFunc(func(location, currentPath string, itemsFound int, totalSizeKB int64) {
		p.Send(ui.ProgressMsg{
			Location:    location,
			CurrentPath: currentPath,
			Items:       itemsFound,
			SizeKB:      totalSizeKB,
		})
	})

	type outcome struct {
		items    []report.Item
		warnings []string
	}
	done := make(chan outcome, 1)
	go func() {
		items, warnings := scnr.Scan(ctx)
		var total float64
		for _, item := range items {
			total += item.SizeMB
		}
		p.Send(ui.DoneMsg{Items: len(items), SizeMB: total, Warnings: len(warnings)})
		done <- outcome{items: items, warnings: warnings}
	}()

	if _, err := p.Run(); err != nil {
		cancel()
		<-done
		return nil, nil, fmt.Errorf("progress view failed: %w", err)
	}

	// The view may have been quit mid-scan; cancel and collect what
	// the scanner produced so far.
	cancel()
	res := <-done
	return res.items, res.warnings, nil
}

func buildSummary(indexedApps int, warnings []string) report.RunSummary {
	summary := report.RunSummary{
		ScannedAt:   time.Now(),
		IndexedApps: indexedApps,
		Warnings:    warnings,
	}

	if usage, err := platform.GetDiskUsage("/"); err == nil {
		summary.DiskTotalBytes = usage.TotalBytes
		summary.DiskUsedBytes = usage.UsedBytes
		summary.DiskFreeBytes = usage.FreeBytes
		summary.DiskUsedPct = usage.UsedPct
	} else {
		log.Debug("disk usage unavailable", "err", err)
	}

	return summary
}

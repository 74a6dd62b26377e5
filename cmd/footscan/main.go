// Package main provides the CLI entrypoint for footscan.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"go.viam.com/rdk/logging"

	"github.com/soletrace/footscan"
	"github.com/soletrace/footscan/internal/config"
	"github.com/soletrace/footscan/internal/history"
	"github.com/soletrace/footscan/measure"
	"github.com/soletrace/footscan/report"
)

const defaultHistoryDB = "footscan.db"

var (
	flagConfig       string
	flagDB           string
	flagNoHistory    bool
	flagDebug        bool
	flagKeepOutliers bool
	flagPoints       int
	flagJSON         bool

	measureSide  string
	historyLimit int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "footscan",
		Short:         "3D foot-scan measurement and bilateral comparison",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "footscan.toml", "path to TOML config file")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "path to history database (default from config, then "+defaultHistoryDB+")")
	rootCmd.PersistentFlags().BoolVar(&flagNoHistory, "no-history", false, "skip persisting reports")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagKeepOutliers, "keep-outliers", false, "skip statistical outlier removal")
	rootCmd.PersistentFlags().IntVar(&flagPoints, "points", 0, "downsample scans to roughly this many points (0 = off)")

	measureCmd := &cobra.Command{
		Use:   "measure <scan-file>",
		Short: "Measure a single foot scan",
		Args:  cobra.ExactArgs(1),
		RunE:  runMeasureCmd,
	}
	measureCmd.Flags().StringVar(&measureSide, "side", "left", "which foot the scan is: left or right")
	measureCmd.Flags().BoolVar(&flagJSON, "json", false, "print the compact report payload instead of text")

	compareCmd := &cobra.Command{
		Use:   "compare <left-scan> <right-scan>",
		Short: "Measure both feet and compare bilaterally",
		Args:  cobra.ExactArgs(2),
		RunE:  runCompareCmd,
	}
	compareCmd.Flags().BoolVar(&flagJSON, "json", false, "print the compact report payload instead of text")

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List recent measurements",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "number of entries to show")

	rootCmd.AddCommand(measureCmd, compareCmd, historyCmd)
	return rootCmd
}

func newLogger() logging.Logger {
	if flagDebug {
		return logging.NewDebugLogger("footscan")
	}
	return logging.NewLogger("footscan")
}

// setup loads the config file and assembles a session plus scan options.
func setup(logger logging.Logger) (*footscan.Session, *history.Store, footscan.ScanOptions, error) {
	fileCfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, footscan.ScanOptions{}, err
	}
	engineCfg, err := fileCfg.EngineConfig()
	if err != nil {
		return nil, nil, footscan.ScanOptions{}, err
	}

	opts := footscan.DefaultScanOptions()
	if fileCfg.Scan.KeepOutliers != nil {
		opts.KeepOutliers = *fileCfg.Scan.KeepOutliers
	}
	if fileCfg.Scan.TargetPoints != nil {
		opts.TargetPoints = *fileCfg.Scan.TargetPoints
	}
	if flagKeepOutliers {
		opts.KeepOutliers = true
	}
	if flagPoints > 0 {
		opts.TargetPoints = flagPoints
	}

	var store *history.Store
	if !flagNoHistory {
		dbPath := flagDB
		if dbPath == "" {
			dbPath = fileCfg.HistoryDB
		}
		if dbPath == "" {
			dbPath = defaultHistoryDB
		}
		store, err = history.Open(dbPath)
		if err != nil {
			return nil, nil, footscan.ScanOptions{}, fmt.Errorf("opening history database: %w", err)
		}
	}

	return footscan.NewSession(&engineCfg, logger, store), store, opts, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func runMeasureCmd(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	ctx, cancel := signalContext()
	defer cancel()

	var side measure.FootSide
	switch measureSide {
	case "left":
		side = measure.SideLeft
	case "right":
		side = measure.SideRight
	default:
		return fmt.Errorf("invalid --side %q: must be left or right", measureSide)
	}

	session, store, opts, err := setup(logger)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close() //nolint:errcheck
	}

	rep, err := footscan.MeasureSingle(ctx, session, side, args[0], opts)
	if err != nil {
		return err
	}
	return printReport(rep)
}

func runCompareCmd(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	ctx, cancel := signalContext()
	defer cancel()

	session, store, opts, err := setup(logger)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close() //nolint:errcheck
	}

	rep, err := footscan.Run(ctx, session, args[0], args[1], opts)
	if err != nil {
		return err
	}
	return printReport(rep)
}

func runHistoryCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	dbPath := flagDB
	if dbPath == "" {
		dbPath = fileCfg.HistoryDB
	}
	if dbPath == "" {
		dbPath = defaultHistoryDB
	}

	store, err := history.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer store.Close() //nolint:errcheck

	entries, err := store.Recent(historyLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("no measurements recorded")
		return nil
	}
	for _, e := range entries {
		line := fmt.Sprintf("%s  %-5s  %.1f x %.1f x %.1f mm  %s, %s",
			e.CreatedAt.Format("2006-01-02 15:04"), e.Side,
			e.LengthMm, e.WidthMm, e.HeightMm, e.FootType, e.ArchType)
		if e.SymmetryPct != nil {
			line += fmt.Sprintf("  (symmetry %.0f%%)", *e.SymmetryPct)
		}
		fmt.Println(line)
	}
	return nil
}

func printReport(rep *report.Report) error {
	if flagJSON {
		payload, err := rep.Payload()
		if err != nil {
			return err
		}
		fmt.Println(string(payload))
		return nil
	}
	fmt.Print(rep.Render())
	return nil
}

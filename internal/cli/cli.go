package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/pfrederiksen/eventbook/internal/config"
	"github.com/pfrederiksen/eventbook/internal/logger"
	"github.com/pfrederiksen/eventbook/internal/storage"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// options holds the resolved persistent flags shared by every subcommand
type options struct {
	file    string
	format  string
	verbose bool

	outputFormat OutputFormat
	store        *storage.FileStore
	now          func() time.Time
	loc          *time.Location // zone for times typed on the command line
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&options{now: time.Now, loc: time.Local})
}

func newRootCmd(opts *options) *cobra.Command {

	cmd := &cobra.Command{
		Use:   "eventbook",
		Short: "Keep a book of events in a JSON file",
		Long: `A CLI tool to manage an event book stored as a JSON file.
The file location comes from --file, then EVENTBOOK_FILE, then
~/.local/share/eventbook/eventbook.json.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: opts.setup,
		PersistentPostRun: opts.reportMetrics,
	}

	cmd.PersistentFlags().StringVar(&opts.file, "file", "", "Event book file (overrides EVENTBOOK_FILE)")
	cmd.PersistentFlags().StringVar(&opts.format, "format", "text", "Output format: text or json")
	cmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "Enable verbose output and debug logging")

	cmd.AddCommand(
		newListCmd(opts),
		newAddCmd(opts),
		newDeleteCmd(opts),
		newImportCmd(opts),
		newExportICSCmd(opts),
	)

	return cmd
}

// setup resolves configuration, installs the logger and opens the store
func (o *options) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	path := cfg.FilePath
	if cmd.Flags().Changed("file") {
		path, err = config.ExpandPath(o.file)
		if err != nil {
			return err
		}
	}
	if path == "" {
		return fmt.Errorf("event book file path is empty")
	}

	level := cfg.Level()
	if o.verbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, cmd.ErrOrStderr()))

	o.outputFormat, err = ParseFormat(o.format)
	if err != nil {
		return err
	}

	o.store = storage.New(path)
	logger.Debug("Using event book file", logger.Fields{"path": path})
	return nil
}

func (o *options) reportMetrics(cmd *cobra.Command, args []string) {
	if !o.verbose {
		return
	}
	snap := logger.GetMetricsSnapshot()
	logger.Debug("Storage metrics", logger.Fields{
		"counters": snap.Counters,
		"timings":  snap.Timings,
	})
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}

package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/minifluxer/config"
	"github.com/s0up4200/minifluxer/filter"
	"github.com/s0up4200/minifluxer/miniflux"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *miniflux.Client

	// Command flags
	filterExpr string
	preset     string
	dryRun     bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "minifluxer",
	Short: "A command line client for the Miniflux API",
	Long: `minifluxer talks to a Miniflux instance through its HTTP API. It can list
and filter feeds and entries, refresh feeds, mark entries as read and move
subscriptions in and out as OPML.`,
	SilenceUsage:      true,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "d", false, "show what would change without changing it")

	// Add subcommands
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(feedsCmd)
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(entriesCmd)
	rootCmd.AddCommand(discoverCmd)
	rootCmd.AddCommand(subscribeCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	client = newClient(cfg, logger)
	logger.Debug().Str("url", client.Endpoint()).Msg("Miniflux client ready")

	return nil
}

func newClient(cfg *config.Config, logger zerolog.Logger) *miniflux.Client {
	opts := []miniflux.Option{
		miniflux.WithLogger(logger),
		miniflux.WithUserAgent("minifluxer/" + version),
	}
	if cfg.Miniflux.Timeout > 0 {
		opts = append(opts, miniflux.WithTimeout(cfg.Miniflux.Timeout))
	}
	return miniflux.NewClientFromConfig(cfg.ClientConfig(), opts...)
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format, colour only on a terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// getFilter determines the filter to use, or nil when none was requested
func getFilter() (*filter.Filter, error) {
	// Priority: command line filter > preset
	expr := filterExpr
	if expr == "" && preset != "" {
		presetExpr, ok := cfg.Filter.Presets[strings.ToLower(preset)]
		if !ok {
			return nil, fmt.Errorf("preset '%s' not found in config", preset)
		}
		expr = presetExpr
	}

	if expr == "" {
		return nil, nil
	}

	f, err := filter.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	logger.Debug().Str("filter", f.String()).Msg("Using filter")
	return f, nil
}

func boolToStatus(b bool) string {
	if b {
		return "Enabled"
	}
	return "Disabled"
}

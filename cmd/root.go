package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/puxbay-go/config"
	"github.com/s0up4200/puxbay-go/filter"
	"github.com/s0up4200/puxbay-go/puxbay"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *puxbay.Client
	filters *filter.Manager
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "puxbay",
	Short: "Command-line client for the Puxbay retail API",
	Long: `puxbay talks to a Puxbay point-of-sale backend. It can check that your API
key works, list and filter products, orders, customers and the other store
resources, and fetch single records as JSON.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// Interrupts cancel in-flight requests and retry waits.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default searches ., ~/.puxbay, /etc/puxbay)")
	flags.String("api-key", "", "Puxbay API key (env PUXBAY_API_KEY)")
	flags.String("base-url", "", "API base URL (env PUXBAY_BASE_URL)")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.StringP("output", "o", "", "output format: table or json")

	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// initializeApp loads the configuration and builds the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	client, err = puxbay.New(cfg.API.APIKey, cfg.ClientOptions(logger)...)
	if err != nil {
		return fmt.Errorf("failed to create Puxbay client: %w", err)
	}

	evaluator := filter.NewConcurrentEvaluator(
		filter.WithWorkers(cfg.Evaluation.Workers),
		filter.WithBatchSize(cfg.Evaluation.BatchSize),
	)
	filters = filter.NewManager(filter.WithEvaluator(evaluator))
	if err := filters.RegisterFilters(cfg.Filter); err != nil {
		return fmt.Errorf("invalid filter preset: %w", err)
	}

	logger.Debug().
		Str("base_url", cfg.API.BaseURL).
		Int("presets", len(cfg.Filter)).
		Msg("Initialized")

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

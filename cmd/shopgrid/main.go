package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"shopgrid/internal/catalog"
	"shopgrid/internal/config"
)

var (
	// Global flags
	verbose     bool
	configPath  string
	catalogPath string
	logFile     string

	// Set up by the root command before any subcommand runs
	logger        *zap.Logger
	cfg           *config.Config
	configSvc     config.ConfigService
	catalogSource string // catalog file for this run, empty for the built-in one
)

// rootCmd starts the interactive product listing
var rootCmd = &cobra.Command{
	Use:   "shopgrid",
	Short: "Browse a product catalog in the terminal",
	Long: `shopgrid shows a product catalog as a grid of cards.

Search by name, narrow the listing to one category, order it by price and
add products to the cart. Run without arguments to start the interactive view.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default "+config.DefaultPath()+")")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Catalog YAML file (default: built-in catalog)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file (default from config)")

	rootCmd.AddCommand(listCmd, categoriesCmd)
}

// setup loads the configuration and builds the session logger
func setup() error {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}

	var err error
	cfg, err = config.NewConfigService(path, zap.NewNop()).Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	// Flags override the config for this run only; they are never saved
	catalogSource = cfg.CatalogPath
	if catalogPath != "" {
		catalogSource = catalogPath
	}
	logPath := cfg.LogFile
	if logFile != "" {
		logPath = logFile
	}

	logger, err = newLogger(logPath, verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = logger.With(zap.String("session", uuid.NewString()))
	configSvc = config.NewConfigService(path, logger)

	logger.Info("starting", zap.String("config", path), zap.String("catalog", catalogSource))
	return nil
}

// newLogger writes JSON logs to path; the terminal belongs to the UI
func newLogger(path string, debug bool) (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()
	zapConfig.OutputPaths = []string{path}
	zapConfig.ErrorOutputPaths = []string{path}
	if debug {
		zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zapConfig.Build()
}

// openCatalog loads the catalog named by the config
func openCatalog() (*catalog.Catalog, error) {
	cat, err := catalog.Open(catalogSource)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	logger.Info("catalog loaded", zap.String("source", cat.Source), zap.Int("products", cat.Len()))
	return cat, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

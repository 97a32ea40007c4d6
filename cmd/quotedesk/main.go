// Quotedesk edits the accessory options of a blinds quote.
//
// It provides an interactive grid editor, a non-interactive price summary,
// scripted replays, and a websocket server that lets remote clients drive
// the same editor.
//
// Usage:
//
//	quotedesk [command] [flags]
//
// Running without arguments launches the interactive editor.
// See 'quotedesk --help' for available commands.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/muurk/quotedesk/internal/config"
	"github.com/muurk/quotedesk/internal/logging"
	"github.com/muurk/quotedesk/internal/pricing"
	"github.com/muurk/quotedesk/internal/quote"
	"github.com/muurk/quotedesk/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "quotedesk",
	Short: "Blinds quote accessory editor",
	Long: `An editor for the accessory options of a blinds quote.

Each quote row is one blind. The editor walks through five tabs (Location,
Fabric, Options, Drive/Accessories and Dual/Chain) and keeps the winder,
motor, remote, charger, cord and dual bracket prices current as you edit.

If no command is specified, the interactive editor will launch automatically.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEdit(cmd, args)
	},
}

// Global flags
var (
	configPath string
	product    string
	itemsPath  string
	rows       int
	pricesPath string
	logLevel   string
)

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default is the user config directory)")
	rootCmd.PersistentFlags().StringVar(&product, "product", "", "Product type to price (overrides config)")
	rootCmd.PersistentFlags().StringVar(&itemsPath, "items", "", "YAML file with the quote's line items")
	rootCmd.PersistentFlags().IntVar(&rows, "rows", 0, "Blank rows when no items file is given (overrides config)")
	rootCmd.PersistentFlags().StringVar(&pricesPath, "prices", "", "YAML price table (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Get()
		fmt.Printf("quotedesk %s (commit: %s, %s)\n", info.Version, info.Commit, info.GoVersion)
	},
}

// workspace is everything a command needs: resolved config, price table
// and the starting quote.
type workspace struct {
	cfg    *config.Config
	prices *pricing.Table
	store  *quote.Store
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if product != "" {
		cfg.ProductType = product
	}
	if rows > 0 {
		cfg.Rows = rows
	}
	if pricesPath != "" {
		cfg.PriceTable = pricesPath
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return cfg, nil
}

// initLogging starts logging. Interactive commands log to a file because
// the terminal belongs to the editor.
func initLogging(cfg *config.Config, interactive bool) error {
	if !interactive {
		return logging.Initialize(cfg.Logging.Level)
	}

	path := cfg.Logging.File
	if path == "" {
		dir, err := config.GetConfigDir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
		path = filepath.Join(dir, "quotedesk.log")
	}
	return logging.InitializeToFile(cfg.Logging.Level, path)
}

// loadWorkspace resolves config, logging, prices and the starting quote.
func loadWorkspace(interactive bool) (*workspace, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if err := initLogging(cfg, interactive); err != nil {
		return nil, err
	}

	table := pricing.DefaultTable()
	if cfg.PriceTable != "" {
		if table, err = pricing.LoadTable(cfg.PriceTable); err != nil {
			return nil, err
		}
	}

	var store *quote.Store
	if itemsPath != "" {
		f, err := quote.LoadItems(itemsPath)
		if err != nil {
			return nil, err
		}
		store = quote.NewStoreFromFile(f, cfg.ProductType)
	} else {
		store = quote.NewBlankStore(cfg.ProductType, cfg.Rows)
	}

	if !slices.Contains(table.ProductTypes(), store.ProductType()) {
		return nil, fmt.Errorf("product %q is not in the price table (have %v)", store.ProductType(), table.ProductTypes())
	}

	return &workspace{cfg: cfg, prices: table, store: store}, nil
}

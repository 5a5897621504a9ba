// Command erp runs the back-office server and offers a few offline tools
// over the same screens: listing them, printing the menu and exporting
// a screen to CSV or XLSX.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"erp/internal/config"
	"erp/internal/logging"
	"erp/internal/menu"
	"erp/internal/screens"
	"erp/internal/store"
)

var (
	// Global flags
	configPath string
	envFile    string
	logLevel   string
	devLog     bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "erp",
	Short: "HR, accounting and warehouse back office",
	Long: `erp serves the back-office screens (HRS, ACC, WMS) over HTTP.

Settings come from defaults, the --config YAML file, a .env file and ERP_*
environment variables, in that order.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath, envFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			cfg.Log.Level = logLevel
		}
		if cmd.Flags().Changed("dev") {
			cfg.Log.Dev = devLog
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		logger, err = logging.New(cfg.Log.Level, cfg.Log.Dev)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file (default .env)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVar(&devLog, "dev", false, "human-readable console logging")

	rootCmd.AddCommand(serveCmd, menuCmd, screensCmd, exportCmd)
}

// loadTree returns the configured menu tree, or the built-in one.
func loadTree() (*menu.Tree, error) {
	if cfg.MenuFile == "" {
		return menu.Default(), nil
	}
	return menu.Load(cfg.MenuFile)
}

// openRegistry opens the configured store and fills any empty screen with
// its fixtures. The caller closes the store.
func openRegistry(ctx context.Context) (*store.Store, *screens.Registry, error) {
	tree, err := loadTree()
	if err != nil {
		return nil, nil, err
	}
	st, err := store.Open(ctx, cfg.DB)
	if err != nil {
		return nil, nil, err
	}
	reg := screens.NewRegistry(st, tree)
	if _, err := reg.SeedMissing(ctx, time.Now()); err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("seed screens: %w", err)
	}
	return st, reg, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error: "+err.Error()))
		os.Exit(1)
	}
}

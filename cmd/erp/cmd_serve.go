package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"erp/internal/server"
	"erp/internal/store"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Long: `Starts the web UI and the /api/v1 JSON API. The admin account from the
configuration is created or reset, and empty screens are filled with
sample data. With menu_file set, edits to the menu are picked up live.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if serveAddr != "" {
			cfg.Addr = serveAddr
		}
		ctx := cmd.Context()
		st, err := store.Open(ctx, cfg.DB)
		if err != nil {
			return err
		}
		defer st.Close()

		app, err := server.New(ctx, cfg, st, logger, nil)
		if err != nil {
			return err
		}
		logger.Info("configuration", zap.String("db", cfg.DB), zap.String("menu", cfg.MenuFile))
		return app.Serve(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
}

package main

import (
	"fmt"
	"io"
	"net/url"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"erp/internal/datatable"
	"erp/internal/export"
)

var (
	exportFormat string
	exportOut    string
	exportQuery  string
)

var exportCmd = &cobra.Command{
	Use:   "export SCREEN",
	Short: "Export a screen to CSV or XLSX",
	Long: `Writes every row of SCREEN that matches --query, ignoring pagination.

Example:
  erp export WMS0301 --format xlsx --query "status=부족" --out stock.xlsx`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := export.ParseFormat(exportFormat)
		if err != nil {
			return err
		}
		values, err := url.ParseQuery(exportQuery)
		if err != nil {
			return fmt.Errorf("--query: %w", err)
		}

		st, reg, err := openRegistry(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		s, ok := reg.Get(args[0])
		if !ok {
			return fmt.Errorf("unknown screen %q", args[0])
		}
		q, err := datatable.ParseQuery(values, s.FilterNames())
		if err != nil {
			return err
		}
		headers, rows, err := s.Export(cmd.Context(), q)
		if err != nil {
			return err
		}

		var w io.Writer = cmd.OutOrStdout()
		if exportOut != "" {
			f, err := os.Create(exportOut)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}
		if err := export.Write(w, format, s.Info().ID, headers, rows); err != nil {
			return err
		}
		logger.Info("exported screen", zap.String("screen", s.Info().ID), zap.Int("rows", len(rows)), zap.String("format", string(format)))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "csv", "csv or xlsx")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
	exportCmd.Flags().StringVarP(&exportQuery, "query", "q", "", "filters as a query string, e.g. search=A&status=사용")
}

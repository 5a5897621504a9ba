package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var screensCmd = &cobra.Command{
	Use:   "screens",
	Short: "List the registered screens and their row counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, reg, err := openRegistry(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%-8s %-4s %5s  %s", "ID", "MOD", "ROWS", "TITLE")))
		module := ""
		for _, s := range reg.All() {
			info := s.Info()
			n, err := s.Len(cmd.Context())
			if err != nil {
				return err
			}
			if info.Module != module {
				module = info.Module
				fmt.Fprintln(out, titleStyle.Render(module))
			}
			fmt.Fprintf(out, "%-8s %-4s %5d  %s %s\n", info.ID, info.Module, n, info.Title, mutedStyle.Render(info.Path))
		}
		return nil
	},
}

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"erp/internal/menu"
)

var (
	menuActive   string
	menuExpanded string
	menuAll      bool
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Print the navigation tree",
	Long: `Renders the sidebar as the server would for --active. Groups open by
default follow the menu file; --expanded replaces them and --all opens
every group.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := loadTree()
		if err != nil {
			return err
		}
		exp := menu.NewExpansion(tree.Expanded...)
		if cmd.Flags().Changed("expanded") {
			exp = menu.ParseExpansion(menuExpanded)
		}
		if menuAll {
			exp = allGroups(tree.Items, menu.Expansion{})
		}
		writeMenu(cmd.OutOrStdout(), tree.Render(menuActive, exp))
		if menuActive != "" {
			crumbs := tree.Breadcrumb(menuActive)
			titles := make([]string, len(crumbs))
			for i, c := range crumbs {
				titles[i] = c.Title
			}
			fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render(strings.Join(titles, " > ")))
		}
		return nil
	},
}

func init() {
	menuCmd.Flags().StringVar(&menuActive, "active", "", "route to highlight, e.g. /WMS/inventory/WMS0301")
	menuCmd.Flags().StringVar(&menuExpanded, "expanded", "", "comma separated ids of open groups")
	menuCmd.Flags().BoolVar(&menuAll, "all", false, "open every group")
}

func allGroups(items []menu.Item, exp menu.Expansion) menu.Expansion {
	for _, it := range items {
		if len(it.Children) > 0 {
			exp[it.ID] = true
			allGroups(it.Children, exp)
		}
	}
	return exp
}

func writeMenu(w io.Writer, nodes []menu.Node) {
	for _, n := range nodes {
		marker := "  "
		if n.HasChildren {
			marker = "▸ "
			if n.Expanded {
				marker = "▾ "
			}
		}
		label := n.Title
		if n.Path != "" && !n.HasChildren {
			label += " " + mutedStyle.Render(n.Path)
		}
		if n.Active {
			label = activeStyle.Render(n.Title)
		}
		fmt.Fprintf(w, "%s%s%s\n", strings.Repeat("  ", n.Depth), marker, label)
		writeMenu(w, n.Children)
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bladegen/bladegen/plan"
)

// planCmd prints the file manifest a table would generate, grouped by
// category, without touching the database or the filesystem.
var planCmd = &cobra.Command{
	Use:   "plan [table]",
	Short: "Show the files that would be generated for a table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		flags, err := a.cfg.PlanFeatures()
		if err != nil {
			return err
		}
		cats, err := a.cfg.PlanCategories()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		var category string
		for _, e := range plan.Manifest(args[0], cats, flags) {
			if e.Category != category {
				category = e.Category
				fmt.Fprintf(out, "%s:\n", category)
			}
			fmt.Fprintf(out, "  %s\n", e.Path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
}

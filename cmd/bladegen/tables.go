package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// tablesCmd lists the tables the configured source exposes.
var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List the tables of the configured database",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		src, cleanup, err := a.source(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()
		names, err := src.Tables(cmd.Context())
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tablesCmd)
}

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bladegen/bladegen/watch"
)

var (
	flagForce  bool
	flagBackup bool
	flagDryRun bool
	flagWatch  bool
)

// generateCmd renders the views for the named tables, or for every
// table when none are given.
var generateCmd = &cobra.Command{
	Use:   "generate [table ...]",
	Short: "Generate Blade views for the given tables (default: all)",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if flagForce {
			a.cfg.Force = true
		}
		if flagBackup {
			a.cfg.Backup = true
		}
		a.dryRun = flagDryRun

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		src, cleanup, err := a.source(ctx)
		if err != nil {
			return err
		}
		defer cleanup()

		tables := args
		if len(tables) == 0 {
			if tables, err = src.Tables(ctx); err != nil {
				return err
			}
		}
		run := func(ctx context.Context) error {
			for _, table := range tables {
				if err := a.generateTable(ctx, src, table); err != nil {
					return err
				}
			}
			return nil
		}
		if err := run(ctx); err != nil {
			return err
		}
		if flagWatch {
			if a.cfg.StubDir == "" {
				return fmt.Errorf("--watch requires --stub-dir")
			}
			err := watch.New(a.cfg.StubDir).WithLogger(a.log).Run(ctx, run)
			if err == context.Canceled {
				return nil
			}
			return err
		}
		return nil
	},
}

func init() {
	f := generateCmd.Flags()
	f.BoolVarP(&flagForce, "force", "f", false, "overwrite existing files")
	f.BoolVar(&flagBackup, "backup", false, "keep a .bak copy of overwritten files")
	f.BoolVar(&flagDryRun, "dry-run", false, "print the manifest without writing files")
	f.BoolVarP(&flagWatch, "watch", "w", false, "regenerate when custom stubs change (requires --stub-dir)")
	rootCmd.AddCommand(generateCmd)
}

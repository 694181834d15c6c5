package main

import (
	"fmt"

	"buildchem-be/internal/config"
	"buildchem-be/internal/model"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newMigrateCmd(verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the catalog, request and inquiry tables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := openDB(config.Load(), *verbose)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, table := range model.Tables() {
				fmt.Fprintf(out, "  %T\n", table)
			}
			if err := model.AutoMigrate(db); err != nil {
				return err
			}
			color.New(color.FgGreen).Fprintf(out, "Migrated %d tables\n", len(model.Tables()))
			return nil
		},
	}
}

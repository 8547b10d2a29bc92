package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-notes/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-notes/pkg/config"
)

var migrateDownSteps int

// newMigrateCommand creates the migrate command group.
func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back the embedded schema migrations",
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd, func(db *gorm.DB) error {
				n, err := database.MigrateUp(db)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "✅ Applied %d migrations\n", n)
				return nil
			})
		},
	}

	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd, func(db *gorm.DB) error {
				n, err := database.MigrateDown(db, migrateDownSteps)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "✅ Rolled back %d migrations\n", n)
				return nil
			})
		},
	}
	down.Flags().IntVar(&migrateDownSteps, "steps", 1, "Number of migrations to roll back (0 = all)")

	status := &cobra.Command{
		Use:   "status",
		Short: "List migrations and when they were applied",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd, func(db *gorm.DB) error {
				rows, err := database.Status(db)
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "MIGRATION\tAPPLIED AT")
				for _, r := range rows {
					applied := "pending"
					if r.AppliedAt != nil {
						applied = r.AppliedAt.Format("2006-01-02 15:04:05")
					}
					fmt.Fprintf(w, "%s\t%s\n", r.ID, applied)
				}
				return w.Flush()
			})
		},
	}

	cmd.AddCommand(up, down, status)
	return cmd
}

// withDB connects using the server configuration and runs fn
func withDB(cmd *cobra.Command, fn func(db *gorm.DB) error) error {
	cfg, err := config.Parse()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	db, err := database.NewPostgresDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer database.CloseDB(db)
	return fn(db)
}

package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"favorites_api/internal/config"
	"favorites_api/internal/database"
)

var (
	dbURL string
	steps int
)

// migrateCmd groups the schema migration subcommands
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Manage the database schema.

Subcommands:
  up      - Apply pending migrations
  down    - Roll back applied migrations
  status  - Show migration status`,
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending migrations",
	Long: `Apply pending migrations in version order.

Examples:
  api migrate up              # Apply all pending migrations
  api migrate up --steps 1    # Apply the next migration`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(cmd.Context(), func(ctx context.Context, m *database.Migrator) error {
			n, err := m.Up(ctx, steps)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Applied %d migration(s)\n", n)
			return nil
		})
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back migrations",
	Long: `Roll back applied migrations, newest first.

Examples:
  api migrate down            # Roll back the last migration
  api migrate down --steps 3  # Roll back the last three`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(cmd.Context(), func(ctx context.Context, m *database.Migrator) error {
			n, err := m.Down(ctx, steps)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Rolled back %d migration(s)\n", n)
			return nil
		})
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(cmd.Context(), func(ctx context.Context, m *database.Migrator) error {
			statuses, err := m.Status(ctx)
			if err != nil {
				return err
			}
			printStatus(cmd, statuses)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd)

	migrateCmd.PersistentFlags().StringVar(&dbURL, "db", "", "Database connection URL (defaults to DB_CONNECTION_STRING)")
	migrateUpCmd.Flags().IntVar(&steps, "steps", 0, "Number of migrations to apply (0 applies all)")
	migrateDownCmd.Flags().IntVar(&steps, "steps", 1, "Number of migrations to roll back")
}

func withMigrator(ctx context.Context, fn func(ctx context.Context, m *database.Migrator) error) error {
	config.SetupLogger(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))

	dsn := dbURL
	if dsn == "" {
		var err error
		if dsn, err = config.LoadDatabaseURL(); err != nil {
			return err
		}
	}

	pool, err := database.Connect(ctx, dsn, database.PoolOptions{MaxConns: 2, MinConns: 1})
	if err != nil {
		return err
	}
	defer pool.Close()

	return fn(ctx, database.NewMigrator(pool))
}

func printStatus(cmd *cobra.Command, statuses []database.MigrationStatus) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "VERSION\tNAME\tSTATUS\tAPPLIED AT")
	pending := 0
	for _, s := range statuses {
		state, at := "pending", "-"
		if s.Applied {
			state = "applied"
			if s.AppliedAt != nil {
				at = s.AppliedAt.Format("2006-01-02 15:04:05")
			}
		} else {
			pending++
		}
		fmt.Fprintf(w, "%04d\t%s\t%s\t%s\n", s.Version, s.Name, state, at)
	}
	log.Debug().Int("pending", pending).Int("total", len(statuses)).Msg("migration status")
}

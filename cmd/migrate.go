package main

import (
	"fmt"

	"serverless_blog/internal/config"
	"serverless_blog/internal/logger"
	"serverless_blog/internal/repository/db"

	"github.com/spf13/cobra"
)

func newMigrateCommand(configFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(
		newMigrateSubcommand(configFile, db.MigrateUp, "Apply all pending migrations"),
		newMigrateSubcommand(configFile, db.MigrateDown, "Roll back the latest migration"),
		newMigrateSubcommand(configFile, db.MigrateStatus, "Print applied and pending migrations"),
	)
	return cmd
}

func newMigrateSubcommand(configFile *string, command, short string) *cobra.Command {
	return &cobra.Command{
		Use:   command,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// the signing secret is irrelevant here
			cfg, err := config.Read(*configFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			log := logger.Get(cfg.Log.Level)
			defer log.Sync()

			ctx := cmd.Context()
			conn, err := db.Open(ctx, dbConfig(cfg))
			if err != nil {
				return err
			}
			defer conn.Close()

			if err := db.Migrate(ctx, conn, cfg.DB.Driver, command); err != nil {
				return err
			}
			log.Infow("migrate finished", "command", command, "driver", cfg.DB.Driver)
			return nil
		},
	}
}

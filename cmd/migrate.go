package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/antoniocesar16/addon-api-mkauth/pkg/config"
	"github.com/antoniocesar16/addon-api-mkauth/pkg/logger"
	"github.com/antoniocesar16/addon-api-mkauth/pkg/postgres"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	for _, c := range []struct {
		use, short string
	}{
		{"up", "Apply all pending migrations"},
		{"down", "Roll back the latest migration"},
		{"status", "Print the status of every migration"},
	} {
		cmd.AddCommand(&cobra.Command{
			Use:   c.use,
			Short: c.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, err := config.New(envPath)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}

				_, err = logger.New(cfg.Logger.Level)
				if err != nil {
					return fmt.Errorf("create logger: %w", err)
				}

				return postgres.Migrate(cmd.Context(), cfg.Postgres.DSN, c.use)
			},
		})
	}

	return cmd
}

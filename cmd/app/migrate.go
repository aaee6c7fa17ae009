package main

import (
	"github.com/spf13/cobra"

	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/config"
	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/db"
	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/logger"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}
			l, err := logger.NewSugared(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = l.Sync() }()

			database, err := db.NewGormClient(cfg, l)
			if err != nil {
				return err
			}
			if sqlDB, err := database.DB(); err == nil {
				defer func() { _ = sqlDB.Close() }()
			}

			if err := db.Migrate(database); err != nil {
				return err
			}

			l.Info("migrations complete")
			return nil
		},
	}
}

package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"interviewai-backend/internal/shared/storage/db"
	"interviewai-backend/internal/shared/telemetry"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if strings.TrimSpace(cfg.DatabaseURL) == "" {
			return errors.New("DATABASE_URL is required")
		}
		ctx := cmd.Context()

		sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.DefaultMigrateOptions().Merge(db.OptionsFromConfig(cfg)))
		if err != nil {
			return err
		}
		defer sqlDB.Close()

		if err := db.RunMigrations(ctx, sqlDB); err != nil {
			return err
		}
		telemetry.L().Info("migrations applied", zap.String("env", cfg.Env))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

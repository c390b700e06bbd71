package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"api_pos/internal/config"
	"api_pos/internal/storage"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		logger, _ := zap.NewProduction()
		defer logger.Sync()

		db, err := storage.Open(cfg.DBDriver, cfg.DBDSN)
		if err != nil {
			return err
		}
		if err := storage.Migrate(db); err != nil {
			return err
		}

		logger.Info("migrations applied", zap.String("db_driver", cfg.DBDriver))
		return nil
	},
}

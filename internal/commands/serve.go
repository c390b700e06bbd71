package commands

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"api_pos/api"
	"api_pos/internal/config"
	"api_pos/internal/storage"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Migrate the schema and start the HTTP server",
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

		r := gin.Default()
		api.InitRoutesWithLogger(r, db, cfg, logger)

		logger.Info("server starting",
			zap.String("addr", cfg.Addr),
			zap.String("db_driver", cfg.DBDriver),
		)
		if err := r.Run(cfg.Addr); err != nil {
			return fmt.Errorf("error trying to start server: %w", err)
		}
		return nil
	},
}

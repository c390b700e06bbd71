package commands

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"api_pos/internal/catalog"
	"api_pos/internal/config"
	"api_pos/internal/storage"
	"api_pos/internal/users"
)

var (
	seedAdminPassword  string
	seedSellerPassword string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create demo accounts and sample products",
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

		userService := users.NewService(
			users.NewRepository(db),
			users.NewPasswordHasher(cfg.BcryptCost),
			users.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL),
			logger,
		)
		if _, err := userService.Create("admin", seedAdminPassword, users.RoleAdministrator); err != nil {
			return err
		}
		if _, err := userService.Create("seller", seedSellerPassword, users.RoleSeller); err != nil {
			return err
		}

		catalogService := catalog.NewService(catalog.NewRepository(db), logger)
		samples := []struct {
			code, name string
			price      string
			quantity   int
		}{
			{"7501000000011", "Coca Cola 600ml", "1.50", 48},
			{"7501000000028", "Sabritas Original 45g", "0.99", 30},
			{"7501000000035", "Galletas Marias", "1.25", 24},
		}
		for _, p := range samples {
			price, _ := decimal.NewFromString(p.price)
			if _, err := catalogService.Create(p.code, p.name, price, p.quantity); err != nil {
				return err
			}
		}

		logger.Info("seed data created", zap.Int("products", len(samples)))
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedAdminPassword, "admin-password", "admin123", "password for the admin account")
	seedCmd.Flags().StringVar(&seedSellerPassword, "seller-password", "seller123", "password for the seller account")
}

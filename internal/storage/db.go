package storage

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"api_pos/internal/catalog"
	"api_pos/internal/sales"
	"api_pos/internal/users"
)

// Open connects to the configured database. The original deployment runs on
// MySQL; sqlite is the default for local development and tests.
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "mysql":
		dialector = mysql.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unknown database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the four tables the application uses.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&users.User{},
		&catalog.Product{},
		&sales.Sale{},
		&sales.SaleItem{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

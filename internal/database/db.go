package database

import (
	"fmt"
	"log"

	"stock-tracker-backend/internal/config"
	"stock-tracker-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres pool and runs migrations. The returned handle is
// constructed once at process start and injected into the services; there is
// no package-level database state.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Product{},
		&models.StockTransaction{},
	); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	log.Println("Database connected, migrations applied")
	return db, nil
}

// Close drains the underlying connection pool. In-flight queries finish
// before the pool shuts down.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

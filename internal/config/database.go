package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"driver_hire/internal/models"
)

// Connect opens the configured store and returns the handle. Callers own the
// handle's lifetime; there is no package-level state.
func Connect(cfg Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if cfg.UsesNetworkStore() {
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, cfg.SSLMode,
		)
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(cfg.File)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("store unreachable: %w", err)
	}
	return db, nil
}

// EnsureSchema creates the tables if absent. Safe to run on every startup.
func EnsureSchema(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Driver{},
		&models.Organisation{},
		&models.DriverReview{},
		&models.OrganisationReview{},
	)
}

package database

import (
	"fmt"

	"leadgate/internal/auth"
	"leadgate/internal/config"
	"leadgate/internal/models"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the configured database and runs migrations. The returned
// handle is passed to handlers explicitly; there is no package-level
// connection.
//
// TranslateError is enabled so unique-index violations surface as
// gorm.ErrDuplicatedKey on both drivers. That error is the single source
// of truth for duplicate-submission detection.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.DBDriver {
	case "postgres":
		db, err = gorm.Open(postgres.Open(cfg.DatabaseURL), gormCfg)
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(cfg.DBPath), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.WithField("driver", cfg.DBDriver).Info("database connected")
	return db, nil
}

// Migrate runs gorm auto-migration for every entity.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Contact{},
		&models.CareerApplication{},
		&models.InternshipApplication{},
		&models.AdminUser{},
	)
	if err != nil {
		return fmt.Errorf("auto-migration: %w", err)
	}
	return nil
}

// SeedAdmin creates the bootstrap SuperAdmin account from config when the
// admin table is empty. It is a no-op if admins already exist or no
// credentials are configured.
func SeedAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.AdminUser{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin := models.AdminUser{
		UUID:         uuid.NewString(),
		Email:        cfg.AdminEmail,
		PasswordHash: hash,
		Role:         auth.RoleSuperAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.WithField("email", cfg.AdminEmail).Info("seeded bootstrap admin account")
	return nil
}

package database

import (
	"errors"
	"fmt"

	"github.com/JoonHyoungLee-Seoul/vanta/internal/config"
	"github.com/JoonHyoungLee-Seoul/vanta/internal/models"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	log.Info().Str("db", cfg.DBName).Msg("database connected")
	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Invitation{},
		&models.RegisterSession{},
		&models.User{},
		&models.Enrollment{},
	)
}

// SeedInvitations makes sure the bootstrap invitation code exists so a fresh
// deployment can be signed into without touching the database by hand.
func SeedInvitations(db *gorm.DB) error {
	const code = "TEST001"

	var existing models.Invitation
	err := db.Where("code = ?", code).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err := db.Create(&models.Invitation{Code: code, IsActive: true}).Error; err != nil {
		return err
	}
	log.Info().Str("code", code).Msg("seeded invitation code")
	return nil
}

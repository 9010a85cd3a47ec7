package services_test

import (
	"testing"

	"github.com/JoonHyoungLee-Seoul/vanta/internal/models"
	"github.com/JoonHyoungLee-Seoul/vanta/internal/services"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Invitation{},
		&models.RegisterSession{},
		&models.User{},
		&models.Enrollment{},
	))
	return db
}

func newAuthService(db *gorm.DB, adminIDs ...uint) *services.AuthService {
	return services.NewAuthService(db, "test-secret", 24, adminIDs)
}

func seedInvitation(t *testing.T, db *gorm.DB, code string, active bool) models.Invitation {
	t.Helper()
	invitation := models.Invitation{Code: code, IsActive: active}
	require.NoError(t, db.Create(&invitation).Error)
	return invitation
}

func createUser(t *testing.T, db *gorm.DB, userID string) models.User {
	t.Helper()
	user := models.User{
		UserID:       userID,
		Name:         "Kim",
		PasswordHash: "x",
		Birthday:     "1990-01-01",
		Phone:        "010-0000-" + userID,
		InvitationID: 1,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

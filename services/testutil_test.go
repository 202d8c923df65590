package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/pritom1343/travelbook-api/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database migrated with the full
// schema. Each test gets its own named database so they cannot see each
// other's rows.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf(
		"file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"),
	)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.TourPackage{},
		&models.Booking{},
		&models.CustomTrip{},
		&models.Refund{},
		&models.Rating{},
		&models.HomeImage{},
		&models.ChatSession{},
		&models.ChatMessage{},
	))
	return db
}

// createTestUser inserts a user row and returns it
func createTestUser(t *testing.T, db *gorm.DB, username string, isAdmin bool) *models.User {
	t.Helper()
	user := &models.User{
		Username:    username,
		Email:       username + "@example.com",
		IsAdmin:     isAdmin,
		ImageFile:   "default.png",
		CreatedDate: time.Now(),
	}
	require.NoError(t, user.SetPassword("hunter22"))
	require.NoError(t, db.Create(user).Error)
	return user
}

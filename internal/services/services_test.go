package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/TheoLaperrouse/SportChallenge/internal/models"
	"github.com/TheoLaperrouse/SportChallenge/internal/strava"
)

// newTestDB opens an isolated in-memory SQLite database. cache=shared keeps
// the schema visible across gorm's pooled connections; the per-test name
// keeps tests from seeing each other's data.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Activity{},
		&models.DistanceSnapshot{},
		&models.Notification{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, stravaID int64, firstname, lastname, username string) *models.User {
	t.Helper()
	expires := time.Now().Add(time.Hour)
	user := models.User{
		StravaID:       stravaID,
		Username:       username,
		Firstname:      firstname,
		Lastname:       lastname,
		AccessToken:    fmt.Sprintf("at-%d", stravaID),
		RefreshToken:   fmt.Sprintf("rt-%d", stravaID),
		TokenExpiresAt: &expires,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createActivity(t *testing.T, db *gorm.DB, userID uint, stravaID int64, actType string, distance float64) {
	t.Helper()
	act := models.Activity{
		StravaID:  stravaID,
		UserID:    userID,
		Type:      actType,
		SportType: actType,
		Name:      fmt.Sprintf("activity %d", stravaID),
		Distance:  distance,
		StartDate: time.Now().Add(-time.Hour),
	}
	require.NoError(t, db.Create(&act).Error)
}

func feedActivity(id int64, actType string, distance float64) strava.Activity {
	return strava.Activity{
		ID:                 id,
		Type:               actType,
		SportType:          actType,
		Name:               fmt.Sprintf("activity %d", id),
		Distance:           distance,
		MovingTime:         1800,
		ElapsedTime:        1900,
		TotalElevationGain: 25,
		StartDate:          time.Date(2025, 6, 1, 7, 0, 0, 0, time.UTC),
		AverageSpeed:       3.2,
		MaxSpeed:           4.5,
	}
}

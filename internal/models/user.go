package models

import (
	"time"
)

// User is an athlete who connected their Strava account. The Strava
// credential triple lives on the user row; TokenExpiresAt is nil until the
// first exchange reports an expiry.
type User struct {
	ID             uint  `gorm:"primaryKey"`
	StravaID       int64 `gorm:"uniqueIndex;not null"`
	Username       string
	Firstname      string
	Lastname       string
	AvatarURL      string
	AccessToken    string
	RefreshToken   string
	TokenExpiresAt *time.Time
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

// Session is a browser session created after the OAuth callback.
type Session struct {
	ID        string    `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

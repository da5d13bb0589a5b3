package models

import (
	"time"
)

// Activity mirrors one Strava activity. StravaID is the reconciliation key:
// sync upserts on it and deletes rows whose id disappeared from the remote
// feed. Optional metrics are pointers so that "not reported" stays NULL
// instead of a fake zero.
type Activity struct {
	ID                 uint  `gorm:"primaryKey"`
	StravaID           int64 `gorm:"uniqueIndex;not null"`
	UserID             uint  `gorm:"not null;index"`
	Type               string
	SportType          string
	Name               string
	Distance           float64
	MovingTime         int
	ElapsedTime        int
	TotalElevationGain float64
	StartDate          time.Time
	AverageSpeed       float64
	MaxSpeed           float64
	AverageHeartrate   *float64
	MaxHeartrate       *float64
	SummaryPolyline    *string
	StartLatlng        *string   // "lat,lng"
	CreatedAt          time.Time `gorm:"autoCreateTime"`
}

// DistanceSnapshot holds the cumulative distance a user had in a category at
// the end of the last overtaking pass. One row per (user, category); the row
// is overwritten every pass and never deleted.
type DistanceSnapshot struct {
	ID            uint      `gorm:"primaryKey"`
	UserID        uint      `gorm:"not null;uniqueIndex:uniq_snapshot_user_type"`
	ActivityType  string    `gorm:"size:50;not null;uniqueIndex:uniq_snapshot_user_type"`
	TotalDistance float64   `gorm:"not null;default:0"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

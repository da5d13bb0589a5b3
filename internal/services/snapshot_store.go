package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/TheoLaperrouse/SportChallenge/internal/models"
)

// SnapshotStore keeps the per-(user, category) cumulative distance observed
// at the last detection pass. It is the baseline the detector compares
// against, not a history: one row per pair, overwritten every pass.
type SnapshotStore struct {
	db *gorm.DB
}

func NewSnapshotStore(db *gorm.DB) *SnapshotStore {
	return &SnapshotStore{db: db}
}

// Previous returns the last recorded distance for every user in a category.
// Users without a row are simply absent; lookups default to 0.
func (s *SnapshotStore) Previous(ctx context.Context, category string) (map[uint]float64, error) {
	var rows []models.DistanceSnapshot
	if err := s.db.WithContext(ctx).Where("activity_type = ?", category).Find(&rows).Error; err != nil {
		return nil, err
	}
	prev := make(map[uint]float64, len(rows))
	for _, r := range rows {
		prev[r.UserID] = r.TotalDistance
	}
	return prev, nil
}

// Get returns a single user's last recorded distance, 0 when none exists.
func (s *SnapshotStore) Get(ctx context.Context, userID uint, category string) (float64, error) {
	var row models.DistanceSnapshot
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND activity_type = ?", userID, category).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return row.TotalDistance, nil
}

// Set upserts the (user, category) row, unconditionally overwriting the
// stored distance and timestamp.
func (s *SnapshotStore) Set(ctx context.Context, userID uint, category string, distance float64) error {
	snap := models.DistanceSnapshot{
		UserID:        userID,
		ActivityType:  category,
		TotalDistance: distance,
		UpdatedAt:     time.Now(),
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "activity_type"}},
		DoUpdates: clause.AssignmentColumns([]string{"total_distance", "updated_at"}),
	}).Create(&snap).Error
}

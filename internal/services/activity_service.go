package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/TheoLaperrouse/SportChallenge/internal/challenge"
	"github.com/TheoLaperrouse/SportChallenge/internal/models"
)

// ActivityService serves the read side of activities: a user's own list and
// the map feed. The optional challenge start date bounds every query.
type ActivityService struct {
	db        *gorm.DB
	startDate *time.Time
}

func NewActivityService(db *gorm.DB, startDate *time.Time) *ActivityService {
	return &ActivityService{db: db, startDate: startDate}
}

// categoryFilter narrows a query to the raw types of a known category; an
// unknown or empty name leaves the query untouched.
func categoryFilter(q *gorm.DB, category string) *gorm.DB {
	if cat, ok := challenge.ByName(category); ok {
		q = q.Where("type IN ?", cat.Types)
	}
	return q
}

func sinceFilter(q *gorm.DB, start *time.Time) *gorm.DB {
	if start != nil {
		q = q.Where("start_date >= ?", *start)
	}
	return q
}

// ListForUser returns the user's activities oldest first.
func (s *ActivityService) ListForUser(ctx context.Context, userID uint, category string) ([]models.Activity, error) {
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	q = categoryFilter(q, category)
	q = sinceFilter(q, s.startDate)

	var activities []models.Activity
	err := q.Order("start_date").Find(&activities).Error
	return activities, err
}

// MapActivity is an activity with a route, joined with its owner.
type MapActivity struct {
	ID                 uint      `json:"id"`
	Name               string    `json:"name"`
	Type               string    `json:"type"`
	Distance           float64   `json:"distance"`
	MovingTime         int       `json:"movingTime"`
	TotalElevationGain float64   `json:"totalElevationGain"`
	StartDate          time.Time `json:"startDate"`
	SummaryPolyline    string    `json:"summaryPolyline"`
	StartLatlng        *string   `json:"startLatlng"`
	UserID             uint      `json:"userId"`
	Firstname          string    `json:"firstname"`
	Lastname           string    `json:"lastname"`
	AvatarURL          string    `json:"avatarUrl"`
}

// MapActivities returns every activity carrying a polyline, newest first.
func (s *ActivityService) MapActivities(ctx context.Context, category string) ([]MapActivity, error) {
	q := s.db.WithContext(ctx).Model(&models.Activity{}).
		Select(`activities.id, activities.name, activities.type, activities.distance,
			activities.moving_time, activities.total_elevation_gain, activities.start_date,
			activities.summary_polyline, activities.start_latlng,
			users.id AS user_id, users.firstname, users.lastname, users.avatar_url`).
		Joins("JOIN users ON users.id = activities.user_id").
		Where("activities.summary_polyline IS NOT NULL")
	q = categoryFilter(q, category)
	q = sinceFilter(q, s.startDate)

	var result []MapActivity
	err := q.Order("activities.start_date DESC").Scan(&result).Error
	return result, err
}

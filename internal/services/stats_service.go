package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/TheoLaperrouse/SportChallenge/internal/models"
)

// StatsService computes the dashboard aggregates. Everything is recomputed
// from the activities table on each call; nothing is cached.
type StatsService struct {
	db        *gorm.DB
	startDate *time.Time
}

func NewStatsService(db *gorm.DB, startDate *time.Time) *StatsService {
	return &StatsService{db: db, startDate: startDate}
}

type PersonalStats struct {
	TotalActivities int64    `json:"totalActivities"`
	TotalDistance   float64  `json:"totalDistance"`
	TotalMovingTime int64    `json:"totalMovingTime"`
	TotalElevation  float64  `json:"totalElevation"`
	AvgSpeed        *float64 `json:"avgSpeed"`
	AvgHeartrate    *float64 `json:"avgHeartrate"`
	MaxDistance     *float64 `json:"maxDistance"`
}

// Personal aggregates one user's activities, optionally per category.
func (s *StatsService) Personal(ctx context.Context, userID uint, category string) (PersonalStats, error) {
	q := s.db.WithContext(ctx).Model(&models.Activity{}).Where("user_id = ?", userID)
	q = categoryFilter(q, category)
	q = sinceFilter(q, s.startDate)

	var stats PersonalStats
	err := q.Select(`COUNT(id) AS total_activities,
		COALESCE(SUM(distance), 0) AS total_distance,
		COALESCE(SUM(moving_time), 0) AS total_moving_time,
		COALESCE(SUM(total_elevation_gain), 0) AS total_elevation,
		AVG(average_speed) AS avg_speed,
		AVG(average_heartrate) AS avg_heartrate,
		MAX(distance) AS max_distance`).
		Scan(&stats).Error
	return stats, err
}

type LeaderboardEntry struct {
	UserID          uint    `json:"userId"`
	Username        string  `json:"username"`
	Firstname       string  `json:"firstname"`
	Lastname        string  `json:"lastname"`
	AvatarURL       string  `json:"avatarUrl"`
	TotalActivities int64   `json:"totalActivities"`
	TotalDistance   float64 `json:"totalDistance"`
	TotalMovingTime int64   `json:"totalMovingTime"`
	TotalElevation  float64 `json:"totalElevation"`
}

type GlobalStats struct {
	TotalActivities   int64   `json:"totalActivities"`
	TotalDistance     float64 `json:"totalDistance"`
	TotalMovingTime   int64   `json:"totalMovingTime"`
	TotalElevation    float64 `json:"totalElevation"`
	TotalParticipants int64   `json:"totalParticipants"`
}

// Global returns the distance leaderboard and the challenge-wide totals.
func (s *StatsService) Global(ctx context.Context, category string) ([]LeaderboardEntry, GlobalStats, error) {
	base := s.db.WithContext(ctx).Model(&models.Activity{})
	base = categoryFilter(base, category)
	base = sinceFilter(base, s.startDate)

	var leaderboard []LeaderboardEntry
	err := base.Session(&gorm.Session{}).
		Select(`users.id AS user_id, users.username, users.firstname, users.lastname,
			users.avatar_url,
			COUNT(activities.id) AS total_activities,
			COALESCE(SUM(activities.distance), 0) AS total_distance,
			COALESCE(SUM(activities.moving_time), 0) AS total_moving_time,
			COALESCE(SUM(activities.total_elevation_gain), 0) AS total_elevation`).
		Joins("JOIN users ON users.id = activities.user_id").
		Group("users.id, users.username, users.firstname, users.lastname, users.avatar_url").
		Order("total_distance DESC").
		Scan(&leaderboard).Error
	if err != nil {
		return nil, GlobalStats{}, err
	}

	var stats GlobalStats
	err = base.Session(&gorm.Session{}).
		Select(`COUNT(id) AS total_activities,
			COALESCE(SUM(distance), 0) AS total_distance,
			COALESCE(SUM(moving_time), 0) AS total_moving_time,
			COALESCE(SUM(total_elevation_gain), 0) AS total_elevation,
			COUNT(DISTINCT user_id) AS total_participants`).
		Scan(&stats).Error
	return leaderboard, stats, err
}

type TimeseriesPoint struct {
	Date               string  `json:"date"`
	CumulativeDistance float64 `json:"cumulativeDistance"`
}

type UserTimeseries struct {
	UserID    uint              `json:"userId"`
	Username  string            `json:"username"`
	Firstname string            `json:"firstname"`
	Lastname  string            `json:"lastname"`
	Data      []TimeseriesPoint `json:"data"`
}

// Timeseries returns, per user, the cumulative distance day by day. Daily
// bucketing happens here rather than in SQL so the same code serves both
// dialects.
func (s *StatsService) Timeseries(ctx context.Context, category string) ([]UserTimeseries, error) {
	q := s.db.WithContext(ctx).Model(&models.Activity{}).
		Select(`activities.user_id, activities.start_date, activities.distance,
			users.username, users.firstname, users.lastname`).
		Joins("JOIN users ON users.id = activities.user_id")
	q = categoryFilter(q, category)
	q = sinceFilter(q, s.startDate)

	var rows []struct {
		UserID    uint
		StartDate time.Time
		Distance  float64
		Username  string
		Firstname string
		Lastname  string
	}
	if err := q.Order("activities.user_id, activities.start_date").Scan(&rows).Error; err != nil {
		return nil, err
	}

	var series []UserTimeseries
	byUser := map[uint]int{}
	for _, row := range rows {
		idx, ok := byUser[row.UserID]
		if !ok {
			idx = len(series)
			byUser[row.UserID] = idx
			series = append(series, UserTimeseries{
				UserID:    row.UserID,
				Username:  row.Username,
				Firstname: row.Firstname,
				Lastname:  row.Lastname,
			})
		}

		day := row.StartDate.Format("2006-01-02")
		data := series[idx].Data
		if n := len(data); n > 0 && data[n-1].Date == day {
			data[n-1].CumulativeDistance += row.Distance
		} else {
			prev := 0.0
			if n > 0 {
				prev = data[n-1].CumulativeDistance
			}
			data = append(data, TimeseriesPoint{Date: day, CumulativeDistance: prev + row.Distance})
		}
		series[idx].Data = data
	}
	return series, nil
}

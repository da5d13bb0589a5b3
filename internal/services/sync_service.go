package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/go-co-op/gocron"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/TheoLaperrouse/SportChallenge/internal/models"
	"github.com/TheoLaperrouse/SportChallenge/internal/strava"
)

// ActivityFeed is the paginated remote activity source.
type ActivityFeed interface {
	ListActivities(ctx context.Context, accessToken string, page, perPage int) ([]strava.Activity, error)
}

// TokenEnsurer guards the credential before remote calls.
type TokenEnsurer interface {
	EnsureValid(ctx context.Context, user *models.User) (strava.TokenSet, error)
}

// SyncService reconciles every user's local activities against Strava and
// drives the periodic cycle: token guard, per-user sync with pacing, then one
// overtaking pass.
type SyncService struct {
	db        *gorm.DB
	feed      ActivityFeed
	tokens    TokenEnsurer
	overtake  *OvertakeService
	scheduler *gocron.Scheduler
	pageSize  int
	userDelay time.Duration
}

func NewSyncService(db *gorm.DB, feed ActivityFeed, tokens TokenEnsurer, overtake *OvertakeService, pageSize int, userDelay time.Duration) *SyncService {
	return &SyncService{
		db:        db,
		feed:      feed,
		tokens:    tokens,
		overtake:  overtake,
		scheduler: gocron.NewScheduler(time.UTC),
		pageSize:  pageSize,
		userDelay: userDelay,
	}
}

// Start schedules the periodic cycle. SingletonMode keeps a slow cycle from
// overlapping with the next trigger.
func (s *SyncService) Start(schedule string) error {
	_, err := s.scheduler.Cron(schedule).SingletonMode().Do(func() {
		s.SyncAll(context.Background())
	})
	if err != nil {
		return fmt.Errorf("failed to schedule sync: %w", err)
	}
	s.scheduler.StartAsync()
	log.Printf("[Scheduler] Sync scheduler started (%s)", schedule)
	return nil
}

func (s *SyncService) Stop() {
	s.scheduler.Stop()
}

// SyncAll runs one full cycle. Per-user failures are logged and isolated;
// the overtaking pass runs regardless and its failure is isolated too.
func (s *SyncService) SyncAll(ctx context.Context) {
	var users []models.User
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		log.Printf("[Scheduler] Error loading users: %v", err)
		return
	}
	log.Printf("[Scheduler] Starting sync for %d users", len(users))

	for i := range users {
		user := &users[i]
		synced, err := s.SyncUser(ctx, user)
		if err != nil {
			log.Printf("[Scheduler] Error syncing user %d (%s): %v", user.ID, user.Username, err)
		} else {
			log.Printf("[Scheduler] Synced %d activities for user %d (%s)", synced, user.ID, user.Username)
		}
		// Pace requests to stay inside Strava's rate limit.
		time.Sleep(s.userDelay)
	}

	if err := s.overtake.Detect(ctx); err != nil {
		log.Printf("[Scheduler] Error checking overtaking: %v", err)
	}

	log.Println("[Scheduler] Sync completed")
}

// SyncUser reconciles one user: validates the credential, walks the remote
// feed page by page upserting by strava_id, then deletes local rows the
// remote no longer has. Returns the number of activities upserted.
func (s *SyncService) SyncUser(ctx context.Context, user *models.User) (int, error) {
	if user.AccessToken == "" || user.RefreshToken == "" {
		return 0, &strava.AuthError{Err: errors.New("user has no Strava tokens")}
	}

	tokens, err := s.tokens.EnsureValid(ctx, user)
	if err != nil {
		return 0, err
	}
	if tokens.AccessToken != user.AccessToken {
		if err := s.persistTokens(ctx, user, tokens); err != nil {
			return 0, err
		}
	}

	total := 0
	seen := make([]int64, 0, s.pageSize)
	for page := 1; ; page++ {
		batch, err := s.feed.ListActivities(ctx, tokens.AccessToken, page, s.pageSize)
		if err != nil {
			// Pages already written stay committed; upserts make the next
			// run replayable.
			return total, err
		}
		for _, a := range batch {
			if err := s.upsertActivity(ctx, user.ID, a); err != nil {
				return total, err
			}
			seen = append(seen, a.ID)
			total++
		}
		if len(batch) < s.pageSize {
			break
		}
	}

	// Reclaim deletions made on Strava. An empty feed is left alone so a
	// remote hiccup can never wipe local history.
	if len(seen) > 0 {
		res := s.db.WithContext(ctx).
			Where("user_id = ? AND strava_id NOT IN ?", user.ID, seen).
			Delete(&models.Activity{})
		if res.Error != nil {
			return total, fmt.Errorf("clean up deleted activities: %w", res.Error)
		}
		if res.RowsAffected > 0 {
			log.Printf("[Scheduler] Cleaned up %d deleted activities for user %d (%s)",
				res.RowsAffected, user.ID, user.Username)
		}
	}

	return total, nil
}

func (s *SyncService) persistTokens(ctx context.Context, user *models.User, tokens strava.TokenSet) error {
	expiresAt := tokens.ExpiresAt
	err := s.db.WithContext(ctx).Model(user).Updates(map[string]any{
		"access_token":     tokens.AccessToken,
		"refresh_token":    tokens.RefreshToken,
		"token_expires_at": expiresAt,
	}).Error
	if err != nil {
		return fmt.Errorf("persist refreshed tokens: %w", err)
	}
	user.AccessToken = tokens.AccessToken
	user.RefreshToken = tokens.RefreshToken
	user.TokenExpiresAt = &expiresAt
	return nil
}

// mutable activity columns refreshed on conflict; strava_id and user_id never change.
var activityUpdateColumns = []string{
	"type", "sport_type", "name", "distance", "moving_time", "elapsed_time",
	"total_elevation_gain", "start_date", "average_speed", "max_speed",
	"average_heartrate", "max_heartrate", "summary_polyline", "start_latlng",
}

func (s *SyncService) upsertActivity(ctx context.Context, userID uint, a strava.Activity) error {
	act := models.Activity{
		StravaID:           a.ID,
		UserID:             userID,
		Type:               a.Type,
		SportType:          a.SportType,
		Name:               a.Name,
		Distance:           a.Distance,
		MovingTime:         a.MovingTime,
		ElapsedTime:        a.ElapsedTime,
		TotalElevationGain: a.TotalElevationGain,
		StartDate:          a.StartDate,
		AverageSpeed:       a.AverageSpeed,
		MaxSpeed:           a.MaxSpeed,
		AverageHeartrate:   a.AverageHeartrate,
		MaxHeartrate:       a.MaxHeartrate,
		SummaryPolyline:    summaryPolyline(a),
		StartLatlng:        startLatlng(a),
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "strava_id"}},
		DoUpdates: clause.AssignmentColumns(activityUpdateColumns),
	}).Create(&act).Error
}

func summaryPolyline(a strava.Activity) *string {
	if a.Map == nil {
		return nil
	}
	return a.Map.SummaryPolyline
}

func startLatlng(a strava.Activity) *string {
	if len(a.StartLatlng) < 2 {
		return nil
	}
	pair := strconv.FormatFloat(a.StartLatlng[0], 'f', -1, 64) + "," +
		strconv.FormatFloat(a.StartLatlng[1], 'f', -1, 64)
	return &pair
}

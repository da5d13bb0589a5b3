package services

import (
	"context"
	"fmt"
	"log"
	"math/rand"

	"gorm.io/gorm"

	"github.com/TheoLaperrouse/SportChallenge/internal/challenge"
	"github.com/TheoLaperrouse/SportChallenge/internal/models"
)

// Announcer forwards a detected crossing to an out-of-band channel. Optional;
// a nil announcer disables it.
type Announcer interface {
	AnnounceCrossing(category, overtakerName, overtakenName string)
}

// OvertakeService compares each user's current cumulative distance per
// category against the snapshot taken at the previous pass and writes paired
// notifications for every crossing.
type OvertakeService struct {
	db        *gorm.DB
	snapshots *SnapshotStore
	rng       *rand.Rand
	announcer Announcer
}

func NewOvertakeService(db *gorm.DB, snapshots *SnapshotStore, rng *rand.Rand, announcer Announcer) *OvertakeService {
	return &OvertakeService{db: db, snapshots: snapshots, rng: rng, announcer: announcer}
}

type userDistance struct {
	UserID uint
	Total  float64
}

// Detect runs one detection pass over every category. It is called once per
// sync cycle, after all per-user reconciliations finished.
func (s *OvertakeService) Detect(ctx context.Context) error {
	var users []models.User
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		return fmt.Errorf("load users: %w", err)
	}
	byID := make(map[uint]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	for _, cat := range challenge.Categories {
		if err := s.detectCategory(ctx, cat, byID); err != nil {
			return err
		}
	}
	return nil
}

func (s *OvertakeService) detectCategory(ctx context.Context, cat challenge.Category, users map[uint]models.User) error {
	var current []userDistance
	err := s.db.WithContext(ctx).Model(&models.Activity{}).
		Select("user_id, COALESCE(SUM(distance), 0) AS total").
		Where("type IN ?", cat.Types).
		Group("user_id").
		Scan(&current).Error
	if err != nil {
		return fmt.Errorf("sum %s distances: %w", cat.Name, err)
	}

	previous, err := s.snapshots.Previous(ctx, cat.Name)
	if err != nil {
		return fmt.Errorf("load %s snapshots: %w", cat.Name, err)
	}

	// Only users past the category threshold take part in crossings; this
	// keeps near-zero users from generating noise.
	eligible := make([]userDistance, 0, len(current))
	for _, r := range current {
		if r.Total >= cat.MinDistance {
			eligible = append(eligible, r)
		}
	}

	// A just surpassed B when A is now strictly ahead but was not before.
	// Every ordered pair is checked, so passing three users in one cycle
	// yields three crossings.
	for _, a := range eligible {
		for _, b := range eligible {
			if a.UserID == b.UserID {
				continue
			}
			if a.Total > b.Total && previous[a.UserID] <= previous[b.UserID] {
				if err := s.recordCrossing(ctx, cat, users, a, b); err != nil {
					return err
				}
			}
		}
	}

	// New baseline for everyone with any distance, crossing or not.
	for _, r := range current {
		if err := s.snapshots.Set(ctx, r.UserID, cat.Name, r.Total); err != nil {
			return fmt.Errorf("update %s snapshot for user %d: %w", cat.Name, r.UserID, err)
		}
	}
	return nil
}

func (s *OvertakeService) recordCrossing(ctx context.Context, cat challenge.Category, users map[uint]models.User, a, b userDistance) error {
	userA, okA := users[a.UserID]
	userB, okB := users[b.UserID]
	if !okA || !okB {
		return nil
	}

	nameA := challenge.DisplayName(userA.Firstname, userA.Lastname, userA.Username)
	nameB := challenge.DisplayName(userB.Firstname, userB.Lastname, userB.Username)

	pair := []models.Notification{
		{
			UserID:        a.UserID,
			Type:          models.NotificationOvertook,
			Message:       challenge.OvertookMessage(s.rng, cat.Name, nameB),
			RelatedUserID: b.UserID,
			ActivityType:  cat.Name,
		},
		{
			UserID:        b.UserID,
			Type:          models.NotificationOvertaken,
			Message:       challenge.OvertakenMessage(s.rng, cat.Name, nameA),
			RelatedUserID: a.UserID,
			ActivityType:  cat.Name,
		},
	}
	if err := s.db.WithContext(ctx).Create(&pair).Error; err != nil {
		return fmt.Errorf("insert crossing notifications: %w", err)
	}

	log.Printf("[Notifications] %s overtook %s in %s (%.1fkm vs %.1fkm)",
		nameA, nameB, cat.Name, a.Total/1000, b.Total/1000)

	if s.announcer != nil {
		s.announcer.AnnounceCrossing(cat.Name, nameA, nameB)
	}
	return nil
}

package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/TheoLaperrouse/SportChallenge/internal/models"
)

// NotificationItem is a notification joined with the other party's profile,
// shaped for the API.
type NotificationItem struct {
	ID               uint       `json:"id"`
	Type             string     `json:"type"`
	Message          string     `json:"message"`
	ActivityType     string     `json:"activityType"`
	ReadAt           *time.Time `json:"readAt"`
	CreatedAt        time.Time  `json:"createdAt"`
	RelatedUserID    uint       `json:"relatedUserId"`
	RelatedFirstname string     `json:"relatedFirstname"`
	RelatedLastname  string     `json:"relatedLastname"`
	RelatedAvatarURL string     `json:"relatedAvatarUrl"`
}

// NotificationService reads and flags notifications; it never creates them —
// that is the detector's job.
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// List returns the user's newest notifications (at most limit) and how many
// of those are unread.
func (s *NotificationService) List(ctx context.Context, userID uint, limit int) ([]NotificationItem, int, error) {
	var items []NotificationItem
	err := s.db.WithContext(ctx).Model(&models.Notification{}).
		Select(`notifications.id, notifications.type, notifications.message,
			notifications.activity_type, notifications.read_at, notifications.created_at,
			notifications.related_user_id,
			users.firstname AS related_firstname, users.lastname AS related_lastname,
			users.avatar_url AS related_avatar_url`).
		Joins("JOIN users ON users.id = notifications.related_user_id").
		Where("notifications.user_id = ?", userID).
		Order("notifications.created_at DESC").
		Limit(limit).
		Scan(&items).Error
	if err != nil {
		return nil, 0, err
	}

	unread := 0
	for _, n := range items {
		if n.ReadAt == nil {
			unread++
		}
	}
	return items, unread, nil
}

// MarkRead stamps one of the user's notifications as read; already-read rows
// are untouched.
func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID uint) error {
	return s.db.WithContext(ctx).Model(&models.Notification{}).
		Where("id = ? AND user_id = ? AND read_at IS NULL", notificationID, userID).
		Update("read_at", time.Now()).Error
}

// MarkAllRead stamps every unread notification of the user.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID uint) error {
	return s.db.WithContext(ctx).Model(&models.Notification{}).
		Where("user_id = ? AND read_at IS NULL", userID).
		Update("read_at", time.Now()).Error
}

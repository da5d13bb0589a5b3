package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/TheoLaperrouse/SportChallenge/internal/models"
	"github.com/TheoLaperrouse/SportChallenge/internal/strava"
)

// ErrSessionInvalid covers a missing or expired browser session.
var ErrSessionInvalid = errors.New("session invalid or expired")

// UserService manages users created from the OAuth flow and their sessions.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// UpsertFromAthlete creates or updates the user matching the Strava athlete
// and stores the fresh credential triple.
func (s *UserService) UpsertFromAthlete(ctx context.Context, athlete strava.Athlete, tokens strava.TokenSet) (*models.User, error) {
	expiresAt := tokens.ExpiresAt

	var user models.User
	err := s.db.WithContext(ctx).Where("strava_id = ?", athlete.ID).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = models.User{
			StravaID:       athlete.ID,
			Username:       athlete.Username,
			Firstname:      athlete.Firstname,
			Lastname:       athlete.Lastname,
			AvatarURL:      athlete.Profile,
			AccessToken:    tokens.AccessToken,
			RefreshToken:   tokens.RefreshToken,
			TokenExpiresAt: &expiresAt,
		}
		if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}
	case err != nil:
		return nil, err
	default:
		user.Username = athlete.Username
		user.Firstname = athlete.Firstname
		user.Lastname = athlete.Lastname
		user.AvatarURL = athlete.Profile
		user.AccessToken = tokens.AccessToken
		user.RefreshToken = tokens.RefreshToken
		user.TokenExpiresAt = &expiresAt
		if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
			return nil, fmt.Errorf("update user: %w", err)
		}
	}
	return &user, nil
}

// CreateSession opens a new session for the user.
func (s *UserService) CreateSession(ctx context.Context, userID uint, ttl time.Duration) (*models.Session, error) {
	session := models.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(ttl),
	}
	if err := s.db.WithContext(ctx).Create(&session).Error; err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return &session, nil
}

// SessionUser resolves a session cookie to its user, rejecting expired
// sessions.
func (s *UserService) SessionUser(ctx context.Context, sessionID string) (*models.User, error) {
	var session models.Session
	err := s.db.WithContext(ctx).First(&session, "id = ?", sessionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSessionInvalid
	}
	if err != nil {
		return nil, err
	}
	if time.Now().After(session.ExpiresAt) {
		return nil, ErrSessionInvalid
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, session.UserID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteSession logs the session out. Deleting a missing session is a no-op.
func (s *UserService) DeleteSession(ctx context.Context, sessionID string) error {
	return s.db.WithContext(ctx).Delete(&models.Session{}, "id = ?", sessionID).Error
}

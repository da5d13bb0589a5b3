package services

import (
	"context"
	"time"

	"github.com/TheoLaperrouse/SportChallenge/internal/models"
	"github.com/TheoLaperrouse/SportChallenge/internal/strava"
)

// TokenRefresher is the credential-exchange capability the guard depends on.
// *strava.Client satisfies it; tests use a counting fake.
type TokenRefresher interface {
	RefreshToken(ctx context.Context, refreshToken string) (strava.TokenSet, error)
}

// TokenService makes sure a user's access token is usable before any remote
// call, refreshing it through Strava when the stored expiry has passed.
type TokenService struct {
	refresher TokenRefresher
}

func NewTokenService(refresher TokenRefresher) *TokenService {
	return &TokenService{refresher: refresher}
}

// EnsureValid returns a usable credential triple for the user. A stored
// expiry in the future short-circuits without any network call; otherwise the
// refresh token is exchanged. The caller persists the new triple when the
// access token changed.
func (s *TokenService) EnsureValid(ctx context.Context, user *models.User) (strava.TokenSet, error) {
	if user.TokenExpiresAt != nil && user.TokenExpiresAt.After(time.Now()) {
		return strava.TokenSet{
			AccessToken:  user.AccessToken,
			RefreshToken: user.RefreshToken,
			ExpiresAt:    *user.TokenExpiresAt,
		}, nil
	}
	return s.refresher.RefreshToken(ctx, user.RefreshToken)
}

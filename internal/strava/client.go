// Package strava wraps the parts of the Strava v3 API the challenge needs:
// the OAuth code exchange and token refresh, and the paginated athlete
// activity feed.
package strava

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/oauth2"
)

const (
	authURL       = "https://www.strava.com/oauth/authorize"
	tokenURL      = "https://www.strava.com/oauth/token"
	defaultAPIURL = "https://www.strava.com/api/v3"
)

// TokenSet is the credential triple Strava hands out.
type TokenSet struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// Athlete is the profile payload returned alongside the code exchange.
type Athlete struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Profile   string `json:"profile"`
}

// Activity is one entry of the athlete activity feed, raw Strava field names.
type Activity struct {
	ID                 int64      `json:"id"`
	Type               string     `json:"type"`
	SportType          string     `json:"sport_type"`
	Name               string     `json:"name"`
	Distance           float64    `json:"distance"`
	MovingTime         int        `json:"moving_time"`
	ElapsedTime        int        `json:"elapsed_time"`
	TotalElevationGain float64    `json:"total_elevation_gain"`
	StartDate          time.Time  `json:"start_date"`
	AverageSpeed       float64    `json:"average_speed"`
	MaxSpeed           float64    `json:"max_speed"`
	AverageHeartrate   *float64   `json:"average_heartrate"`
	MaxHeartrate       *float64   `json:"max_heartrate"`
	Map                *Map       `json:"map"`
	StartLatlng        []float64  `json:"start_latlng"`
}

type Map struct {
	SummaryPolyline *string `json:"summary_polyline"`
}

type Client struct {
	oauth      *oauth2.Config
	apiURL     string
	httpClient *http.Client
}

func NewClient(clientID, clientSecret, redirectURI string) *Client {
	return &Client{
		oauth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURI,
			Endpoint: oauth2.Endpoint{
				AuthURL:   authURL,
				TokenURL:  tokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		apiURL:     defaultAPIURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// AuthCodeURL is the Strava authorize URL users are redirected to.
func (c *Client) AuthCodeURL() string {
	return c.oauth.AuthCodeURL("",
		// Strava wants a comma-separated scope list, not the OAuth2 default.
		oauth2.SetAuthURLParam("scope", "read,activity:read_all"),
		oauth2.SetAuthURLParam("approval_prompt", "auto"),
	)
}

// ExchangeCode trades the callback code for tokens plus the athlete profile
// Strava embeds in its token response.
func (c *Client) ExchangeCode(ctx context.Context, code string) (TokenSet, Athlete, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	tok, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		return TokenSet{}, Athlete{}, &AuthError{Err: err}
	}

	var athlete Athlete
	if raw := tok.Extra("athlete"); raw != nil {
		buf, err := json.Marshal(raw)
		if err == nil {
			_ = json.Unmarshal(buf, &athlete)
		}
	}
	return tokenSet(tok), athlete, nil
}

// RefreshToken exchanges a refresh token for a fresh credential triple.
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (TokenSet, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	tok, err := c.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken}).Token()
	if err != nil {
		return TokenSet{}, &AuthError{Err: err}
	}
	return tokenSet(tok), nil
}

// ListActivities fetches one page of the athlete activity feed.
func (c *Client) ListActivities(ctx context.Context, accessToken string, page, perPage int) ([]Activity, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.apiURL+"/athlete/activities?"+q.Encode(), nil)
	if err != nil {
		return nil, &FetchError{Page: page, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Page: page, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Page: page, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	var activities []Activity
	if err := json.NewDecoder(resp.Body).Decode(&activities); err != nil {
		return nil, &FetchError{Page: page, Err: err}
	}
	return activities, nil
}

func tokenSet(tok *oauth2.Token) TokenSet {
	return TokenSet{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		ExpiresAt:    tok.Expiry,
	}
}

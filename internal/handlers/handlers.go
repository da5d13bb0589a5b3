// Package handlers exposes the HTTP API: OAuth login, activities, dashboard
// stats, map feed and notifications. Handlers stay thin; the services own the
// behavior.
package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/TheoLaperrouse/SportChallenge/internal/services"
	"github.com/TheoLaperrouse/SportChallenge/internal/strava"
)

const (
	sessionCookie = "session_id"
	sessionTTL    = 30 * 24 * time.Hour
)

type Handler struct {
	strava        *strava.Client
	users         *services.UserService
	sync          *services.SyncService
	activities    *services.ActivityService
	stats         *services.StatsService
	notifications *services.NotificationService
	frontendURL   string
}

func New(
	stravaClient *strava.Client,
	users *services.UserService,
	sync *services.SyncService,
	activities *services.ActivityService,
	stats *services.StatsService,
	notifications *services.NotificationService,
	frontendURL string,
) *Handler {
	return &Handler{
		strava:        stravaClient,
		users:         users,
		sync:          sync,
		activities:    activities,
		stats:         stats,
		notifications: notifications,
		frontendURL:   frontendURL,
	}
}

func (h *Handler) Register(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	auth := api.Group("/auth")
	auth.Get("/login", h.Login)
	auth.Get("/callback", h.Callback)
	auth.Get("/me", h.RequireSession, h.Me)
	auth.Post("/logout", h.Logout)

	activities := api.Group("/activities", h.RequireSession)
	activities.Get("/", h.ListActivities)
	activities.Post("/sync", h.SyncActivities)

	dashboard := api.Group("/dashboard", h.RequireSession)
	dashboard.Get("/personal", h.PersonalStats)
	dashboard.Get("/global", h.GlobalStats)
	dashboard.Get("/timeseries", h.Timeseries)

	api.Get("/map/activities", h.RequireSession, h.MapActivities)

	notifications := api.Group("/notifications", h.RequireSession)
	notifications.Get("/", h.ListNotifications)
	notifications.Patch("/:id/read", h.MarkNotificationRead)
	notifications.Post("/read-all", h.MarkAllNotificationsRead)
}

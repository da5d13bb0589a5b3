package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/TheoLaperrouse/SportChallenge/internal/strava"
)

// ListActivities returns the current user's activities, optionally filtered
// by challenge category (?type=Run|Ride|Swim).
func (h *Handler) ListActivities(c *fiber.Ctx) error {
	user := currentUser(c)
	activities, err := h.activities.ListForUser(c.UserContext(), user.ID, c.Query("type"))
	if err != nil {
		log.Printf("[Activities] Error listing activities: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
	return c.JSON(activities)
}

// SyncActivities triggers an on-demand reconciliation for the current user.
func (h *Handler) SyncActivities(c *fiber.Ctx) error {
	user := currentUser(c)
	synced, err := h.sync.SyncUser(c.UserContext(), user)
	if err != nil {
		var authErr *strava.AuthError
		if errors.As(err, &authErr) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unable to refresh Strava token"})
		}
		log.Printf("[Activities] Error syncing user %d: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "sync failed"})
	}
	return c.JSON(fiber.Map{"synced": synced})
}

// MapActivities returns every activity with a route polyline for the map view.
func (h *Handler) MapActivities(c *fiber.Ctx) error {
	result, err := h.activities.MapActivities(c.UserContext(), c.Query("type"))
	if err != nil {
		log.Printf("[Map] Error listing map activities: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
	return c.JSON(result)
}

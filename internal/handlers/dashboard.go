package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) PersonalStats(c *fiber.Ctx) error {
	user := currentUser(c)
	stats, err := h.stats.Personal(c.UserContext(), user.ID, c.Query("type"))
	if err != nil {
		log.Printf("[Dashboard] Error computing personal stats: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
	return c.JSON(stats)
}

func (h *Handler) GlobalStats(c *fiber.Ctx) error {
	leaderboard, stats, err := h.stats.Global(c.UserContext(), c.Query("type"))
	if err != nil {
		log.Printf("[Dashboard] Error computing global stats: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
	return c.JSON(fiber.Map{
		"leaderboard": leaderboard,
		"stats":       stats,
	})
}

func (h *Handler) Timeseries(c *fiber.Ctx) error {
	series, err := h.stats.Timeseries(c.UserContext(), c.Query("type"))
	if err != nil {
		log.Printf("[Dashboard] Error computing timeseries: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
	return c.JSON(series)
}

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/TheoLaperrouse/SportChallenge/internal/models"
)

const userLocal = "user"

// RequireSession resolves the session cookie to a user and stores it in the
// request locals; requests without a live session get a 401.
func (h *Handler) RequireSession(c *fiber.Ctx) error {
	sessionID := c.Cookies(sessionCookie)
	if sessionID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	user, err := h.users.SessionUser(c.UserContext(), sessionID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	c.Locals(userLocal, user)
	return c.Next()
}

func currentUser(c *fiber.Ctx) *models.User {
	return c.Locals(userLocal).(*models.User)
}

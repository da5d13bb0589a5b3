package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Login sends the user to Strava's authorize page.
func (h *Handler) Login(c *fiber.Ctx) error {
	return c.Redirect(h.strava.AuthCodeURL())
}

// Callback finishes the OAuth dance: exchanges the code, upserts the user,
// opens a session and bounces back to the frontend.
func (h *Handler) Callback(c *fiber.Ctx) error {
	if errParam := c.Query("error"); errParam != "" {
		log.Printf("[Auth] Strava OAuth error: %s", errParam)
		return c.Redirect(h.frontendURL + "/login")
	}

	code := c.Query("code")
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing code parameter"})
	}

	tokens, athlete, err := h.strava.ExchangeCode(c.UserContext(), code)
	if err != nil {
		log.Printf("[Auth] Strava callback error: %v", err)
		return c.Redirect(h.frontendURL + "/login")
	}

	user, err := h.users.UpsertFromAthlete(c.UserContext(), athlete, tokens)
	if err != nil {
		log.Printf("[Auth] Error upserting user: %v", err)
		return c.Redirect(h.frontendURL + "/login")
	}

	session, err := h.users.CreateSession(c.UserContext(), user.ID, sessionTTL)
	if err != nil {
		log.Printf("[Auth] Error creating session: %v", err)
		return c.Redirect(h.frontendURL + "/login")
	}

	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    session.ID,
		Path:     "/",
		Expires:  time.Now().Add(sessionTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.Redirect(h.frontendURL + "/dashboard")
}

func (h *Handler) Me(c *fiber.Ctx) error {
	user := currentUser(c)
	return c.JSON(fiber.Map{
		"id":        user.ID,
		"stravaId":  user.StravaID,
		"username":  user.Username,
		"firstname": user.Firstname,
		"lastname":  user.Lastname,
		"avatarUrl": user.AvatarURL,
	})
}

func (h *Handler) Logout(c *fiber.Ctx) error {
	if sessionID := c.Cookies(sessionCookie); sessionID != "" {
		if err := h.users.DeleteSession(c.UserContext(), sessionID); err != nil {
			log.Printf("[Auth] Error deleting session: %v", err)
		}
	}
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return c.JSON(fiber.Map{"success": true})
}

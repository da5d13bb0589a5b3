package handlers

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const notificationsLimit = 50

// ListNotifications returns the current user's notifications newest first,
// with the unread count.
func (h *Handler) ListNotifications(c *fiber.Ctx) error {
	user := currentUser(c)
	items, unread, err := h.notifications.List(c.UserContext(), user.ID, notificationsLimit)
	if err != nil {
		log.Printf("[Notifications] Error listing notifications: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
	return c.JSON(fiber.Map{
		"notifications": items,
		"unreadCount":   unread,
	})
}

func (h *Handler) MarkNotificationRead(c *fiber.Ctx) error {
	user := currentUser(c)
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	if err := h.notifications.MarkRead(c.UserContext(), user.ID, uint(id)); err != nil {
		log.Printf("[Notifications] Error marking notification read: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (h *Handler) MarkAllNotificationsRead(c *fiber.Ctx) error {
	user := currentUser(c)
	if err := h.notifications.MarkAllRead(c.UserContext(), user.ID); err != nil {
		log.Printf("[Notifications] Error marking notifications read: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
	return c.JSON(fiber.Map{"ok": true})
}

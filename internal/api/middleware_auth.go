package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const contextUserIDKey = "userID"

// AuthRequired validates the bearer access token and stores the
// subject id in Locals. No database lookup happens per request; the
// token alone authenticates the caller.
func (h *Handler) AuthRequired(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(errorDetail{Detail: "authorization token required"})
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return c.Status(fiber.StatusUnauthorized).JSON(errorDetail{Detail: "invalid authorization header"})
	}

	userID, err := h.tokens.ParseAccess(strings.TrimSpace(parts[1]))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(errorDetail{Detail: "could not validate credentials"})
	}

	c.Locals(contextUserIDKey, userID)
	return c.Next()
}

// currentUserID returns the authenticated subject stored by
// AuthRequired.
func currentUserID(c *fiber.Ctx) string {
	userID, _ := c.Locals(contextUserIDKey).(string)
	return userID
}

package api

import (
	"github.com/gofiber/fiber/v2"
)

// handleHealth reports liveness and the build version.
func (h *Handler) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": h.version,
	})
}

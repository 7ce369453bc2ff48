package api

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jmcallejas/pasanaku/internal/auth"
	"github.com/jmcallejas/pasanaku/internal/models"
)

// errorDetail is the uniform error body: the domain message is
// forwarded verbatim.
type errorDetail struct {
	Detail string `json:"detail"`
}

// writeError translates a domain error to an HTTP response. Every
// domain error is translated exactly once, here.
func writeError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	detail := "internal error"

	switch {
	case errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrGroupNotFound),
		errors.Is(err, models.ErrMemberNotFound),
		errors.Is(err, models.ErrRoundNotFound),
		errors.Is(err, models.ErrPaymentNotFound):
		status = fiber.StatusNotFound
		detail = err.Error()
	case errors.Is(err, models.ErrEmailTaken),
		errors.Is(err, models.ErrAlreadyMember),
		errors.Is(err, models.ErrPaymentExists):
		status = fiber.StatusConflict
		detail = err.Error()
	case errors.Is(err, models.ErrNotHost):
		status = fiber.StatusForbidden
		detail = err.Error()
	case errors.Is(err, models.ErrInactiveUser):
		status = fiber.StatusForbidden
		detail = err.Error()
	case errors.Is(err, models.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken):
		status = fiber.StatusUnauthorized
		detail = err.Error()
	case errors.Is(err, models.ErrGroupFull),
		errors.Is(err, models.ErrInvalidStatus),
		errors.Is(err, models.ErrInvalidFrequency):
		status = fiber.StatusBadRequest
		detail = err.Error()
	}

	return c.Status(status).JSON(errorDetail{Detail: detail})
}

// badRequest reports a malformed or invalid request body.
func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(errorDetail{
		Detail: fmt.Sprintf("invalid request: %v", err),
	})
}

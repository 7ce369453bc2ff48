package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jmcallejas/pasanaku/internal/models"
	"github.com/jmcallejas/pasanaku/internal/services"
)

// handleRegister creates a new user account.
func (h *Handler) handleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := h.parseBody(c, &req); err != nil {
		return badRequest(c, err)
	}

	role := req.Role
	if role == "" {
		role = models.RolePlayer
	}

	user, err := h.authService.Register(c.UserContext(), services.RegisterInput{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Role:     role,
	})
	if err != nil {
		return writeError(c, err)
	}

	h.log.Infow("user registered", "user_id", user.ID)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "user registered",
		"user":    user,
	})
}

// handleLogin verifies credentials and issues a token pair.
func (h *Handler) handleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := h.parseBody(c, &req); err != nil {
		return badRequest(c, err)
	}

	pair, err := h.authService.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(pair)
}

// handleRefresh exchanges a refresh token for a fresh pair.
func (h *Handler) handleRefresh(c *fiber.Ctx) error {
	var req RefreshRequest
	if err := h.parseBody(c, &req); err != nil {
		return badRequest(c, err)
	}

	pair, err := h.authService.Refresh(c.UserContext(), req.RefreshToken)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(pair)
}

// handleMe returns the authenticated user's profile.
func (h *Handler) handleMe(c *fiber.Ctx) error {
	user, err := h.authService.Profile(c.UserContext(), currentUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(user)
}

// handleLogout is stateless: the server keeps no token registry, so
// logout simply acknowledges and the client discards its tokens.
func (h *Handler) handleLogout(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

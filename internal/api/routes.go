package api

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the full HTTP surface. Reads on groups,
// members, rounds and payments are public; mutations and the profile
// endpoints require a bearer access token.
func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/health", h.handleHealth)
	app.Get("/metrics", MetricsHandler())

	authGroup := app.Group("/auth")
	authGroup.Post("/register", h.handleRegister)
	authGroup.Post("/login", h.handleLogin)
	authGroup.Post("/refresh", h.handleRefresh)
	authGroup.Get("/me", h.AuthRequired, h.handleMe)
	authGroup.Post("/logout", h.AuthRequired, h.handleLogout)

	groups := app.Group("/groups")
	groups.Get("/", h.handleListGroups)
	groups.Get("/:id", h.handleGetGroup)
	groups.Post("/", h.AuthRequired, h.handleCreateGroup)
	groups.Patch("/:id", h.AuthRequired, h.handleUpdateGroup)
	groups.Delete("/:id", h.AuthRequired, h.handleDeleteGroup)

	groups.Post("/:id/members", h.AuthRequired, h.handleAddMember)
	groups.Get("/:id/members", h.handleListMembers)
	groups.Delete("/:id/members/:memberID", h.AuthRequired, h.handleRemoveMember)

	groups.Post("/:id/rounds", h.AuthRequired, h.handleCreateRound)
	groups.Get("/:id/rounds", h.handleListRounds)
	groups.Get("/:id/rounds/:roundID", h.handleGetRound)
	groups.Patch("/:id/rounds/:roundID/status", h.AuthRequired, h.handleUpdateRoundStatus)

	rounds := app.Group("/rounds")
	rounds.Post("/:roundID/payments", h.AuthRequired, h.handleRegisterPayment)
	rounds.Get("/:roundID/payments", h.handleListPayments)
}

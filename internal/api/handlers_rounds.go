package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jmcallejas/pasanaku/internal/models"
)

// handleCreateRound opens a new round inside a group. Host only.
func (h *Handler) handleCreateRound(c *fiber.Ctx) error {
	var req CreateRoundRequest
	if err := h.parseBody(c, &req); err != nil {
		return badRequest(c, err)
	}

	round, err := h.roundService.Create(c.UserContext(), c.Params("id"), models.Round{
		BeneficiaryID: req.BeneficiaryID,
		TurnNumber:    req.TurnNumber,
		DueDate:       req.DueDate,
		TotalAmount:   req.TotalAmount,
	}, currentUserID(c))
	if err != nil {
		return writeError(c, err)
	}

	h.log.Infow("round created", "round_id", round.ID, "group_id", round.GroupID, "turn", round.TurnNumber)
	return c.Status(fiber.StatusCreated).JSON(round)
}

// handleListRounds returns every round of a group.
func (h *Handler) handleListRounds(c *fiber.Ctx) error {
	rounds, err := h.roundService.List(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(rounds)
}

// handleGetRound returns a single round scoped to its group.
func (h *Handler) handleGetRound(c *fiber.Ctx) error {
	round, err := h.roundService.Get(c.UserContext(), c.Params("id"), c.Params("roundID"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(round)
}

// handleUpdateRoundStatus moves a round to the requested state. Host
// only.
func (h *Handler) handleUpdateRoundStatus(c *fiber.Ctx) error {
	var req UpdateRoundStatusRequest
	if err := h.parseBody(c, &req); err != nil {
		return badRequest(c, err)
	}

	round, err := h.roundService.UpdateStatus(c.UserContext(), c.Params("id"), c.Params("roundID"), req.Status, currentUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(round)
}

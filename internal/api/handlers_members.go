package api

import (
	"github.com/gofiber/fiber/v2"
)

// handleAddMember admits a user into a group. Host only.
func (h *Handler) handleAddMember(c *fiber.Ctx) error {
	var req AddMemberRequest
	if err := h.parseBody(c, &req); err != nil {
		return badRequest(c, err)
	}

	member, err := h.memberService.Add(c.UserContext(), c.Params("id"), req.UserID, currentUserID(c))
	if err != nil {
		return writeError(c, err)
	}

	h.log.Infow("member added", "group_id", member.GroupID, "user_id", member.UserID)
	return c.Status(fiber.StatusCreated).JSON(member)
}

// handleListMembers returns every membership of a group.
func (h *Handler) handleListMembers(c *fiber.Ctx) error {
	members, err := h.memberService.List(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(members)
}

// handleRemoveMember deletes a membership. Host only.
func (h *Handler) handleRemoveMember(c *fiber.Ctx) error {
	if err := h.memberService.Remove(c.UserContext(), c.Params("id"), c.Params("memberID"), currentUserID(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

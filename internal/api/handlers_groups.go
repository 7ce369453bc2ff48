package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jmcallejas/pasanaku/internal/models"
	"github.com/jmcallejas/pasanaku/internal/services"
)

// handleCreateGroup opens a new group with the requester as host.
func (h *Handler) handleCreateGroup(c *fiber.Ctx) error {
	var req CreateGroupRequest
	if err := h.parseBody(c, &req); err != nil {
		return badRequest(c, err)
	}

	group, err := h.groupService.Create(c.UserContext(), models.Group{
		Name:            req.Name,
		Description:     req.Description,
		AmountPerMember: req.AmountPerMember,
		Frequency:       req.Frequency,
		MaxMembers:      req.MaxMembers,
		StartDate:       req.StartDate,
	}, currentUserID(c))
	if err != nil {
		return writeError(c, err)
	}

	h.log.Infow("group created", "group_id", group.ID, "host_id", group.HostID)
	return c.Status(fiber.StatusCreated).JSON(group)
}

// handleListGroups returns every active group. Public.
func (h *Handler) handleListGroups(c *fiber.Ctx) error {
	groups, err := h.groupService.ListActive(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(groups)
}

// handleGetGroup returns a single group by id. Public.
func (h *Handler) handleGetGroup(c *fiber.Ctx) error {
	group, err := h.groupService.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(group)
}

// handleUpdateGroup applies a partial update. Host only.
func (h *Handler) handleUpdateGroup(c *fiber.Ctx) error {
	var req UpdateGroupRequest
	if err := h.parseBody(c, &req); err != nil {
		return badRequest(c, err)
	}

	group, err := h.groupService.Update(c.UserContext(), c.Params("id"), services.GroupPatch{
		Name:            req.Name,
		Description:     req.Description,
		AmountPerMember: req.AmountPerMember,
		Frequency:       req.Frequency,
		MaxMembers:      req.MaxMembers,
	}, currentUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(group)
}

// handleDeleteGroup removes a group. Host only.
func (h *Handler) handleDeleteGroup(c *fiber.Ctx) error {
	if err := h.groupService.Delete(c.UserContext(), c.Params("id"), currentUserID(c)); err != nil {
		return writeError(c, err)
	}
	h.log.Infow("group deleted", "group_id", c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

package api

import (
	"github.com/gofiber/fiber/v2"
)

// handleRegisterPayment records a payer's contribution for a round.
func (h *Handler) handleRegisterPayment(c *fiber.Ctx) error {
	var req RegisterPaymentRequest
	if err := h.parseBody(c, &req); err != nil {
		return badRequest(c, err)
	}

	payment, err := h.paymentService.Register(c.UserContext(), c.Params("roundID"), req.PayerID, req.Amount)
	if err != nil {
		return writeError(c, err)
	}

	h.log.Infow("payment registered", "payment_id", payment.ID, "round_id", payment.RoundID, "payer_id", payment.PayerID)
	return c.Status(fiber.StatusCreated).JSON(payment)
}

// handleListPayments returns every payment registered against a round.
func (h *Handler) handleListPayments(c *fiber.Ctx) error {
	payments, err := h.paymentService.List(c.UserContext(), c.Params("roundID"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(payments)
}

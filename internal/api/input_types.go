package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// RegisterRequest is the payload for POST /auth/register.
type RegisterRequest struct {
	FullName        string `json:"full_name" validate:"required,min=2,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required,min=7,max=20"`
	Password        string `json:"password" validate:"required,min=8,max=128"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	Role            string `json:"role" validate:"omitempty,oneof=host player"`
}

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest is the payload for POST /auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// CreateGroupRequest is the payload for POST /groups/.
type CreateGroupRequest struct {
	Name            string    `json:"name" validate:"required,min=3,max=100"`
	Description     string    `json:"description" validate:"max=500"`
	AmountPerMember float64   `json:"amount_per_member" validate:"required,gt=0"`
	Frequency       string    `json:"frequency" validate:"omitempty,oneof=weekly biweekly monthly"`
	MaxMembers      int       `json:"max_members" validate:"required,gt=1,lte=50"`
	StartDate       time.Time `json:"start_date" validate:"required"`
}

// UpdateGroupRequest is the partial payload for PATCH /groups/:id.
type UpdateGroupRequest struct {
	Name            *string  `json:"name" validate:"omitempty,min=3,max=100"`
	Description     *string  `json:"description" validate:"omitempty,max=500"`
	AmountPerMember *float64 `json:"amount_per_member" validate:"omitempty,gt=0"`
	Frequency       *string  `json:"frequency" validate:"omitempty,oneof=weekly biweekly monthly"`
	MaxMembers      *int     `json:"max_members" validate:"omitempty,gt=1,lte=50"`
}

// AddMemberRequest is the payload for POST /groups/:id/members.
type AddMemberRequest struct {
	UserID string `json:"user_id" validate:"required,uuid4"`
}

// CreateRoundRequest is the payload for POST /groups/:id/rounds.
type CreateRoundRequest struct {
	BeneficiaryID string    `json:"beneficiary_id" validate:"required,uuid4"`
	TurnNumber    int       `json:"turn_number" validate:"required,gt=0"`
	DueDate       time.Time `json:"due_date" validate:"required"`
	TotalAmount   float64   `json:"total_amount" validate:"required,gt=0"`
}

// UpdateRoundStatusRequest is the payload for
// PATCH /groups/:id/rounds/:roundID/status.
type UpdateRoundStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// RegisterPaymentRequest is the payload for POST /rounds/:roundID/payments.
type RegisterPaymentRequest struct {
	PayerID string  `json:"payer_id" validate:"required,uuid4"`
	Amount  float64 `json:"amount" validate:"required,gt=0"`
}

// parseBody decodes and validates a JSON request body.
func (h *Handler) parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return err
	}
	return h.validate.Struct(out)
}

// Package api is the HTTP delivery layer: Fiber handlers, routing,
// middleware and domain-error translation.
package api

import (
	"github.com/go-playground/validator/v10"
	"github.com/jmcallejas/pasanaku/internal/auth"
	"github.com/jmcallejas/pasanaku/internal/services"
	"go.uber.org/zap"
)

// Handler carries the use-case services and shared dependencies for
// every route.
type Handler struct {
	log      *zap.SugaredLogger
	version  string
	tokens   *auth.TokenManager
	validate *validator.Validate

	authService    *services.AuthService
	groupService   *services.GroupService
	memberService  *services.MemberService
	roundService   *services.RoundService
	paymentService *services.PaymentService
}

// NewHandler constructs the delivery layer over the service layer.
func NewHandler(
	log *zap.SugaredLogger,
	version string,
	tokens *auth.TokenManager,
	authService *services.AuthService,
	groupService *services.GroupService,
	memberService *services.MemberService,
	roundService *services.RoundService,
	paymentService *services.PaymentService,
) *Handler {
	return &Handler{
		log:            log,
		version:        version,
		tokens:         tokens,
		validate:       validator.New(),
		authService:    authService,
		groupService:   groupService,
		memberService:  memberService,
		roundService:   roundService,
		paymentService: paymentService,
	}
}

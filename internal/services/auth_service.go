// Package services contains the application use cases. Each service
// orchestrates domain entities through repository interfaces declared
// here, on the consumer side.
package services

import (
	"context"
	"fmt"

	"github.com/jmcallejas/pasanaku/internal/auth"
	"github.com/jmcallejas/pasanaku/internal/models"
)

// AuthUserRepository is the persistence surface the auth use cases
// need from the user store.
type AuthUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, userID string) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// AuthService implements registration, login, token refresh and
// profile lookup.
type AuthService struct {
	users  AuthUserRepository
	tokens *auth.TokenManager
}

func NewAuthService(users AuthUserRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// RegisterInput carries the validated registration payload.
type RegisterInput struct {
	FullName string
	Email    string
	Phone    string
	Password string
	Role     string
}

// Register creates a new user; the email must be unused.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (models.User, error) {
	exists, err := s.users.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return models.User{}, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return models.User{}, models.ErrEmailTaken
	}

	passwordHash, err := auth.HashPassword(input.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		FullName:     input.FullName,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: passwordHash,
		Role:         input.Role,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Login verifies credentials and issues a token pair. An inactive
// account with a correct password fails with ErrInactiveUser, never
// ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (auth.TokenPair, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return auth.TokenPair{}, models.ErrInvalidCredentials
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return auth.TokenPair{}, models.ErrInvalidCredentials
	}
	if !user.IsActive {
		return auth.TokenPair{}, models.ErrInactiveUser
	}
	return s.tokens.GeneratePair(user.ID)
}

// Refresh validates a refresh token and issues a fresh pair. A token
// whose subject no longer resolves to an active user is rejected the
// same way as a malformed one.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (auth.TokenPair, error) {
	userID, err := s.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return auth.TokenPair{}, auth.ErrInvalidToken
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil || !user.IsActive {
		return auth.TokenPair{}, auth.ErrInvalidToken
	}
	return s.tokens.GeneratePair(user.ID)
}

// Profile resolves the authenticated subject to its user record.
func (s *AuthService) Profile(ctx context.Context, userID string) (models.User, error) {
	return s.users.FindByID(ctx, userID)
}

// Package auth provides JWT token issuance/verification and password
// hashing for the API.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure (bad signature,
// expiry, wrong type claim) so callers cannot distinguish them.
var ErrInvalidToken = errors.New("invalid or expired token")

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims are the custom JWT claims carried by both token kinds.
// Subject holds the user id.
type Claims struct {
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

// TokenPair bundles the two tokens returned on login and refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// TokenManager signs and verifies HS256 access/refresh tokens.
type TokenManager struct {
	secretKey  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenManager creates a token manager. accessTTL should be short
// (e.g. 30m), refreshTTL long (e.g. 7 days).
func NewTokenManager(secretKey string, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		secretKey:  []byte(secretKey),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// GeneratePair issues a fresh access+refresh token pair for a subject.
func (m *TokenManager) GeneratePair(subject string) (TokenPair, error) {
	accessToken, err := m.generate(subject, TokenTypeAccess, m.accessTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refreshToken, err := m.generate(subject, TokenTypeRefresh, m.refreshTTL)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	}, nil
}

func (m *TokenManager) generate(subject, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", tokenType, err)
	}
	return signed, nil
}

// ParseAccess verifies an access token and returns its subject.
func (m *TokenManager) ParseAccess(tokenString string) (string, error) {
	return m.parse(tokenString, TokenTypeAccess)
}

// ParseRefresh verifies a refresh token and returns its subject.
func (m *TokenManager) ParseRefresh(tokenString string) (string, error) {
	return m.parse(tokenString, TokenTypeRefresh)
}

func (m *TokenManager) parse(tokenString, wantType string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secretKey, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.TokenType != wantType || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

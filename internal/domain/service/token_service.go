package service

import (
	"crm/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims of an operator access token.
// The subject holds the operator id.
type Claims struct {
	TenantID uuid.UUID `json:"tenant_id"`
	Name     string    `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating operator access tokens.
// Sessions are owned by the surrounding application; this service only needs to
// turn a bearer token into an authenticated actor.
type TokenService interface {
	// GenerateToken issues an access token for an operator.
	GenerateToken(actor entity.Actor) (string, error)

	// ValidateToken parses and verifies a token and returns the actor it identifies.
	ValidateToken(tokenString string) (*entity.Actor, error)
}

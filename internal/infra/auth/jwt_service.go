// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"crm/config"
	"crm/internal/domain/entity"
	"crm/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret string        // Secret key for signing access tokens.
	accessTTL    time.Duration // Time-to-live for access tokens.
	now          func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	ttl := 12 * time.Hour
	if cfg.Auth != nil && cfg.Auth.AccessTokenTTL > 0 {
		ttl = cfg.Auth.AccessTokenTTL
	}

	return &jwtService{
		accessSecret: cfg.SecretKey.Access,
		accessTTL:    ttl,
		now:          time.Now,
	}, nil
}

// GenerateToken creates an access token for an operator of a tenant.
func (s *jwtService) GenerateToken(actor entity.Actor) (string, error) {
	now := s.now()
	claims := service.Claims{
		TenantID: actor.TenantID,
		Name:     actor.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID.String(),                        // Subject (the operator)
			IssuedAt:  jwt.NewNumericDate(now),                  // Issued At
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)), // Expiration Time
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.accessSecret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ValidateToken checks the validity of a token string and resolves the actor it identifies.
func (s *jwtService) ValidateToken(tokenString string) (*entity.Actor, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.accessSecret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	actorID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject in token")
	}
	if claims.TenantID == uuid.Nil {
		return nil, errors.New("tenant missing from token")
	}

	return &entity.Actor{
		ID:       actorID,
		TenantID: claims.TenantID,
		Name:     claims.Name,
	}, nil
}

package jwtmanager

import (
	"fmt"
	"medidata-service/internal/app/config"
	"medidata-service/internal/app/models"
	"medidata-service/internal/pkg/exceptions"

	"github.com/golang-jwt/jwt/v4"
)

// JWTManager verifies gateway-issued access tokens locally. The gateway signs
// its sessions with a shared HS256 secret, so the hot path never needs a
// round trip to resolve the caller.
type JWTManager struct {
	secret []byte
}

func NewJWTManager(cfg *config.InternalConfig) *JWTManager {
	return &JWTManager{secret: []byte(cfg.JWT.Secret)}
}

type gatewayClaims struct {
	Email        string                 `json:"email"`
	UserMetadata map[string]interface{} `json:"user_metadata"`
	jwt.RegisteredClaims
}

func (j *JWTManager) Verify(accessToken string) (*models.AuthUser, error) {
	if len(j.secret) == 0 {
		return nil, exceptions.ErrTokenInvalid(fmt.Errorf("jwt secret is not configured"))
	}

	claims := &gatewayClaims{}
	token, err := jwt.ParseWithClaims(accessToken, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil {
		return nil, exceptions.ErrTokenInvalid(err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, exceptions.ErrTokenInvalid(fmt.Errorf("token has no subject"))
	}

	metadata := make(map[string]string, len(claims.UserMetadata))
	for key, value := range claims.UserMetadata {
		if s, ok := value.(string); ok {
			metadata[key] = s
		}
	}

	return &models.AuthUser{
		ID:           claims.Subject,
		Email:        claims.Email,
		UserMetadata: metadata,
	}, nil
}

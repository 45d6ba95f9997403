package auth

import (
	"time"

	"workboard/internal/domain/models"
)

// JWTVerifier defines the interface for JWT token verification.
// The middleware only depends on this, so local HMAC tokens and tokens from
// an external identity provider look the same to handlers.
type JWTVerifier interface {
	// VerifyToken validates a JWT token string and returns the parsed claims.
	// Returns domain.ErrUnauthorized if the token is invalid, expired, or has an invalid signature.
	VerifyToken(tokenString string) (*models.Claims, error)

	// Close releases any resources held by the verifier (e.g., HTTP connections for JWKS).
	Close() error
}

// TokenIssuer mints access tokens for authenticated users
type TokenIssuer interface {
	IssueToken(user *models.User) (token string, expiresAt time.Time, err error)
}

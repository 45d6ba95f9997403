package models

import "github.com/golang-jwt/jwt/v5"

// Claims represents the JWT claims carried by workboard access tokens.
// Tokens minted by an external identity provider only need a subject.
type Claims struct {
	jwt.RegisteredClaims        // Standard JWT claims (sub, iss, exp, iat, etc.)
	Username             string `json:"username,omitempty"`
}

// GetUserID returns the user ID from the JWT subject claim.
func (c *Claims) GetUserID() string {
	return c.Subject
}

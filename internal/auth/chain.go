package auth

import (
	"errors"

	"workboard/internal/domain"
	"workboard/internal/domain/models"
)

// chainVerifier accepts a token if any of its verifiers does, tried in order.
type chainVerifier struct {
	verifiers []JWTVerifier
}

// NewChainVerifier combines verifiers, e.g. local HS256 login tokens first
// and an external JWKS second.
func NewChainVerifier(verifiers ...JWTVerifier) JWTVerifier {
	if len(verifiers) == 1 {
		return verifiers[0]
	}
	return &chainVerifier{verifiers: verifiers}
}

func (c *chainVerifier) VerifyToken(tokenString string) (*models.Claims, error) {
	for _, v := range c.verifiers {
		claims, err := v.VerifyToken(tokenString)
		if err == nil {
			return claims, nil
		}
		if !errors.Is(err, domain.ErrUnauthorized) {
			return nil, err
		}
	}
	return nil, domain.ErrUnauthorized
}

func (c *chainVerifier) Close() error {
	var errs []error
	for _, v := range c.verifiers {
		errs = append(errs, v.Close())
	}
	return errors.Join(errs...)
}

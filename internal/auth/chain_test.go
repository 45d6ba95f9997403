package auth

import (
	"errors"
	"testing"

	"workboard/internal/domain"
	"workboard/internal/domain/models"
)

func TestChainVerifier(t *testing.T) {
	local := newTestService(t, testSecret, "workboard")
	// Stands in for the JWKS verifier: a different key and issuer
	external := newTestService(t, "ffffffffffffffffffffffffffffffff", "idp")
	stranger := newTestService(t, "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee", "workboard")

	chain := NewChainVerifier(local, external)
	user := &models.User{ID: "7b0c2f4e-6d0e-4c53-9f36-2f1f6c1a9c11", Username: "alice"}

	tests := []struct {
		name    string
		issuer  *HMACTokenService
		wantErr bool
	}{
		{"login token", local, false},
		{"identity provider token", external, false},
		{"unknown signer", stranger, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, _, err := tt.issuer.IssueToken(user)
			if err != nil {
				t.Fatalf("IssueToken: %v", err)
			}

			claims, err := chain.VerifyToken(token)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrUnauthorized) {
					t.Fatalf("expected ErrUnauthorized, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("VerifyToken: %v", err)
			}
			if claims.GetUserID() != user.ID {
				t.Errorf("subject = %q, want %q", claims.GetUserID(), user.ID)
			}
		})
	}

	if err := chain.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestNewChainVerifier_Single(t *testing.T) {
	local := newTestService(t, testSecret, "workboard")
	if got := NewChainVerifier(local); got != JWTVerifier(local) {
		t.Errorf("single verifier should be returned as is, got %T", got)
	}
}

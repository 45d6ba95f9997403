package service

import (
	"context"
	"errors"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"workboard/internal/auth"
	"workboard/internal/config"
	"workboard/internal/domain"
	"workboard/internal/domain/repositories"
	"workboard/internal/domain/services"
)

type identityService struct {
	userRepo repositories.UserRepository
	issuer   auth.TokenIssuer
	logger   *slog.Logger
}

// NewIdentityService creates the password login service
func NewIdentityService(userRepo repositories.UserRepository, issuer auth.TokenIssuer, logger *slog.Logger) services.IdentityService {
	return &identityService{
		userRepo: userRepo,
		issuer:   issuer,
		logger:   logger,
	}
}

// Login checks a username/password pair. Unknown users and wrong passwords
// fail the same way.
func (s *identityService) Login(ctx context.Context, req *services.LoginRequest) (*services.LoginResult, error) {
	err := validationFailed(validation.ValidateStruct(req,
		validation.Field(&req.Username, validation.Required, validation.Length(1, config.MaxUsernameLength)),
		validation.Field(&req.Password, validation.Required, validation.Length(1, config.MaxPasswordLength)),
	))
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Debug("login failed", "username", req.Username, "reason", "unknown user")
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}

	if user.PasswordHash == "" {
		s.logger.Debug("login failed", "username", req.Username, "reason", "no password set")
		return nil, domain.ErrUnauthorized
	}

	ok, err := auth.CheckPassword(user.PasswordHash, req.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.logger.Debug("login failed", "username", req.Username, "reason", "wrong password")
		return nil, domain.ErrUnauthorized
	}

	token, expiresAt, err := s.issuer.IssueToken(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", "user_id", user.ID, "username", user.Username)

	return &services.LoginResult{
		Token:     token,
		UserID:    user.ID,
		Username:  user.Username,
		ExpiresAt: expiresAt,
	}, nil
}

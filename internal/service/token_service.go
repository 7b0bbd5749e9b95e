package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/auth-service/internal/auth"
	"github.com/spec-kit/auth-service/internal/domain"
	"github.com/spec-kit/auth-service/internal/repository"
)

// TokenService owns the bearer token lifecycle: issue, validate, revoke.
type TokenService struct {
	tokens  *auth.TokenManager
	revoked repository.RevokedTokenRepository
	logger  *zap.Logger
}

// NewTokenService builds the service.
func NewTokenService(tokens *auth.TokenManager, revoked repository.RevokedTokenRepository, logger *zap.Logger) *TokenService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TokenService{tokens: tokens, revoked: revoked, logger: logger}
}

// Issue signs a fresh token for the user. It has no side effects.
func (s *TokenService) Issue(userID int64) (*domain.Token, error) {
	return s.tokens.Issue(userID)
}

// Validate checks signature, expiry and revocation status, in that order.
func (s *TokenService) Validate(ctx context.Context, token string) (*auth.Principal, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, err
	}

	revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return nil, domain.ErrTokenRevoked
	}

	return &auth.Principal{UserID: claims.UserID, TokenID: claims.ID}, nil
}

// Revoke denylists the token's identifier for the rest of its lifetime.
// The token must still parse and be unexpired; revoking twice is not an error.
func (s *TokenService) Revoke(ctx context.Context, token string) error {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return err
	}

	if err := s.revoked.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}

	s.logger.Info("token revoked", zap.Int64("user_id", claims.UserID), zap.String("jti", claims.ID))
	return nil
}

package service

import (
	"context"

	"github.com/spec-kit/auth-service/internal/domain"
)

// AuthService coordinates registration, login and logout flows.
type AuthService struct {
	users  *UserService
	tokens *TokenService
}

// NewAuthService builds the service.
func NewAuthService(users *UserService, tokens *TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates a new account. No token is issued; callers log in separately.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	return s.users.CreateUser(ctx, name, email, password)
}

// Login verifies credentials and issues a bearer token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, *domain.Token, error) {
	user, err := s.users.VerifyCredentials(ctx, email, password)
	if err != nil {
		return nil, nil, err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, token, nil
}

// Logout revokes the presented token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.tokens.Revoke(ctx, token)
}

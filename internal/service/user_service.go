package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/auth-service/internal/auth"
	"github.com/spec-kit/auth-service/internal/domain"
	"github.com/spec-kit/auth-service/internal/repository"
)

// UserService is the credential store: account creation, credential checks and profile CRUD.
type UserService struct {
	users      repository.UserRepository
	bcryptCost int
	dummyHash  string
	logger     *zap.Logger
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, bcryptCost int, logger *zap.Logger) (*UserService, error) {
	// Compared against when the email is unknown so both failure paths cost one bcrypt verification.
	dummy, err := auth.HashPassword("not-a-real-password", bcryptCost)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{users: users, bcryptCost: bcryptCost, dummyHash: dummy, logger: logger}, nil
}

// CreateUser registers a new account.
func (s *UserService) CreateUser(ctx context.Context, name, email, password string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return nil, domain.ErrMissingField
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", zap.Int64("user_id", user.ID))
	return user, nil
}

// VerifyCredentials returns the user owning email when password matches.
// Unknown emails and wrong passwords both yield domain.ErrInvalidCredentials.
func (s *UserService) VerifyCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domain.ErrMissingField
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			_ = auth.ComparePassword(s.dummyHash, password)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// GetUser loads a user by id.
func (s *UserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// UpdateUser applies the provided profile fields.
func (s *UserService) UpdateUser(ctx context.Context, id int64, update domain.UserUpdate) (*domain.User, error) {
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return nil, domain.ErrMissingField
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		user.Name = strings.TrimSpace(*update.Name)
	}
	if update.OtherProfileData != nil {
		user.OtherProfileData = update.OtherProfileData
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a user by id.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("user deleted", zap.Int64("user_id", id))
	return nil
}

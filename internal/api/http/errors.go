package http

import (
	"errors"

	"github.com/spec-kit/auth-service/internal/domain"
	apperrors "github.com/spec-kit/auth-service/pkg/util/errorutil"
)

// translateError maps domain sentinels onto client-facing errors.
func translateError(err error) error {
	switch {
	case errors.Is(err, domain.ErrMissingField):
		return apperrors.NewMissingField("missing fields")
	case errors.Is(err, domain.ErrDuplicateEmail):
		return apperrors.NewBadRequest(apperrors.CodeDuplicateEmail, "email already exists")
	case errors.Is(err, domain.ErrInvalidCredentials):
		return apperrors.NewUnauthorized(apperrors.CodeInvalidCredentials, "invalid credentials")
	case errors.Is(err, domain.ErrNotFound):
		return apperrors.NewNotFound("user", nil)
	case errors.Is(err, domain.ErrTokenMissing):
		return apperrors.NewUnauthorized(apperrors.CodeTokenMissing, "token is missing")
	case errors.Is(err, domain.ErrTokenExpired):
		return apperrors.NewUnauthorized(apperrors.CodeTokenExpired, "token has expired")
	case errors.Is(err, domain.ErrTokenInvalid):
		return apperrors.NewUnauthorized(apperrors.CodeTokenInvalid, "invalid token")
	case errors.Is(err, domain.ErrTokenRevoked):
		return apperrors.NewUnauthorized(apperrors.CodeTokenRevoked, "token has been revoked")
	}
	return err
}

package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/auth-service/internal/api/dto"
	"github.com/spec-kit/auth-service/internal/domain"
	"github.com/spec-kit/auth-service/internal/service"
	apperrors "github.com/spec-kit/auth-service/pkg/util/errorutil"
)

// ProfileHandler exposes profile read, update and delete.
// Any authenticated caller may act on any profile id; ownership is not enforced.
type ProfileHandler struct {
	users *service.UserService
}

// NewProfileHandler constructs handler.
func NewProfileHandler(users *service.UserService) *ProfileHandler {
	return &ProfileHandler{users: users}
}

// Get handles GET /profile/:id.
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	id, err := userID(c)
	if err != nil {
		return err
	}

	user, err := h.users.GetUser(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserResponse(user))
}

// Update handles PUT /profile/:id.
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	id, err := userID(c)
	if err != nil {
		return err
	}

	var req dto.ProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	user, err := h.users.UpdateUser(c.UserContext(), id, domain.UserUpdate{
		Name:             req.Name,
		OtherProfileData: req.OtherProfileData,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserResponse(user))
}

// Delete handles DELETE /profile/:id.
func (h *ProfileHandler) Delete(c *fiber.Ctx) error {
	id, err := userID(c)
	if err != nil {
		return err
	}

	if err := h.users.DeleteUser(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "user profile deleted successfully"})
}

func userID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewNotFound("user", nil)
	}
	return id, nil
}

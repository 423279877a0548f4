package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"careshift/internal/domain"
	"careshift/internal/middleware"
	"careshift/internal/service/avatar"
	"careshift/internal/service/user"
)

type UserHandler struct {
	userService   user.Service
	avatarService avatar.Service
}

func NewUserHandler(userService user.Service, avatarService avatar.Service) *UserHandler {
	return &UserHandler{
		userService:   userService,
		avatarService: avatarService,
	}
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.userService.List(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(users)
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return middleware.BadRequest("Invalid user ID")
	}

	u, err := h.userService.GetByID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return middleware.NotFound("User not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(u)
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	currentUser := middleware.GetCurrentUser(c)
	if currentUser == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	var input domain.UpdateUserInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	updated, err := h.userService.UpdateProfile(c.Context(), currentUser.ID, input)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return middleware.NotFound("User not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *UserHandler) UpdateStatus(c *fiber.Ctx) error {
	actor := middleware.GetCurrentUser(c)
	if actor == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return middleware.BadRequest("Invalid user ID")
	}

	var input struct {
		Status domain.UserStatus `json:"status"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if err := h.userService.UpdateStatus(c.Context(), actor, userID, input.Status); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotAllowed):
			return middleware.Forbidden("Admin access required")
		case errors.Is(err, user.ErrInvalidStatus):
			return middleware.BadRequest("Invalid account status")
		case errors.Is(err, domain.ErrUserNotFound):
			return middleware.NotFound("User not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Status updated"})
}

func (h *UserHandler) UploadPhoto(c *fiber.Ctx) error {
	currentUser := middleware.GetCurrentUser(c)
	if currentUser == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return middleware.BadRequest("Missing photo file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return middleware.BadRequest("Unable to read photo file")
	}
	defer file.Close()

	photoURL, err := h.avatarService.Upload(c.Context(), currentUser.ID, fileHeader.Filename, fileHeader.Size, file)
	if err != nil {
		switch {
		case errors.Is(err, avatar.ErrUnsupportedType):
			return middleware.BadRequest("Unsupported image type")
		case errors.Is(err, avatar.ErrStorageUnavailable):
			return fiber.NewError(fiber.StatusServiceUnavailable, "Photo storage unavailable")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"photo_url": photoURL})
}

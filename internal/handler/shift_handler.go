package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"careshift/internal/domain"
	"careshift/internal/middleware"
	"careshift/internal/service/shift"
)

type ShiftHandler struct {
	shiftService shift.Service
}

func NewShiftHandler(shiftService shift.Service) *ShiftHandler {
	return &ShiftHandler{shiftService: shiftService}
}

func (h *ShiftHandler) Create(c *fiber.Ctx) error {
	actor := middleware.GetCurrentUser(c)
	if actor == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	var input domain.CreateShiftInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	created, err := h.shiftService.Create(c.Context(), actor, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidShiftInput):
			return middleware.BadRequest("Hours must be positive, rate and travel cost non-negative")
		case errors.Is(err, domain.ErrNotAllowed):
			return middleware.Forbidden("Cannot create shifts for another user")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *ShiftHandler) List(c *fiber.Ctx) error {
	actor := middleware.GetCurrentUser(c)
	if actor == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	userID, err := parseUserFilter(c)
	if err != nil {
		return err
	}

	shifts, err := h.shiftService.List(c.Context(), actor, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotAllowed) {
			return middleware.Forbidden("Cannot view another user's shifts")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(shifts)
}

func (h *ShiftHandler) Get(c *fiber.Ctx) error {
	actor := middleware.GetCurrentUser(c)
	if actor == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	shiftID, err := uuid.Parse(c.Params("shiftId"))
	if err != nil {
		return middleware.BadRequest("Invalid shift ID")
	}

	found, err := h.shiftService.GetByID(c.Context(), actor, shiftID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrShiftNotFound):
			return middleware.NotFound("Shift not found")
		case errors.Is(err, domain.ErrNotAllowed):
			return middleware.Forbidden("Cannot view another user's shift")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(found)
}

func (h *ShiftHandler) SetStatus(c *fiber.Ctx) error {
	actor := middleware.GetCurrentUser(c)
	if actor == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	shiftID, err := uuid.Parse(c.Params("shiftId"))
	if err != nil {
		return middleware.BadRequest("Invalid shift ID")
	}

	var input struct {
		Status domain.ShiftStatus `json:"status"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if err := h.shiftService.SetStatus(c.Context(), actor, shiftID, input.Status); err != nil {
		switch {
		case errors.Is(err, domain.ErrShiftNotFound):
			return middleware.NotFound("Shift not found")
		case errors.Is(err, domain.ErrNotAllowed):
			return middleware.Forbidden("Admin access required")
		case errors.Is(err, domain.ErrInvalidTransition):
			return middleware.Conflict("Invalid status transition")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Shift status updated"})
}

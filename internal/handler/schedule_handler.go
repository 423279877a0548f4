package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"careshift/internal/domain"
	"careshift/internal/middleware"
	"careshift/internal/service/schedule"
)

type ScheduleHandler struct {
	scheduleService schedule.Service
}

func NewScheduleHandler(scheduleService schedule.Service) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

func (h *ScheduleHandler) Create(c *fiber.Ctx) error {
	actor := middleware.GetCurrentUser(c)
	if actor == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	var input domain.CreateScheduleInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	created, err := h.scheduleService.Create(c.Context(), actor, input)
	if err != nil {
		if errors.Is(err, domain.ErrNotAllowed) {
			return middleware.Forbidden("Cannot create schedules for another user")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *ScheduleHandler) List(c *fiber.Ctx) error {
	actor := middleware.GetCurrentUser(c)
	if actor == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	userID, err := parseUserFilter(c)
	if err != nil {
		return err
	}

	schedules, err := h.scheduleService.List(c.Context(), actor, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotAllowed) {
			return middleware.Forbidden("Cannot view another user's schedules")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(schedules)
}

func (h *ScheduleHandler) Update(c *fiber.Ctx) error {
	actor := middleware.GetCurrentUser(c)
	if actor == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	scheduleID, err := uuid.Parse(c.Params("scheduleId"))
	if err != nil {
		return middleware.BadRequest("Invalid schedule ID")
	}

	var input domain.UpdateScheduleInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	updated, err := h.scheduleService.Update(c.Context(), actor, scheduleID, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrScheduleNotFound):
			return middleware.NotFound("Schedule not found")
		case errors.Is(err, domain.ErrNotAllowed):
			return middleware.Forbidden("Cannot update another user's schedule")
		case errors.Is(err, schedule.ErrInvalidScheduleStatus):
			return middleware.BadRequest("Invalid schedule status")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

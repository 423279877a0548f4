package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"careshift/internal/domain"
	"careshift/internal/middleware"
	"careshift/internal/service/payslip"
)

type PayslipHandler struct {
	payslipService payslip.Service
}

func NewPayslipHandler(payslipService payslip.Service) *PayslipHandler {
	return &PayslipHandler{payslipService: payslipService}
}

func (h *PayslipHandler) Generate(c *fiber.Ctx) error {
	actor := middleware.GetCurrentUser(c)
	if actor == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	var input domain.GeneratePayslipInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	generated, err := h.payslipService.Generate(c.Context(), actor, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidPeriod):
			return middleware.BadRequest("Period must be formatted as YYYY-MM")
		case errors.Is(err, domain.ErrNotAllowed):
			return middleware.Forbidden("Cannot generate a payslip for another user")
		case errors.Is(err, domain.ErrUserNotFound):
			return middleware.NotFound("User not found")
		case errors.Is(err, domain.ErrNothingToSettle):
			return middleware.Conflict("No validated shifts for this period")
		case errors.Is(err, domain.ErrSettlementConflict):
			return middleware.Conflict("Shifts were settled concurrently, please retry")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(generated)
}

func (h *PayslipHandler) Get(c *fiber.Ctx) error {
	actor := middleware.GetCurrentUser(c)
	if actor == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	payslipID, err := uuid.Parse(c.Params("payslipId"))
	if err != nil {
		return middleware.BadRequest("Invalid payslip ID")
	}

	found, err := h.payslipService.GetByID(c.Context(), actor, payslipID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPayslipNotFound):
			return middleware.NotFound("Payslip not found")
		case errors.Is(err, domain.ErrNotAllowed):
			return middleware.Forbidden("Cannot view another user's payslip")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(found)
}

func (h *PayslipHandler) List(c *fiber.Ctx) error {
	actor := middleware.GetCurrentUser(c)
	if actor == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	userID, err := parseUserFilter(c)
	if err != nil {
		return err
	}

	payslips, err := h.payslipService.List(c.Context(), actor, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotAllowed) {
			return middleware.Forbidden("Cannot view another user's payslips")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(payslips)
}

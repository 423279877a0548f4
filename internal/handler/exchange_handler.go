package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"careshift/internal/domain"
	"careshift/internal/middleware"
	"careshift/internal/service/exchange"
)

type ExchangeHandler struct {
	exchangeService exchange.Service
}

func NewExchangeHandler(exchangeService exchange.Service) *ExchangeHandler {
	return &ExchangeHandler{exchangeService: exchangeService}
}

func (h *ExchangeHandler) Propose(c *fiber.Ctx) error {
	actor := middleware.GetCurrentUser(c)
	if actor == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	var input domain.ProposeExchangeInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	proposed, err := h.exchangeService.Propose(c.Context(), actor.ID, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrShiftNotFound):
			return middleware.NotFound("Shift not found")
		case errors.Is(err, domain.ErrUserNotFound):
			return middleware.NotFound("Target user not found")
		case errors.Is(err, domain.ErrNotShiftOwner):
			return middleware.Forbidden("Only the shift owner can propose an exchange")
		case errors.Is(err, domain.ErrSelfExchange):
			return middleware.BadRequest("Cannot propose an exchange to yourself")
		case errors.Is(err, domain.ErrShiftLocked):
			return middleware.Conflict("Paid shifts cannot be exchanged")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(proposed)
}

func (h *ExchangeHandler) Respond(c *fiber.Ctx) error {
	actor := middleware.GetCurrentUser(c)
	if actor == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	exchangeID, err := uuid.Parse(c.Params("exchangeId"))
	if err != nil {
		return middleware.BadRequest("Invalid exchange ID")
	}

	var input domain.RespondExchangeInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	resolved, err := h.exchangeService.Respond(c.Context(), actor.ID, exchangeID, input.Decision)
	if err != nil {
		switch {
		case errors.Is(err, exchange.ErrInvalidDecision):
			return middleware.BadRequest("Decision must be accept or reject")
		case errors.Is(err, domain.ErrExchangeNotFound):
			return middleware.NotFound("Exchange not found")
		case errors.Is(err, domain.ErrNotExchangeTarget):
			return middleware.Forbidden("Only the exchange target can respond")
		case errors.Is(err, domain.ErrExchangeResolved):
			return middleware.Conflict("Exchange has already been resolved")
		case errors.Is(err, domain.ErrStaleExchange):
			return middleware.Conflict("Shift is no longer owned by the proposer")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(resolved)
}

func (h *ExchangeHandler) List(c *fiber.Ctx) error {
	actor := middleware.GetCurrentUser(c)
	if actor == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	exchanges, err := h.exchangeService.ListByUser(c.Context(), actor.ID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(exchanges)
}

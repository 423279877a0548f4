package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"careshift/internal/domain"
	"careshift/internal/middleware"
	"careshift/internal/service/institution"
)

type InstitutionHandler struct {
	instService institution.Service
}

func NewInstitutionHandler(instService institution.Service) *InstitutionHandler {
	return &InstitutionHandler{instService: instService}
}

func (h *InstitutionHandler) Create(c *fiber.Ctx) error {
	actor := middleware.GetCurrentUser(c)
	if actor == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	var input domain.CreateInstitutionInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	inst, err := h.instService.Create(c.Context(), actor, input)
	if err != nil {
		if errors.Is(err, domain.ErrNotAllowed) {
			return middleware.Forbidden("Admin access required")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(inst)
}

func (h *InstitutionHandler) List(c *fiber.Ctx) error {
	institutions, err := h.instService.List(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(institutions)
}

package handler

import (
	"github.com/gofiber/fiber/v2"

	"careshift/internal/middleware"
	"careshift/internal/service/dashboard"
)

type DashboardHandler struct {
	dashboardService dashboard.Service
}

func NewDashboardHandler(dashboardService dashboard.Service) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats returns admin-wide stats for admins and personal stats for caregivers.
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	actor := middleware.GetCurrentUser(c)
	if actor == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	if actor.IsAdmin() {
		stats, err := h.dashboardService.GetAdminStats(c.Context())
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusOK).JSON(stats)
	}

	stats, err := h.dashboardService.GetCaregiverStats(c.Context(), actor)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(stats)
}

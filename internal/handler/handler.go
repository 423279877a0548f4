package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"careshift/internal/domain"
	"careshift/internal/middleware"
	"careshift/internal/service"
)

type Handlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Institution  *InstitutionHandler
	Schedule     *ScheduleHandler
	Shift        *ShiftHandler
	Exchange     *ExchangeHandler
	Payslip      *PayslipHandler
	Message      *MessageHandler
	Notification *NotificationHandler
	Dashboard    *DashboardHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(services.Auth),
		User:         NewUserHandler(services.User, services.Avatar),
		Institution:  NewInstitutionHandler(services.Institution),
		Schedule:     NewScheduleHandler(services.Schedule),
		Shift:        NewShiftHandler(services.Shift),
		Exchange:     NewExchangeHandler(services.Exchange),
		Payslip:      NewPayslipHandler(services.Payslip),
		Message:      NewMessageHandler(services.Message),
		Notification: NewNotificationHandler(services.Notification),
		Dashboard:    NewDashboardHandler(services.Dashboard),
	}
}

func getPaginationParams(c *fiber.Ctx) domain.PaginationParams {
	params := domain.DefaultPagination()
	if page := c.QueryInt("page", 0); page > 0 {
		params.Page = page
	}
	if pageSize := c.QueryInt("page_size", 0); pageSize > 0 && pageSize <= 100 {
		params.PageSize = pageSize
	}
	return params
}

// parseUserFilter reads the optional ?user_id= query used by admins to scope
// list endpoints to one caregiver.
func parseUserFilter(c *fiber.Ctx) (*uuid.UUID, error) {
	raw := c.Query("user_id")
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, middleware.BadRequest("Invalid user ID")
	}
	return &id, nil
}

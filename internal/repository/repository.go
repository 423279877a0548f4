package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	User         UserRepository
	Institution  InstitutionRepository
	Schedule     ScheduleRepository
	Shift        ShiftRepository
	Exchange     ExchangeRepository
	Payslip      PayslipRepository
	Message      MessageRepository
	Notification NotificationRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Institution:  NewInstitutionRepository(db),
		Schedule:     NewScheduleRepository(db),
		Shift:        NewShiftRepository(db),
		Exchange:     NewExchangeRepository(db),
		Payslip:      NewPayslipRepository(db),
		Message:      NewMessageRepository(db),
		Notification: NewNotificationRepository(db),
	}
}

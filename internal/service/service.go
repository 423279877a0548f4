package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"careshift/internal/config"
	"careshift/internal/repository"
	"careshift/internal/service/auth"
	"careshift/internal/service/avatar"
	"careshift/internal/service/dashboard"
	"careshift/internal/service/email"
	"careshift/internal/service/exchange"
	"careshift/internal/service/institution"
	"careshift/internal/service/message"
	"careshift/internal/service/notification"
	"careshift/internal/service/payslip"
	"careshift/internal/service/schedule"
	"careshift/internal/service/shift"
	"careshift/internal/service/user"
)

type Services struct {
	Auth         auth.Service
	User         user.Service
	Institution  institution.Service
	Schedule     schedule.Service
	Shift        shift.Service
	Exchange     exchange.Service
	Payslip      payslip.Service
	Message      message.Service
	Notification notification.Service
	Dashboard    dashboard.Service
	Email        email.Service
	Avatar       avatar.Service
}

func NewServices(repos *repository.Repositories, redis *redis.Client, minioClient *minio.Client, cfg *config.Config) *Services {
	emailService := email.NewService(cfg)
	notificationService := notification.NewService(repos.Notification, repos.User, emailService)

	authService := auth.NewService(repos.User, cfg)
	authService.SetNotificationService(notificationService)

	userService := user.NewService(repos.User)
	userService.SetNotificationService(notificationService)

	institutionService := institution.NewService(repos.Institution)
	scheduleService := schedule.NewService(repos.Schedule)
	shiftService := shift.NewService(repos.Shift)

	exchangeService := exchange.NewService(repos.Exchange, repos.Shift, repos.User)
	exchangeService.SetNotificationService(notificationService)

	payslipService := payslip.NewService(repos.Payslip, repos.Shift)
	payslipService.SetNotificationService(notificationService)

	messageService := message.NewService(repos.Message, repos.User)
	messageService.SetNotificationService(notificationService)

	dashboardService := dashboard.NewService(repos.User, repos.Institution, repos.Shift, repos.Message, redis)
	avatarService := avatar.NewService(repos.User, minioClient, cfg)

	return &Services{
		Auth:         authService,
		User:         userService,
		Institution:  institutionService,
		Schedule:     scheduleService,
		Shift:        shiftService,
		Exchange:     exchangeService,
		Payslip:      payslipService,
		Message:      messageService,
		Notification: notificationService,
		Dashboard:    dashboardService,
		Email:        emailService,
		Avatar:       avatarService,
	}
}

package notification

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"careshift/internal/domain"
	"careshift/internal/repository"
	"careshift/internal/service/email"
)

// Service is the notification sink the rest of the core writes into.
// Notify is best-effort: a delivery failure is logged and swallowed so it can
// never roll back the state transition that produced it.
type Service interface {
	Notify(ctx context.Context, userID uuid.UUID, notifType domain.NotificationType, content string) error
	List(ctx context.Context, userID uuid.UUID, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error)
	GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkAsRead(ctx context.Context, id, userID uuid.UUID) error
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) error

	NotifyAccountStatus(ctx context.Context, userID uuid.UUID, status domain.UserStatus) error
	NotifyPayslipIssued(ctx context.Context, userID uuid.UUID, period string) error
}

type service struct {
	notifRepo repository.NotificationRepository
	userRepo  repository.UserRepository
	emailSvc  email.Service
}

func NewService(notifRepo repository.NotificationRepository, userRepo repository.UserRepository, emailSvc email.Service) Service {
	return &service{
		notifRepo: notifRepo,
		userRepo:  userRepo,
		emailSvc:  emailSvc,
	}
}

func (s *service) Notify(ctx context.Context, userID uuid.UUID, notifType domain.NotificationType, content string) error {
	notif := &domain.Notification{
		ID:      uuid.New(),
		UserID:  userID,
		Type:    notifType,
		Content: content,
	}

	if err := s.notifRepo.Create(ctx, notif); err != nil {
		log.Printf("Failed to create notification for user %s: %v", userID, err)
		return err
	}
	return nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error) {
	notifications, total, err := s.notifRepo.ListByUser(ctx, userID, unreadOnly, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Notification]{}, err
	}

	return domain.NewPaginatedResponse(notifications, params.Page, params.PageSize, total), nil
}

func (s *service) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.notifRepo.CountUnread(ctx, userID)
}

func (s *service) MarkAsRead(ctx context.Context, id, userID uuid.UUID) error {
	return s.notifRepo.MarkAsRead(ctx, id, userID)
}

func (s *service) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.notifRepo.MarkAllAsRead(ctx, userID)
}

func (s *service) NotifyAccountStatus(ctx context.Context, userID uuid.UUID, status domain.UserStatus) error {
	var content string
	switch status {
	case domain.UserApproved:
		content = "Your account has been approved"
	case domain.UserRejected:
		content = "Your registration was not approved"
	default:
		content = "Your account is pending review"
	}

	if err := s.Notify(ctx, userID, domain.NotifAccountStatus, content); err != nil {
		return err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil || user == nil {
		return err
	}

	if s.emailSvc != nil && user.Email != "" {
		go func(toEmail, fullName string, status domain.UserStatus) {
			ctx := context.Background()
			var err error
			switch status {
			case domain.UserApproved:
				err = s.emailSvc.SendAccountApprovedEmail(ctx, toEmail, fullName)
			case domain.UserRejected:
				err = s.emailSvc.SendAccountRejectedEmail(ctx, toEmail, fullName)
			}
			if err != nil {
				log.Printf("Failed to send account status email to %s: %v", toEmail, err)
			}
		}(user.Email, user.FullName(), status)
	}

	return nil
}

func (s *service) NotifyPayslipIssued(ctx context.Context, userID uuid.UUID, period string) error {
	content := fmt.Sprintf("New payslip available for %s", period)
	if err := s.Notify(ctx, userID, domain.NotifPayslipIssued, content); err != nil {
		return err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil || user == nil {
		return err
	}

	if s.emailSvc != nil && user.Email != "" {
		go func(toEmail, fullName, period string) {
			if err := s.emailSvc.SendPayslipEmail(context.Background(), toEmail, fullName, period); err != nil {
				log.Printf("Failed to send payslip email to %s: %v", toEmail, err)
			}
		}(user.Email, user.FullName(), period)
	}

	return nil
}

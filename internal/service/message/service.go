package message

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"careshift/internal/domain"
	"careshift/internal/repository"
	"careshift/internal/service/notification"
)

var (
	ErrEmptyContent = errors.New("message content cannot be empty")
	ErrSelfMessage  = errors.New("cannot send a message to yourself")
)

type Service interface {
	Send(ctx context.Context, sender *domain.User, input domain.SendMessageInput) (*domain.Message, error)
	List(ctx context.Context, userID uuid.UUID, otherUserID *uuid.UUID) ([]domain.Message, error)
	MarkAsRead(ctx context.Context, id, recipientID uuid.UUID) error
	SetNotificationService(notifSvc notification.Service)
}

type service struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	notifSvc    notification.Service
}

func NewService(messageRepo repository.MessageRepository, userRepo repository.UserRepository) Service {
	return &service{
		messageRepo: messageRepo,
		userRepo:    userRepo,
	}
}

func (s *service) SetNotificationService(notifSvc notification.Service) {
	s.notifSvc = notifSvc
}

func (s *service) Send(ctx context.Context, sender *domain.User, input domain.SendMessageInput) (*domain.Message, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, ErrEmptyContent
	}
	if input.RecipientID == sender.ID {
		return nil, ErrSelfMessage
	}

	recipient, err := s.userRepo.GetByID(ctx, input.RecipientID)
	if err != nil {
		return nil, err
	}
	if recipient == nil {
		return nil, domain.ErrUserNotFound
	}

	msg := &domain.Message{
		ID:          uuid.New(),
		SenderID:    sender.ID,
		RecipientID: input.RecipientID,
		Content:     input.Content,
		IsRead:      false,
	}

	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}

	if s.notifSvc != nil {
		content := fmt.Sprintf("New message from %s", sender.FullName())
		recipientID := input.RecipientID
		go func() {
			_ = s.notifSvc.Notify(context.Background(), recipientID, domain.NotifNewMessage, content)
		}()
	}

	return msg, nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID, otherUserID *uuid.UUID) ([]domain.Message, error) {
	if otherUserID != nil {
		return s.messageRepo.ListConversation(ctx, userID, *otherUserID)
	}
	return s.messageRepo.ListForUser(ctx, userID)
}

func (s *service) MarkAsRead(ctx context.Context, id, recipientID uuid.UUID) error {
	return s.messageRepo.MarkAsRead(ctx, id, recipientID)
}

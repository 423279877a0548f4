package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"careshift/internal/domain"
	"careshift/internal/repository"
	"careshift/internal/service/notification"
)

var ErrInvalidStatus = errors.New("invalid account status")

type Service interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, input domain.UpdateUserInput) (*domain.User, error)
	// UpdateStatus is the admin approval step for new registrations.
	UpdateStatus(ctx context.Context, actor *domain.User, id uuid.UUID, status domain.UserStatus) error
	SetNotificationService(notifSvc notification.Service)
}

type service struct {
	userRepo repository.UserRepository
	notifSvc notification.Service
}

func NewService(userRepo repository.UserRepository) Service {
	return &service{userRepo: userRepo}
}

func (s *service) SetNotificationService(notifSvc notification.Service) {
	s.notifSvc = notifSvc
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *service) List(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.ListAll(ctx)
}

func (s *service) UpdateProfile(ctx context.Context, id uuid.UUID, input domain.UpdateUserInput) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hashed)
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.InstitutionID != nil {
		user.InstitutionID = *input.InstitutionID
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *service) UpdateStatus(ctx context.Context, actor *domain.User, id uuid.UUID, status domain.UserStatus) error {
	if !actor.IsAdmin() {
		return domain.ErrNotAllowed
	}
	if !status.IsValid() {
		return ErrInvalidStatus
	}

	if err := s.userRepo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	if s.notifSvc != nil {
		go func() {
			_ = s.notifSvc.NotifyAccountStatus(context.Background(), id, status)
		}()
	}

	return nil
}

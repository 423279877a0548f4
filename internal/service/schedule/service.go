package schedule

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"careshift/internal/domain"
	"careshift/internal/repository"
)

var ErrInvalidScheduleStatus = errors.New("invalid schedule status")

type Service interface {
	Create(ctx context.Context, actor *domain.User, input domain.CreateScheduleInput) (*domain.Schedule, error)
	List(ctx context.Context, actor *domain.User, userID *uuid.UUID) ([]domain.Schedule, error)
	Update(ctx context.Context, actor *domain.User, id uuid.UUID, input domain.UpdateScheduleInput) (*domain.Schedule, error)
}

type service struct {
	scheduleRepo repository.ScheduleRepository
}

func NewService(scheduleRepo repository.ScheduleRepository) Service {
	return &service{scheduleRepo: scheduleRepo}
}

func (s *service) Create(ctx context.Context, actor *domain.User, input domain.CreateScheduleInput) (*domain.Schedule, error) {
	if !actor.IsAdmin() && actor.ID != input.UserID {
		return nil, domain.ErrNotAllowed
	}

	schedule := &domain.Schedule{
		ID:            uuid.New(),
		UserID:        input.UserID,
		InstitutionID: input.InstitutionID,
		Date:          input.Date,
		StartTime:     input.StartTime,
		EndTime:       input.EndTime,
		Status:        domain.ScheduleAvailable,
	}

	if err := s.scheduleRepo.Create(ctx, schedule); err != nil {
		return nil, err
	}

	return schedule, nil
}

func (s *service) List(ctx context.Context, actor *domain.User, userID *uuid.UUID) ([]domain.Schedule, error) {
	if userID != nil {
		if !actor.IsAdmin() && *userID != actor.ID {
			return nil, domain.ErrNotAllowed
		}
		return s.scheduleRepo.ListByUser(ctx, *userID)
	}
	if actor.IsAdmin() {
		return s.scheduleRepo.ListAll(ctx)
	}
	return s.scheduleRepo.ListByUser(ctx, actor.ID)
}

func (s *service) Update(ctx context.Context, actor *domain.User, id uuid.UUID, input domain.UpdateScheduleInput) (*domain.Schedule, error) {
	schedule, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, domain.ErrScheduleNotFound
	}

	if !actor.IsAdmin() && schedule.UserID != actor.ID {
		return nil, domain.ErrNotAllowed
	}

	if input.Date != nil {
		schedule.Date = *input.Date
	}
	if input.StartTime != nil {
		schedule.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		schedule.EndTime = *input.EndTime
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, ErrInvalidScheduleStatus
		}
		schedule.Status = *input.Status
	}

	if err := s.scheduleRepo.Update(ctx, schedule); err != nil {
		return nil, err
	}

	return schedule, nil
}

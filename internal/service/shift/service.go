package shift

import (
	"context"

	"github.com/google/uuid"

	"careshift/internal/domain"
	"careshift/internal/repository"
)

// Service is the shift ledger. It owns the pending→validated→paid lifecycle;
// ownership transfer between caregivers lives in the exchange service and
// settlement in the payslip service.
type Service interface {
	Create(ctx context.Context, actor *domain.User, input domain.CreateShiftInput) (*domain.Shift, error)
	GetByID(ctx context.Context, actor *domain.User, id uuid.UUID) (*domain.Shift, error)
	List(ctx context.Context, actor *domain.User, userID *uuid.UUID) ([]domain.Shift, error)
	SetStatus(ctx context.Context, actor *domain.User, id uuid.UUID, status domain.ShiftStatus) error
}

type service struct {
	shiftRepo repository.ShiftRepository
}

func NewService(shiftRepo repository.ShiftRepository) Service {
	return &service{shiftRepo: shiftRepo}
}

func (s *service) Create(ctx context.Context, actor *domain.User, input domain.CreateShiftInput) (*domain.Shift, error) {
	if !actor.IsAdmin() && actor.ID != input.UserID {
		return nil, domain.ErrNotAllowed
	}

	if !input.Hours.IsPositive() {
		return nil, domain.ErrInvalidShiftInput
	}
	if input.HourlyRate.IsNegative() || input.TravelCost.IsNegative() {
		return nil, domain.ErrInvalidShiftInput
	}

	shift := &domain.Shift{
		ID:            uuid.New(),
		UserID:        input.UserID,
		InstitutionID: input.InstitutionID,
		Date:          input.Date,
		Hours:         input.Hours,
		HourlyRate:    input.HourlyRate,
		TravelCost:    input.TravelCost,
		Total:         domain.ComputeTotal(input.Hours, input.HourlyRate, input.TravelCost),
		Status:        domain.ShiftPending,
	}

	if err := s.shiftRepo.Create(ctx, shift); err != nil {
		return nil, err
	}

	return shift, nil
}

func (s *service) GetByID(ctx context.Context, actor *domain.User, id uuid.UUID) (*domain.Shift, error) {
	shift, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, domain.ErrShiftNotFound
	}

	if !actor.IsAdmin() && shift.UserID != actor.ID {
		return nil, domain.ErrNotAllowed
	}

	return shift, nil
}

func (s *service) List(ctx context.Context, actor *domain.User, userID *uuid.UUID) ([]domain.Shift, error) {
	if userID != nil {
		if !actor.IsAdmin() && *userID != actor.ID {
			return nil, domain.ErrNotAllowed
		}
		return s.shiftRepo.ListByOwner(ctx, *userID)
	}
	if actor.IsAdmin() {
		return s.shiftRepo.ListAll(ctx)
	}
	return s.shiftRepo.ListByOwner(ctx, actor.ID)
}

// SetStatus moves a shift forward through the lifecycle. Validation is only
// available to admins; the sole backward move is the admin override that
// resets a shift to pending so a mistaken validation or settlement can be
// corrected.
func (s *service) SetStatus(ctx context.Context, actor *domain.User, id uuid.UUID, status domain.ShiftStatus) error {
	if !status.IsValid() {
		return domain.ErrInvalidTransition
	}
	if !actor.IsAdmin() {
		return domain.ErrNotAllowed
	}

	shift, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if shift == nil {
		return domain.ErrShiftNotFound
	}

	if status == domain.ShiftPending {
		if shift.Status == domain.ShiftPending {
			return domain.ErrInvalidTransition
		}
		return s.shiftRepo.ResetToPending(ctx, id)
	}

	if !shift.Status.CanAdvanceTo(status) {
		return domain.ErrInvalidTransition
	}

	return s.shiftRepo.AdvanceStatus(ctx, id, shift.Status, status)
}

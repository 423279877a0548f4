package payslip

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"careshift/internal/domain"
	"careshift/internal/repository"
	"careshift/internal/service/notification"
)

// commissionRate is the platform's cut of the gross total.
var commissionRate = decimal.RequireFromString("0.07")

// Service settles a caregiver's validated shifts for a calendar month into an
// immutable payslip. The commission is rounded half-even to the cent so
// gross == net + commission reconciles exactly.
type Service interface {
	Generate(ctx context.Context, actor *domain.User, input domain.GeneratePayslipInput) (*domain.Payslip, error)
	GetByID(ctx context.Context, actor *domain.User, id uuid.UUID) (*domain.Payslip, error)
	List(ctx context.Context, actor *domain.User, userID *uuid.UUID) ([]domain.Payslip, error)
	SetNotificationService(notifSvc notification.Service)
}

type service struct {
	payslipRepo repository.PayslipRepository
	shiftRepo   repository.ShiftRepository
	notifSvc    notification.Service
}

func NewService(payslipRepo repository.PayslipRepository, shiftRepo repository.ShiftRepository) Service {
	return &service{
		payslipRepo: payslipRepo,
		shiftRepo:   shiftRepo,
	}
}

func (s *service) SetNotificationService(notifSvc notification.Service) {
	s.notifSvc = notifSvc
}

// Generate selects every validated shift the caregiver worked in the period,
// totals it and locks the shifts to paid together with the payslip insert.
// Shifts settled by an earlier run are already paid and fall out of the
// selection, so generating the same period twice fails with
// ErrNothingToSettle instead of double-paying.
func (s *service) Generate(ctx context.Context, actor *domain.User, input domain.GeneratePayslipInput) (*domain.Payslip, error) {
	if !actor.IsAdmin() && actor.ID != input.UserID {
		return nil, domain.ErrNotAllowed
	}

	period, err := domain.ParsePeriod(input.Period)
	if err != nil {
		return nil, err
	}

	shifts, err := s.shiftRepo.ListValidatedForPeriod(ctx, input.UserID, period.Start(), period.End())
	if err != nil {
		return nil, err
	}
	if len(shifts) == 0 {
		return nil, domain.ErrNothingToSettle
	}

	gross := decimal.Zero
	shiftIDs := make(pq.StringArray, 0, len(shifts))
	for _, shift := range shifts {
		gross = gross.Add(shift.Total)
		shiftIDs = append(shiftIDs, shift.ID.String())
	}

	commission := gross.Mul(commissionRate).RoundBank(2)
	net := gross.Sub(commission)

	payslip := &domain.Payslip{
		ID:         uuid.New(),
		UserID:     input.UserID,
		Period:     period.String(),
		ShiftIDs:   shiftIDs,
		GrossTotal: gross,
		Commission: commission,
		NetTotal:   net,
	}

	if err := s.payslipRepo.CreateSettled(ctx, payslip); err != nil {
		return nil, err
	}

	if s.notifSvc != nil {
		userID := input.UserID
		periodStr := period.String()
		go func() {
			_ = s.notifSvc.NotifyPayslipIssued(context.Background(), userID, periodStr)
		}()
	}

	return payslip, nil
}

func (s *service) GetByID(ctx context.Context, actor *domain.User, id uuid.UUID) (*domain.Payslip, error) {
	payslip, err := s.payslipRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payslip == nil {
		return nil, domain.ErrPayslipNotFound
	}

	if !actor.IsAdmin() && payslip.UserID != actor.ID {
		return nil, domain.ErrNotAllowed
	}

	return payslip, nil
}

func (s *service) List(ctx context.Context, actor *domain.User, userID *uuid.UUID) ([]domain.Payslip, error) {
	if userID != nil {
		if !actor.IsAdmin() && *userID != actor.ID {
			return nil, domain.ErrNotAllowed
		}
		return s.payslipRepo.ListByUser(ctx, *userID)
	}
	if actor.IsAdmin() {
		return s.payslipRepo.ListAll(ctx)
	}
	return s.payslipRepo.ListByUser(ctx, actor.ID)
}

package mocks

import (
	"context"

	"careshift/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type PayslipRepository struct {
	mock.Mock
}

func (m *PayslipRepository) CreateSettled(ctx context.Context, payslip *domain.Payslip) error {
	args := m.Called(ctx, payslip)
	return args.Error(0)
}

func (m *PayslipRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payslip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payslip), args.Error(1)
}

func (m *PayslipRepository) ListAll(ctx context.Context) ([]domain.Payslip, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Payslip), args.Error(1)
}

func (m *PayslipRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Payslip, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Payslip), args.Error(1)
}

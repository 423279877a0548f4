package mocks

import (
	"context"
	"time"

	"careshift/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type ShiftRepository struct {
	mock.Mock
}

func (m *ShiftRepository) Create(ctx context.Context, shift *domain.Shift) error {
	args := m.Called(ctx, shift)
	return args.Error(0)
}

func (m *ShiftRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Shift, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

func (m *ShiftRepository) ListAll(ctx context.Context) ([]domain.Shift, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Shift), args.Error(1)
}

func (m *ShiftRepository) ListByOwner(ctx context.Context, userID uuid.UUID) ([]domain.Shift, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Shift), args.Error(1)
}

func (m *ShiftRepository) AdvanceStatus(ctx context.Context, id uuid.UUID, from, to domain.ShiftStatus) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}

func (m *ShiftRepository) ResetToPending(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ShiftRepository) ListValidatedForPeriod(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.Shift, error) {
	args := m.Called(ctx, userID, start, end)
	return args.Get(0).([]domain.Shift), args.Error(1)
}

func (m *ShiftRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ShiftRepository) CountByStatus(ctx context.Context, status domain.ShiftStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ShiftRepository) SumTotalsCreatedSince(ctx context.Context, since time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

package mocks

import (
	"context"

	"careshift/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type ExchangeRepository struct {
	mock.Mock
}

func (m *ExchangeRepository) Create(ctx context.Context, exchange *domain.ShiftExchange) error {
	args := m.Called(ctx, exchange)
	return args.Error(0)
}

func (m *ExchangeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ShiftExchange, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShiftExchange), args.Error(1)
}

func (m *ExchangeRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ShiftExchange, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.ShiftExchange), args.Error(1)
}

func (m *ExchangeRepository) Accept(ctx context.Context, exchange *domain.ShiftExchange) error {
	args := m.Called(ctx, exchange)
	return args.Error(0)
}

func (m *ExchangeRepository) Reject(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

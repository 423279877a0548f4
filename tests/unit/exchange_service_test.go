package unit_test

import (
	"context"
	"testing"

	"careshift/internal/domain"
	"careshift/internal/service/exchange"
	"careshift/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestExchangeService_Propose(t *testing.T) {
	mockExchangeRepo := new(mocks.ExchangeRepository)
	mockShiftRepo := new(mocks.ShiftRepository)
	mockUserRepo := new(mocks.UserRepository)

	svc := exchange.NewService(mockExchangeRepo, mockShiftRepo, mockUserRepo)
	ctx := context.Background()

	proposerID := uuid.New()
	targetID := uuid.New()
	shiftID := uuid.New()

	input := domain.ProposeExchangeInput{ShiftID: shiftID, TargetID: targetID}

	t.Run("Success", func(t *testing.T) {
		owned := &domain.Shift{ID: shiftID, UserID: proposerID, Status: domain.ShiftPending}
		target := &domain.User{ID: targetID, Role: domain.RoleNurse}
		mockShiftRepo.On("GetByID", ctx, shiftID).Return(owned, nil).Once()
		mockUserRepo.On("GetByID", ctx, targetID).Return(target, nil).Once()
		mockExchangeRepo.On("Create", ctx, mock.MatchedBy(func(e *domain.ShiftExchange) bool {
			return e.ProposerID == proposerID &&
				e.TargetID == targetID &&
				e.ShiftID == shiftID &&
				e.Status == domain.ExchangePending
		})).Return(nil).Once()

		proposed, err := svc.Propose(ctx, proposerID, input)

		assert.NoError(t, err)
		assert.NotNil(t, proposed)
		assert.Equal(t, domain.ExchangePending, proposed.Status)

		mockExchangeRepo.AssertExpectations(t)
	})

	t.Run("Self Exchange Rejected", func(t *testing.T) {
		proposed, err := svc.Propose(ctx, proposerID, domain.ProposeExchangeInput{ShiftID: shiftID, TargetID: proposerID})

		assert.ErrorIs(t, err, domain.ErrSelfExchange)
		assert.Nil(t, proposed)
	})

	t.Run("Shift Not Found", func(t *testing.T) {
		mockShiftRepo.On("GetByID", ctx, shiftID).Return(nil, nil).Once()

		proposed, err := svc.Propose(ctx, proposerID, input)

		assert.ErrorIs(t, err, domain.ErrShiftNotFound)
		assert.Nil(t, proposed)
	})

	t.Run("Not Shift Owner", func(t *testing.T) {
		someoneElses := &domain.Shift{ID: shiftID, UserID: uuid.New(), Status: domain.ShiftPending}
		mockShiftRepo.On("GetByID", ctx, shiftID).Return(someoneElses, nil).Once()

		proposed, err := svc.Propose(ctx, proposerID, input)

		assert.ErrorIs(t, err, domain.ErrNotShiftOwner)
		assert.Nil(t, proposed)
	})

	t.Run("Paid Shift Locked", func(t *testing.T) {
		paid := &domain.Shift{ID: shiftID, UserID: proposerID, Status: domain.ShiftPaid}
		mockShiftRepo.On("GetByID", ctx, shiftID).Return(paid, nil).Once()

		proposed, err := svc.Propose(ctx, proposerID, input)

		assert.ErrorIs(t, err, domain.ErrShiftLocked)
		assert.Nil(t, proposed)
	})

	t.Run("Validated Shift Can Be Proposed", func(t *testing.T) {
		validated := &domain.Shift{ID: shiftID, UserID: proposerID, Status: domain.ShiftValidated}
		target := &domain.User{ID: targetID}
		mockShiftRepo.On("GetByID", ctx, shiftID).Return(validated, nil).Once()
		mockUserRepo.On("GetByID", ctx, targetID).Return(target, nil).Once()
		mockExchangeRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		proposed, err := svc.Propose(ctx, proposerID, input)

		assert.NoError(t, err)
		assert.NotNil(t, proposed)
	})

	t.Run("Target Not Found", func(t *testing.T) {
		owned := &domain.Shift{ID: shiftID, UserID: proposerID, Status: domain.ShiftPending}
		mockShiftRepo.On("GetByID", ctx, shiftID).Return(owned, nil).Once()
		mockUserRepo.On("GetByID", ctx, targetID).Return(nil, nil).Once()

		proposed, err := svc.Propose(ctx, proposerID, input)

		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.Nil(t, proposed)
	})
}

func TestExchangeService_Respond(t *testing.T) {
	mockExchangeRepo := new(mocks.ExchangeRepository)
	mockShiftRepo := new(mocks.ShiftRepository)
	mockUserRepo := new(mocks.UserRepository)

	svc := exchange.NewService(mockExchangeRepo, mockShiftRepo, mockUserRepo)
	ctx := context.Background()

	proposerID := uuid.New()
	targetID := uuid.New()
	exchangeID := uuid.New()

	pendingExchange := func() *domain.ShiftExchange {
		return &domain.ShiftExchange{
			ID:         exchangeID,
			ProposerID: proposerID,
			TargetID:   targetID,
			ShiftID:    uuid.New(),
			Status:     domain.ExchangePending,
		}
	}

	t.Run("Accept", func(t *testing.T) {
		mockExchangeRepo.On("GetByID", ctx, exchangeID).Return(pendingExchange(), nil).Once()
		mockExchangeRepo.On("Accept", ctx, mock.MatchedBy(func(e *domain.ShiftExchange) bool {
			return e.ID == exchangeID
		})).Return(nil).Once()

		resolved, err := svc.Respond(ctx, targetID, exchangeID, domain.DecisionAccept)

		assert.NoError(t, err)
		assert.Equal(t, domain.ExchangeAccepted, resolved.Status)

		mockExchangeRepo.AssertExpectations(t)
	})

	t.Run("Reject", func(t *testing.T) {
		mockExchangeRepo.On("GetByID", ctx, exchangeID).Return(pendingExchange(), nil).Once()
		mockExchangeRepo.On("Reject", ctx, exchangeID).Return(nil).Once()

		resolved, err := svc.Respond(ctx, targetID, exchangeID, domain.DecisionReject)

		assert.NoError(t, err)
		assert.Equal(t, domain.ExchangeRejected, resolved.Status)
	})

	t.Run("Invalid Decision", func(t *testing.T) {
		resolved, err := svc.Respond(ctx, targetID, exchangeID, domain.ExchangeDecision("maybe"))

		assert.ErrorIs(t, err, exchange.ErrInvalidDecision)
		assert.Nil(t, resolved)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockExchangeRepo.On("GetByID", ctx, exchangeID).Return(nil, nil).Once()

		resolved, err := svc.Respond(ctx, targetID, exchangeID, domain.DecisionAccept)

		assert.ErrorIs(t, err, domain.ErrExchangeNotFound)
		assert.Nil(t, resolved)
	})

	t.Run("Only Target Can Respond", func(t *testing.T) {
		mockExchangeRepo.On("GetByID", ctx, exchangeID).Return(pendingExchange(), nil).Once()

		resolved, err := svc.Respond(ctx, proposerID, exchangeID, domain.DecisionAccept)

		assert.ErrorIs(t, err, domain.ErrNotExchangeTarget)
		assert.Nil(t, resolved)
	})

	t.Run("Already Resolved", func(t *testing.T) {
		accepted := pendingExchange()
		accepted.Status = domain.ExchangeAccepted
		mockExchangeRepo.On("GetByID", ctx, exchangeID).Return(accepted, nil).Once()

		resolved, err := svc.Respond(ctx, targetID, exchangeID, domain.DecisionReject)

		assert.ErrorIs(t, err, domain.ErrExchangeResolved)
		assert.Nil(t, resolved)
	})

	t.Run("Lost Acceptance Race", func(t *testing.T) {
		mockExchangeRepo.On("GetByID", ctx, exchangeID).Return(pendingExchange(), nil).Once()
		mockExchangeRepo.On("Accept", ctx, mock.Anything).Return(domain.ErrExchangeResolved).Once()

		resolved, err := svc.Respond(ctx, targetID, exchangeID, domain.DecisionAccept)

		assert.ErrorIs(t, err, domain.ErrExchangeResolved)
		assert.Nil(t, resolved)
	})

	t.Run("Proposer No Longer Owns Shift", func(t *testing.T) {
		mockExchangeRepo.On("GetByID", ctx, exchangeID).Return(pendingExchange(), nil).Once()
		mockExchangeRepo.On("Accept", ctx, mock.Anything).Return(domain.ErrStaleExchange).Once()

		resolved, err := svc.Respond(ctx, targetID, exchangeID, domain.DecisionAccept)

		assert.ErrorIs(t, err, domain.ErrStaleExchange)
		assert.Nil(t, resolved)
	})
}

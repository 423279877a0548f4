package unit_test

import (
	"context"
	"testing"
	"time"

	"careshift/internal/domain"
	"careshift/internal/service/payslip"
	"careshift/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPayslipService_Generate(t *testing.T) {
	mockPayslipRepo := new(mocks.PayslipRepository)
	mockShiftRepo := new(mocks.ShiftRepository)

	svc := payslip.NewService(mockPayslipRepo, mockShiftRepo)
	ctx := context.Background()

	nurse := nurseUser()
	periodStart := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	input := domain.GeneratePayslipInput{UserID: nurse.ID, Period: "2025-03"}

	validatedShifts := func() []domain.Shift {
		return []domain.Shift{
			{ID: uuid.New(), UserID: nurse.ID, Total: dec("210.00"), Status: domain.ShiftValidated},
			{ID: uuid.New(), UserID: nurse.ID, Total: dec("210.00"), Status: domain.ShiftValidated},
		}
	}

	t.Run("Success", func(t *testing.T) {
		shifts := validatedShifts()
		mockShiftRepo.On("ListValidatedForPeriod", ctx, nurse.ID, periodStart, periodEnd).
			Return(shifts, nil).Once()
		mockPayslipRepo.On("CreateSettled", ctx, mock.MatchedBy(func(p *domain.Payslip) bool {
			return p.UserID == nurse.ID &&
				p.Period == "2025-03" &&
				len(p.ShiftIDs) == 2 &&
				p.GrossTotal.Equal(dec("420.00")) &&
				p.Commission.Equal(dec("29.40")) &&
				p.NetTotal.Equal(dec("390.60"))
		})).Return(nil).Once()

		generated, err := svc.Generate(ctx, nurse, input)

		assert.NoError(t, err)
		assert.NotNil(t, generated)
		assert.True(t, generated.GrossTotal.Equal(generated.NetTotal.Add(generated.Commission)),
			"gross must reconcile with net plus commission")

		mockPayslipRepo.AssertExpectations(t)
		mockShiftRepo.AssertExpectations(t)
	})

	t.Run("Commission Rounds Half Even", func(t *testing.T) {
		// 0.07 * 17.50 = 1.225, which rounds to 1.22 instead of 1.23.
		shifts := []domain.Shift{
			{ID: uuid.New(), UserID: nurse.ID, Total: dec("17.50"), Status: domain.ShiftValidated},
		}
		mockShiftRepo.On("ListValidatedForPeriod", ctx, nurse.ID, periodStart, periodEnd).
			Return(shifts, nil).Once()
		mockPayslipRepo.On("CreateSettled", ctx, mock.MatchedBy(func(p *domain.Payslip) bool {
			return p.Commission.Equal(dec("1.22")) && p.NetTotal.Equal(dec("16.28"))
		})).Return(nil).Once()

		generated, err := svc.Generate(ctx, nurse, input)

		assert.NoError(t, err)
		assert.True(t, generated.Commission.Equal(dec("1.22")))
	})

	t.Run("Admin Generates For Caregiver", func(t *testing.T) {
		mockShiftRepo.On("ListValidatedForPeriod", ctx, nurse.ID, periodStart, periodEnd).
			Return(validatedShifts(), nil).Once()
		mockPayslipRepo.On("CreateSettled", ctx, mock.Anything).Return(nil).Once()

		generated, err := svc.Generate(ctx, adminUser(), input)

		assert.NoError(t, err)
		assert.Equal(t, nurse.ID, generated.UserID)
	})

	t.Run("Caregiver Cannot Generate For Another User", func(t *testing.T) {
		generated, err := svc.Generate(ctx, nurseUser(), input)

		assert.ErrorIs(t, err, domain.ErrNotAllowed)
		assert.Nil(t, generated)
	})

	t.Run("Invalid Period", func(t *testing.T) {
		generated, err := svc.Generate(ctx, nurse, domain.GeneratePayslipInput{UserID: nurse.ID, Period: "03-2025"})

		assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
		assert.Nil(t, generated)
	})

	t.Run("Nothing To Settle", func(t *testing.T) {
		mockShiftRepo.On("ListValidatedForPeriod", ctx, nurse.ID, periodStart, periodEnd).
			Return([]domain.Shift{}, nil).Once()

		generated, err := svc.Generate(ctx, nurse, input)

		assert.ErrorIs(t, err, domain.ErrNothingToSettle)
		assert.Nil(t, generated)
	})

	t.Run("Concurrent Settlement Conflict", func(t *testing.T) {
		mockShiftRepo.On("ListValidatedForPeriod", ctx, nurse.ID, periodStart, periodEnd).
			Return(validatedShifts(), nil).Once()
		mockPayslipRepo.On("CreateSettled", ctx, mock.Anything).
			Return(domain.ErrSettlementConflict).Once()

		generated, err := svc.Generate(ctx, nurse, input)

		assert.ErrorIs(t, err, domain.ErrSettlementConflict)
		assert.Nil(t, generated)
	})
}

func TestPayslipService_List(t *testing.T) {
	mockPayslipRepo := new(mocks.PayslipRepository)
	mockShiftRepo := new(mocks.ShiftRepository)

	svc := payslip.NewService(mockPayslipRepo, mockShiftRepo)
	ctx := context.Background()

	nurse := nurseUser()

	t.Run("Caregiver Sees Own Payslips", func(t *testing.T) {
		own := []domain.Payslip{{ID: uuid.New(), UserID: nurse.ID}}
		mockPayslipRepo.On("ListByUser", ctx, nurse.ID).Return(own, nil).Once()

		payslips, err := svc.List(ctx, nurse, nil)

		assert.NoError(t, err)
		assert.Equal(t, own, payslips)
	})

	t.Run("Admin Sees All", func(t *testing.T) {
		all := []domain.Payslip{{ID: uuid.New()}, {ID: uuid.New()}}
		mockPayslipRepo.On("ListAll", ctx).Return(all, nil).Once()

		payslips, err := svc.List(ctx, adminUser(), nil)

		assert.NoError(t, err)
		assert.Len(t, payslips, 2)
	})

	t.Run("Caregiver Cannot Filter By Other User", func(t *testing.T) {
		otherID := uuid.New()

		payslips, err := svc.List(ctx, nurse, &otherID)

		assert.ErrorIs(t, err, domain.ErrNotAllowed)
		assert.Nil(t, payslips)
	})
}

func TestPayslipService_GetByID(t *testing.T) {
	mockPayslipRepo := new(mocks.PayslipRepository)
	mockShiftRepo := new(mocks.ShiftRepository)

	svc := payslip.NewService(mockPayslipRepo, mockShiftRepo)
	ctx := context.Background()

	nurse := nurseUser()
	payslipID := uuid.New()

	t.Run("Owner Can View", func(t *testing.T) {
		owned := &domain.Payslip{ID: payslipID, UserID: nurse.ID}
		mockPayslipRepo.On("GetByID", ctx, payslipID).Return(owned, nil).Once()

		found, err := svc.GetByID(ctx, nurse, payslipID)

		assert.NoError(t, err)
		assert.Equal(t, owned, found)
	})

	t.Run("Other Caregiver Forbidden", func(t *testing.T) {
		owned := &domain.Payslip{ID: payslipID, UserID: nurse.ID}
		mockPayslipRepo.On("GetByID", ctx, payslipID).Return(owned, nil).Once()

		found, err := svc.GetByID(ctx, nurseUser(), payslipID)

		assert.ErrorIs(t, err, domain.ErrNotAllowed)
		assert.Nil(t, found)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockPayslipRepo.On("GetByID", ctx, payslipID).Return(nil, nil).Once()

		found, err := svc.GetByID(ctx, nurse, payslipID)

		assert.ErrorIs(t, err, domain.ErrPayslipNotFound)
		assert.Nil(t, found)
	})
}

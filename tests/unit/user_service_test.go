package unit_test

import (
	"context"
	"testing"

	"careshift/internal/domain"
	"careshift/internal/service/user"
	"careshift/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserService_UpdateStatus(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	svc := user.NewService(mockUserRepo)
	ctx := context.Background()

	admin := adminUser()
	pendingID := uuid.New()

	t.Run("Admin Approves", func(t *testing.T) {
		mockUserRepo.On("UpdateStatus", ctx, pendingID, domain.UserApproved).Return(nil).Once()

		err := svc.UpdateStatus(ctx, admin, pendingID, domain.UserApproved)

		assert.NoError(t, err)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("Admin Rejects", func(t *testing.T) {
		mockUserRepo.On("UpdateStatus", ctx, pendingID, domain.UserRejected).Return(nil).Once()

		err := svc.UpdateStatus(ctx, admin, pendingID, domain.UserRejected)

		assert.NoError(t, err)
	})

	t.Run("Caregiver Forbidden", func(t *testing.T) {
		err := svc.UpdateStatus(ctx, nurseUser(), pendingID, domain.UserApproved)

		assert.ErrorIs(t, err, domain.ErrNotAllowed)
	})

	t.Run("Unknown Status", func(t *testing.T) {
		err := svc.UpdateStatus(ctx, admin, pendingID, domain.UserStatus("BANNED"))

		assert.ErrorIs(t, err, user.ErrInvalidStatus)
	})

	t.Run("User Not Found", func(t *testing.T) {
		mockUserRepo.On("UpdateStatus", ctx, pendingID, domain.UserApproved).
			Return(domain.ErrUserNotFound).Once()

		err := svc.UpdateStatus(ctx, admin, pendingID, domain.UserApproved)

		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	svc := user.NewService(mockUserRepo)
	ctx := context.Background()

	userID := uuid.New()
	existing := func() *domain.User {
		return &domain.User{
			ID:        userID,
			Email:     "marie@example.com",
			FirstName: "Marie",
			LastName:  "Durand",
			Role:      domain.RoleNurse,
			Status:    domain.UserApproved,
		}
	}

	t.Run("Partial Update", func(t *testing.T) {
		newFirst := "Maria"
		mockUserRepo.On("GetByID", ctx, userID).Return(existing(), nil).Once()
		mockUserRepo.On("Update", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.FirstName == "Maria" && u.LastName == "Durand"
		})).Return(nil).Once()

		updated, err := svc.UpdateProfile(ctx, userID, domain.UpdateUserInput{FirstName: &newFirst})

		assert.NoError(t, err)
		assert.Equal(t, "Maria", updated.FirstName)
		assert.Equal(t, "Durand", updated.LastName)
	})

	t.Run("Password Is Rehashed", func(t *testing.T) {
		newPassword := "new-password"
		mockUserRepo.On("GetByID", ctx, userID).Return(existing(), nil).Once()
		mockUserRepo.On("Update", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.PasswordHash != "" && u.PasswordHash != newPassword
		})).Return(nil).Once()

		updated, err := svc.UpdateProfile(ctx, userID, domain.UpdateUserInput{Password: &newPassword})

		assert.NoError(t, err)
		assert.NotEqual(t, newPassword, updated.PasswordHash)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockUserRepo.On("GetByID", ctx, userID).Return(nil, nil).Once()

		updated, err := svc.UpdateProfile(ctx, userID, domain.UpdateUserInput{})

		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.Nil(t, updated)
	})
}

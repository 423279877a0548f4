package unit_test

import (
	"context"
	"testing"

	"careshift/internal/domain"
	"careshift/internal/service/notification"
	"careshift/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNotificationService_Notify(t *testing.T) {
	mockNotifRepo := new(mocks.NotificationRepository)
	mockUserRepo := new(mocks.UserRepository)

	svc := notification.NewService(mockNotifRepo, mockUserRepo, nil)
	ctx := context.Background()

	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockNotifRepo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.UserID == userID &&
				n.Type == domain.NotifExchangeRequest &&
				n.Content == "Shift exchange request from Marie Durand"
		})).Return(nil).Once()

		err := svc.Notify(ctx, userID, domain.NotifExchangeRequest, "Shift exchange request from Marie Durand")

		assert.NoError(t, err)
		mockNotifRepo.AssertExpectations(t)
	})
}

func TestNotificationService_NotifyAccountStatus(t *testing.T) {
	mockNotifRepo := new(mocks.NotificationRepository)
	mockUserRepo := new(mocks.UserRepository)

	svc := notification.NewService(mockNotifRepo, mockUserRepo, nil)
	ctx := context.Background()

	target := &domain.User{ID: uuid.New(), Email: "marie@example.com", FirstName: "Marie", LastName: "Durand"}

	t.Run("Approved", func(t *testing.T) {
		mockNotifRepo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.UserID == target.ID && n.Type == domain.NotifAccountStatus
		})).Return(nil).Once()
		mockUserRepo.On("GetByID", ctx, target.ID).Return(target, nil).Once()

		err := svc.NotifyAccountStatus(ctx, target.ID, domain.UserApproved)

		assert.NoError(t, err)
		mockNotifRepo.AssertExpectations(t)
	})
}

func TestNotificationService_List(t *testing.T) {
	mockNotifRepo := new(mocks.NotificationRepository)
	mockUserRepo := new(mocks.UserRepository)

	svc := notification.NewService(mockNotifRepo, mockUserRepo, nil)
	ctx := context.Background()

	userID := uuid.New()
	params := domain.PaginationParams{Page: 1, PageSize: 20}

	t.Run("Paginated", func(t *testing.T) {
		items := []domain.Notification{{ID: uuid.New(), UserID: userID}}
		mockNotifRepo.On("ListByUser", ctx, userID, false, params).Return(items, int64(42), nil).Once()

		result, err := svc.List(ctx, userID, false, params)

		assert.NoError(t, err)
		assert.Len(t, result.Data, 1)
		assert.Equal(t, int64(42), result.TotalItems)
		assert.Equal(t, 3, result.TotalPages)
		assert.True(t, result.HasNext)
	})

	t.Run("Unread Only", func(t *testing.T) {
		mockNotifRepo.On("ListByUser", ctx, userID, true, params).Return([]domain.Notification{}, int64(0), nil).Once()

		result, err := svc.List(ctx, userID, true, params)

		assert.NoError(t, err)
		assert.Empty(t, result.Data)
	})
}

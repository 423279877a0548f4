package unit_test

import (
	"context"
	"testing"
	"time"

	"careshift/internal/config"
	"careshift/internal/domain"
	"careshift/internal/service/auth"
	"careshift/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "test-secret",
		JWTAccessExpiry: time.Hour,
	}
}

func TestAuthService_Register(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	svc := auth.NewService(mockUserRepo, testConfig())
	ctx := context.Background()

	input := domain.CreateUserInput{
		Email:     "marie@example.com",
		Password:  "password123",
		FirstName: "Marie",
		LastName:  "Durand",
		Role:      domain.RoleNurse,
	}

	t.Run("Caregiver Starts Pending", func(t *testing.T) {
		mockUserRepo.On("ExistsByEmail", ctx, input.Email).Return(false, nil).Once()
		mockUserRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == input.Email &&
				u.Status == domain.UserPending &&
				u.PasswordHash != input.Password
		})).Return(nil).Once()

		user, err := svc.Register(ctx, input)

		assert.NoError(t, err)
		assert.Equal(t, domain.UserPending, user.Status)

		mockUserRepo.AssertExpectations(t)
	})

	t.Run("Admin Starts Approved", func(t *testing.T) {
		adminInput := input
		adminInput.Email = "admin@example.com"
		adminInput.Role = domain.RoleAdmin

		mockUserRepo.On("ExistsByEmail", ctx, adminInput.Email).Return(false, nil).Once()
		mockUserRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Status == domain.UserApproved
		})).Return(nil).Once()

		user, err := svc.Register(ctx, adminInput)

		assert.NoError(t, err)
		assert.Equal(t, domain.UserApproved, user.Status)
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		mockUserRepo.On("ExistsByEmail", ctx, input.Email).Return(true, nil).Once()

		user, err := svc.Register(ctx, input)

		assert.ErrorIs(t, err, auth.ErrEmailExists)
		assert.Nil(t, user)
	})

	t.Run("Unknown Role", func(t *testing.T) {
		badInput := input
		badInput.Role = domain.UserRole("doctor")

		user, err := svc.Register(ctx, badInput)

		assert.ErrorIs(t, err, auth.ErrInvalidRole)
		assert.Nil(t, user)
	})
}

func TestAuthService_Login(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	svc := auth.NewService(mockUserRepo, testConfig())
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	approved := &domain.User{
		ID:           uuid.New(),
		Email:        "marie@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleNurse,
		Status:       domain.UserApproved,
	}

	t.Run("Success", func(t *testing.T) {
		mockUserRepo.On("GetByEmail", ctx, approved.Email).Return(approved, nil).Once()

		token, err := svc.Login(ctx, domain.LoginInput{Email: approved.Email, Password: "password123"})

		assert.NoError(t, err)
		assert.NotEmpty(t, token.AccessToken)
		assert.Equal(t, "bearer", token.TokenType)
		assert.Equal(t, approved.ID, token.User.ID)

		claims, err := svc.ValidateAccessToken(token.AccessToken)
		assert.NoError(t, err)
		assert.Equal(t, approved.ID, claims.UserID)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		mockUserRepo.On("GetByEmail", ctx, approved.Email).Return(approved, nil).Once()

		token, err := svc.Login(ctx, domain.LoginInput{Email: approved.Email, Password: "wrong"})

		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
		assert.Nil(t, token)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		mockUserRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, nil).Once()

		token, err := svc.Login(ctx, domain.LoginInput{Email: "nobody@example.com", Password: "password123"})

		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
		assert.Nil(t, token)
	})

	t.Run("Pending Account Blocked", func(t *testing.T) {
		pending := *approved
		pending.Status = domain.UserPending
		mockUserRepo.On("GetByEmail", ctx, approved.Email).Return(&pending, nil).Once()

		token, err := svc.Login(ctx, domain.LoginInput{Email: approved.Email, Password: "password123"})

		assert.ErrorIs(t, err, auth.ErrAccountNotApproved)
		assert.Nil(t, token)
	})
}

func TestAuthService_ValidateAccessToken(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	svc := auth.NewService(mockUserRepo, testConfig())

	t.Run("Garbage Token", func(t *testing.T) {
		claims, err := svc.ValidateAccessToken("not-a-token")

		assert.ErrorIs(t, err, auth.ErrInvalidToken)
		assert.Nil(t, claims)
	})

	t.Run("Token From Another Secret", func(t *testing.T) {
		otherCfg := testConfig()
		otherCfg.JWTSecret = "another-secret"
		otherSvc := auth.NewService(mockUserRepo, otherCfg)

		hash, _ := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
		user := &domain.User{ID: uuid.New(), Email: "a@b.c", PasswordHash: string(hash), Status: domain.UserApproved}
		mockUserRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil).Once()

		token, err := otherSvc.Login(context.Background(), domain.LoginInput{Email: user.Email, Password: "pw"})
		assert.NoError(t, err)

		claims, err := svc.ValidateAccessToken(token.AccessToken)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
		assert.Nil(t, claims)
	})
}

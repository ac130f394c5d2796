package auth_test

import (
	"context"
	"errors"
	"testing"

	"go-recruit/internal/auth"
	autherrors "go-recruit/internal/auth/errors"
	authMock "go-recruit/internal/auth/mock"
	"go-recruit/internal/employee"
	employeeerrors "go-recruit/internal/employee/errors"
	employeeMock "go-recruit/internal/employee/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupAuthService(t *testing.T) (auth.Service, *authMock.MockRepository, *employeeMock.MockRepository) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	ctrl := gomock.NewController(t)
	repo := authMock.NewMockRepository(ctrl)
	employeeRepo := employeeMock.NewMockRepository(ctrl)
	return auth.NewService(repo, employeeRepo), repo, employeeRepo
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	password := "password123"
	pw, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	user := &auth.User{
		ID:       uuid.New(),
		Email:    "hr@example.com",
		Name:     "HR Admin",
		Password: string(pw),
		Role:     "HR",
		IsActive: true,
	}

	t.Run("success", func(t *testing.T) {
		svc, repo, _ := setupAuthService(t)

		repo.EXPECT().
			GetByEmail(ctx, user.Email).
			Return(user, nil)

		access, refresh, resp, err := svc.Login(ctx, user.Email, password)
		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		assert.Equal(t, user.Email, resp.Email)
		assert.Equal(t, "HR", resp.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, repo, _ := setupAuthService(t)

		repo.EXPECT().
			GetByEmail(ctx, user.Email).
			Return(user, nil)

		_, _, _, err := svc.Login(ctx, user.Email, "wrongpass")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, repo, _ := setupAuthService(t)

		repo.EXPECT().
			GetByEmail(ctx, "nobody@example.com").
			Return(nil, gorm.ErrRecordNotFound)

		_, _, _, err := svc.Login(ctx, "nobody@example.com", password)
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip issues fresh pair", func(t *testing.T) {
		svc, repo, _ := setupAuthService(t)

		password := "password123"
		pw, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		user := &auth.User{
			ID:       uuid.New(),
			Email:    "hr@example.com",
			Password: string(pw),
			Role:     "HR",
		}

		repo.EXPECT().
			GetByEmail(ctx, user.Email).
			Return(user, nil)
		repo.EXPECT().
			GetByID(ctx, user.ID).
			Return(user, nil)

		_, refresh, _, err := svc.Login(ctx, user.Email, password)
		assert.NoError(t, err)

		newAccess, newRefresh, resp, err := svc.RefreshToken(ctx, refresh)
		assert.NoError(t, err)
		assert.NotEmpty(t, newAccess)
		assert.NotEmpty(t, newRefresh)
		assert.Equal(t, user.Email, resp.Email)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		svc, _, _ := setupAuthService(t)

		_, _, _, err := svc.RefreshToken(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success defaults to HR role", func(t *testing.T) {
		svc, repo, _ := setupAuthService(t)

		repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, u *auth.User) error {
				assert.Equal(t, "HR", u.Role)
				assert.True(t, u.IsActive)
				assert.NotEqual(t, "password123", u.Password) // harus ter-hash
				return nil
			})

		resp, err := svc.Register(ctx, auth.RegisterRequest{
			Email:    "user@example.com",
			Name:     "Rina",
			Password: "password123",
		})
		assert.NoError(t, err)
		assert.Equal(t, "HR", resp.Role)
	})

	t.Run("linked employee must exist", func(t *testing.T) {
		svc, _, employeeRepo := setupAuthService(t)
		eID := uuid.New()

		employeeRepo.EXPECT().
			FindByID(ctx, eID.String()).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Register(ctx, auth.RegisterRequest{
			EmployeeID: eID.String(),
			Email:      "user@example.com",
			Name:       "Rina",
			Password:   "password123",
		})
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("linked employee accepted", func(t *testing.T) {
		svc, repo, employeeRepo := setupAuthService(t)
		eID := uuid.New()

		employeeRepo.EXPECT().
			FindByID(ctx, eID.String()).
			Return(&employee.Employee{ID: eID, FullName: "Rina"}, nil)
		repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, u *auth.User) error {
				assert.Equal(t, eID, *u.EmployeeID)
				return nil
			})

		resp, err := svc.Register(ctx, auth.RegisterRequest{
			EmployeeID: eID.String(),
			Email:      "user@example.com",
			Name:       "Rina",
			Password:   "password123",
			Role:       "admin",
		})
		assert.NoError(t, err)
		assert.Equal(t, "ADMIN", resp.Role)
		assert.Equal(t, eID.String(), resp.EmployeeID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, repo, _ := setupAuthService(t)

		repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(errors.New("duplicate key error"))

		_, err := svc.Register(ctx, auth.RegisterRequest{
			Email:    "duplicate@example.com",
			Name:     "Rina",
			Password: "password123",
		})
		assert.ErrorIs(t, err, autherrors.ErrEmailAlreadyRegistered)
	})
}

package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/jwt"
	jwtMocks "lodge/infras/jwt/mocks"
	"lodge/infras/otel/mocks"
	adminMocks "lodge/internal/domains/admin/mocks"
	adminModel "lodge/internal/domains/admin/model"
	"lodge/internal/domains/auth/model/dto"
	"lodge/internal/domains/auth/service"
	"lodge/shared/constant"
	"lodge/shared/failure"
	"lodge/shared/password"
)

func newTestService(t *testing.T) (service.Auth, *adminMocks.MockAdministrator, *jwtMocks.MockJWT) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := adminMocks.NewMockAdministrator(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mocks.NewOtel(), mockJWT)

	return svc, mockRepo, mockJWT
}

func sampleAdmin(t *testing.T, plainPassword string) adminModel.Administrator {
	t.Helper()

	hashed, err := password.Hash(plainPassword)
	if err != nil {
		t.Fatalf("failed to hash test password: %v", err)
	}

	return adminModel.Administrator{
		ID:       "admin-1",
		Email:    "admin@lodge.local",
		Name:     "Admin Kim",
		Password: hashed,
		Role:     constant.RoleAdmin,
		Active:   true,
	}
}

func TestAuthService_Register(t *testing.T) {
	req := dto.RegisterRequest{
		Email:    "staff@lodge.local",
		Password: "password123",
		Name:     "Staff Lee",
	}

	t.Run("successful registration", func(t *testing.T) {
		svc, mockRepo, _ := newTestService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, admin adminModel.Administrator) error {
				assert.NotEmpty(t, admin.ID)
				assert.Equal(t, req.Email, admin.Email)
				assert.Equal(t, constant.RoleStaff, admin.Role)
				assert.True(t, admin.Active)
				assert.NoError(t, password.Verify(req.Password, admin.Password))

				return nil
			})

		err := svc.Register(context.Background(), req)

		assert.NoError(t, err)
	})

	t.Run("email already registered", func(t *testing.T) {
		svc, mockRepo, _ := newTestService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		err := svc.Register(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("insert error", func(t *testing.T) {
		svc, mockRepo, _ := newTestService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		err := svc.Register(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 502, failure.GetCode(err))
	})
}

func TestAuthService_Login(t *testing.T) {
	req := dto.LoginRequest{
		Email:    "admin@lodge.local",
		Password: "password123",
	}

	t.Run("successful login", func(t *testing.T) {
		svc, mockRepo, mockJWT := newTestService(t)

		admin := sampleAdmin(t, req.Password)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(admin, nil)

		mockJWT.EXPECT().
			GenerateTokenPair(admin.ID, admin.Email, admin.Role).
			Return(&jwt.TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}, nil)

		res, err := svc.Login(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, "access", res.AccessToken)
		assert.Equal(t, "refresh", res.RefreshToken)
		assert.Equal(t, admin.Name, res.Name)
		assert.Equal(t, admin.Email, res.Email)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, mockRepo, _ := newTestService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(adminModel.Administrator{}, nil)

		_, err := svc.Login(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
		assert.Equal(t, "invalid email or password", err.Error())
	})

	t.Run("lookup error hides the cause", func(t *testing.T) {
		svc, mockRepo, _ := newTestService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(adminModel.Administrator{}, errors.New("database error"))

		_, err := svc.Login(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, "invalid email or password", err.Error())
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, mockRepo, _ := newTestService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(sampleAdmin(t, "differentPassword"), nil)

		_, err := svc.Login(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, "invalid email or password", err.Error())
	})

	t.Run("deactivated account", func(t *testing.T) {
		svc, mockRepo, _ := newTestService(t)

		admin := sampleAdmin(t, req.Password)
		admin.Active = false

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(admin, nil)

		_, err := svc.Login(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, "account is deactivated", err.Error())
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Run("successful refresh", func(t *testing.T) {
		svc, _, mockJWT := newTestService(t)

		mockJWT.EXPECT().
			RefreshTokens("old-refresh").
			Return(&jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh", ExpiresIn: 900}, nil)

		res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "old-refresh"})

		assert.NoError(t, err)
		assert.Equal(t, "new-access", res.AccessToken)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		svc, _, mockJWT := newTestService(t)

		mockJWT.EXPECT().
			RefreshTokens("bad-token").
			Return(nil, errors.New("token expired"))

		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "bad-token"})

		assert.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})
}

func TestAuthService_Profile(t *testing.T) {
	sessionCtx := func() context.Context {
		ctx := context.WithValue(context.Background(), constant.ContextKeyUserEmail, "admin@lodge.local")

		return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleAdmin)
	}

	t.Run("name resolved from administrator row", func(t *testing.T) {
		svc, mockRepo, _ := newTestService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(sampleAdmin(t, "password123"), nil)

		res, err := svc.Profile(sessionCtx())

		assert.NoError(t, err)
		assert.Equal(t, "Admin Kim", res.Name)
		assert.Equal(t, "admin@lodge.local", res.Email)
		assert.Equal(t, constant.RoleAdmin, res.Role)
	})

	t.Run("lookup failure falls back to email", func(t *testing.T) {
		svc, mockRepo, _ := newTestService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(adminModel.Administrator{}, errors.New("database error"))

		res, err := svc.Profile(sessionCtx())

		assert.NoError(t, err)
		assert.Equal(t, "admin@lodge.local", res.Name)
	})

	t.Run("empty name falls back to email", func(t *testing.T) {
		svc, mockRepo, _ := newTestService(t)

		admin := sampleAdmin(t, "password123")
		admin.Name = ""

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(admin, nil)

		res, err := svc.Profile(sessionCtx())

		assert.NoError(t, err)
		assert.Equal(t, "admin@lodge.local", res.Name)
	})

	t.Run("missing session email", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.Profile(context.Background())

		assert.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})
}

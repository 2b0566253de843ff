package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/otel/mocks"
	vacationMocks "lodge/internal/domains/vacation/mocks"
	"lodge/internal/domains/vacation/model"
	"lodge/internal/domains/vacation/model/dto"
	"lodge/internal/domains/vacation/service"
	cacheMocks "lodge/shared/cache/mocks"
	"lodge/shared/constant"
	"lodge/shared/failure"
)

func newTestService(t *testing.T) (service.Vacation, *vacationMocks.MockVacation, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := vacationMocks.NewMockVacation(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockCache
}

func pendingVacation() model.Vacation {
	return model.Vacation{
		ID:             "req-1",
		RequesterEmail: "staff@lodge.local",
		RequestYMD:     "20240615",
		RequestCd:      model.RequestCdVacation,
		RequestDesc:    "family trip",
		DecisionCd:     model.DecisionPending,
	}
}

func TestVacationService_Create(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		svc, mockRepo, mockCache := newTestService(t)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, vacation model.Vacation) error {
				assert.NotEmpty(t, vacation.ID)
				assert.Equal(t, "staff@lodge.local", vacation.RequesterEmail)
				assert.Equal(t, model.RequestCdVacation, vacation.RequestCd)
				assert.Equal(t, model.DecisionPending, vacation.DecisionCd)

				return nil
			})

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserEmail, "staff@lodge.local")
		res, err := svc.Create(ctx, dto.CreateVacationRequest{RequestDesc: "family trip"})

		assert.NoError(t, err)
		assert.Equal(t, "Pending", res.DecisionLabel)
	})

	t.Run("missing requester email", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.Create(context.Background(), dto.CreateVacationRequest{RequestDesc: "family trip"})

		assert.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})

	t.Run("insert error", func(t *testing.T) {
		svc, mockRepo, _ := newTestService(t)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserEmail, "staff@lodge.local")
		_, err := svc.Create(ctx, dto.CreateVacationRequest{RequestDesc: "family trip"})

		assert.Error(t, err)
		assert.Equal(t, 502, failure.GetCode(err))
	})
}

func TestVacationService_List(t *testing.T) {
	t.Run("cache hit", func(t *testing.T) {
		svc, _, mockCache := newTestService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := svc.List(context.Background())

		assert.NoError(t, err)
	})

	t.Run("cache miss, fetched from db", func(t *testing.T) {
		svc, mockRepo, mockCache := newTestService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Vacation{pendingVacation()}, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.List(context.Background())

		assert.NoError(t, err)
		assert.Len(t, res.Vacations, 1)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, mockRepo, mockCache := newTestService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := svc.List(context.Background())

		assert.Error(t, err)
	})
}

func TestVacationService_Decide(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserEmail, "admin@lodge.local")

	t.Run("approve pending request", func(t *testing.T) {
		svc, mockRepo, mockCache := newTestService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(pendingVacation(), nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, model.DecisionApproved, fields[model.FieldDecisionCd])
				assert.Equal(t, "admin@lodge.local", fields[model.FieldApproverEmail])
				assert.Equal(t, "admin@lodge.local", fields[constant.FieldModifiedBy])
				assert.Contains(t, fields, constant.FieldModifiedAt)

				return nil
			})

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		err := svc.Decide(ctx, "req-1", dto.DecideVacationRequest{Approve: true})

		assert.NoError(t, err)
	})

	t.Run("reject pending request", func(t *testing.T) {
		svc, mockRepo, mockCache := newTestService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(pendingVacation(), nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, model.DecisionRejected, fields[model.FieldDecisionCd])

				return nil
			})

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		err := svc.Decide(ctx, "req-1", dto.DecideVacationRequest{Approve: false, DecisionDesc: "short staffed"})

		assert.NoError(t, err)
	})

	t.Run("missing approver email", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		err := svc.Decide(context.Background(), "req-1", dto.DecideVacationRequest{Approve: true})

		assert.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})

	t.Run("request not found", func(t *testing.T) {
		svc, mockRepo, _ := newTestService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Vacation{}, nil)

		err := svc.Decide(ctx, "missing", dto.DecideVacationRequest{Approve: true})

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("already decided", func(t *testing.T) {
		svc, mockRepo, _ := newTestService(t)

		decided := pendingVacation()
		decided.DecisionCd = model.DecisionApproved

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(decided, nil)

		err := svc.Decide(ctx, "req-1", dto.DecideVacationRequest{Approve: false})

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})
}

package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/otel/mocks"
	roomMocks "lodge/internal/domains/room/mocks"
	"lodge/internal/domains/room/model"
	"lodge/internal/domains/room/model/dto"
	"lodge/internal/domains/room/service"
	cacheMocks "lodge/shared/cache/mocks"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
)

func newTestService(t *testing.T) (service.Room, *roomMocks.MockRoom, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockCache
}

func sampleRoom() model.Room {
	return model.Room{
		RoomNo:     "101",
		OrgCd:      "HQ",
		Status:     model.StatusCleaned,
		ClearChk:   "Y",
		BipumChk:   "N",
		InspectChk: "N",
		Use:        "Y",
	}
}

func TestRoomService_GetAll(t *testing.T) {
	t.Run("unknown status filter is rejected", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.GetAll(context.Background(), "X", nil)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("cache hit", func(t *testing.T) {
		svc, _, mockCache := newTestService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := svc.GetAll(context.Background(), "", nil)

		assert.NoError(t, err)
	})

	t.Run("cache miss with status filter", func(t *testing.T) {
		svc, mockRepo, mockCache := newTestService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Room{sampleRoom()}, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.GetAll(context.Background(), model.StatusCleaned, nil)

		assert.NoError(t, err)
		assert.Len(t, res.Rooms, 1)
		assert.Equal(t, "Cleaned", res.Rooms[0].StatusLabel)
	})

	t.Run("cache miss with occupancy filter", func(t *testing.T) {
		svc, mockRepo, mockCache := newTestService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Room, error) {
				where, args := filter.GetWhereClause()
				assert.Contains(t, where, model.FieldUse)
				assert.Equal(t, "Y", args[model.FieldUse])

				return []model.Room{sampleRoom()}, nil
			})

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		inUse := true
		res, err := svc.GetAll(context.Background(), "", &inUse)

		assert.NoError(t, err)
		assert.Len(t, res.Rooms, 1)
		assert.True(t, res.Rooms[0].InUse)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, mockRepo, mockCache := newTestService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := svc.GetAll(context.Background(), "", nil)

		assert.Error(t, err)
	})
}

func TestRoomService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, mockRepo, mockCache := newTestService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(sampleRoom(), nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Get(context.Background(), "101")

		assert.NoError(t, err)
		assert.Equal(t, "101", res.RoomNo)
		assert.True(t, res.Cleared)
		assert.False(t, res.Inspected)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, mockCache := newTestService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Room{}, nil)

		_, err := svc.Get(context.Background(), "999")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestRoomService_UpdateStatus(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "staff")

	t.Run("successful update", func(t *testing.T) {
		svc, mockRepo, mockCache := newTestService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, model.StatusInspected, fields[model.FieldStatus])
				assert.Equal(t, "staff", fields[constant.FieldModifiedBy])
				assert.Contains(t, fields, constant.FieldModifiedAt)

				return nil
			})

		mockCache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		err := svc.UpdateStatus(ctx, "101", dto.UpdateRoomStatusRequest{Status: model.StatusInspected})

		assert.NoError(t, err)
	})

	t.Run("unknown status", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		err := svc.UpdateStatus(ctx, "101", dto.UpdateRoomStatusRequest{Status: "X"})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("room not found", func(t *testing.T) {
		svc, mockRepo, _ := newTestService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.UpdateStatus(ctx, "999", dto.UpdateRoomStatusRequest{Status: model.StatusInspected})

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("update error", func(t *testing.T) {
		svc, mockRepo, _ := newTestService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		err := svc.UpdateStatus(ctx, "101", dto.UpdateRoomStatusRequest{Status: model.StatusInspected})

		assert.Error(t, err)
		assert.Equal(t, 502, failure.GetCode(err))
	})
}

package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/otel/mocks"
	mealMocks "lodge/internal/domains/meal/mocks"
	mealModel "lodge/internal/domains/meal/model"
	"lodge/internal/domains/meal/model/dto"
	"lodge/internal/domains/meal/service"
	resMocks "lodge/internal/domains/reservation/mocks"
	resModel "lodge/internal/domains/reservation/model"
	roomMocks "lodge/internal/domains/room/mocks"
	roomModel "lodge/internal/domains/room/model"
	cacheMocks "lodge/shared/cache/mocks"
	"lodge/shared/constant"
	"lodge/shared/failure"
)

type testMocks struct {
	meal  *mealMocks.MockMeal
	res   *resMocks.MockReservation
	room  *roomMocks.MockRoom
	cache *cacheMocks.MockRedisCache
}

func newTestService(t *testing.T, headcountCap int) (service.Meal, testMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := testMocks{
		meal:  mealMocks.NewMockMeal(ctrl),
		res:   resMocks.NewMockReservation(ctrl),
		room:  roomMocks.NewMockRoom(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.App.Meal.HeadcountCap = headcountCap

	svc := service.New(m.meal, m.res, m.room, cfg, m.cache, mocks.NewOtel())

	return svc, m
}

func occupant(guestNum int) resModel.Reservation {
	return resModel.Reservation{
		Code:        "AB12CD",
		SeqNo:       202406,
		GuestName:   "Kim Minjun",
		RoomNo:      "101",
		GuestNum:    guestNum,
		CheckInYMD:  "20240614",
		CheckOutYMD: "20240617",
		Status:      resModel.StatusInHouse,
	}
}

func TestMealService_FindActiveOccupant(t *testing.T) {
	t.Run("occupant found", func(t *testing.T) {
		svc, m := newTestService(t, 4)

		m.res.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(occupant(2), nil)

		res, err := svc.FindActiveOccupant(context.Background(), "101")

		assert.NoError(t, err)
		assert.Equal(t, "AB12CD", res.Code)
		assert.Equal(t, "101", res.RoomNo)
	})

	t.Run("no active occupant", func(t *testing.T) {
		svc, m := newTestService(t, 4)

		m.res.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(resModel.Reservation{}, nil)

		_, err := svc.FindActiveOccupant(context.Background(), "101")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("repository error", func(t *testing.T) {
		svc, m := newTestService(t, 4)

		m.res.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(resModel.Reservation{}, errors.New("database error"))

		_, err := svc.FindActiveOccupant(context.Background(), "101")

		assert.Error(t, err)
	})
}

func TestMealService_Submit(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "staff")

	t.Run("headcount below one is rejected", func(t *testing.T) {
		svc, _ := newTestService(t, 4)

		_, err := svc.Submit(ctx, dto.SubmitMealRequest{RoomNo: "101", Headcount: 0})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("successful submission", func(t *testing.T) {
		svc, m := newTestService(t, 4)

		m.res.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(occupant(3), nil)

		m.room.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(roomModel.Room{RoomNo: "101", OrgCd: "HQ"}, nil)

		m.meal.EXPECT().
			Upsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, meal mealModel.Meal, conflictColumns, updateColumns []string) error {
				assert.NotEmpty(t, meal.ID)
				assert.Equal(t, "101", meal.RoomNo)
				assert.Equal(t, "HQ", meal.OrgCd)
				assert.Equal(t, 2, meal.Headcount)
				assert.True(t, mealModel.BandLabel(meal.Band) != "Unknown")
				assert.Contains(t, conflictColumns, mealModel.FieldRoomNo)
				assert.Contains(t, updateColumns, mealModel.FieldHeadcount)

				return nil
			})

		m.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Submit(ctx, dto.SubmitMealRequest{RoomNo: "101", Headcount: 2})

		assert.NoError(t, err)
		assert.Equal(t, 2, res.Meal.Headcount)
		assert.Empty(t, res.Warnings)
	})

	t.Run("headcount clamped to cap with warning", func(t *testing.T) {
		svc, m := newTestService(t, 4)

		m.res.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(occupant(6), nil)

		m.room.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(roomModel.Room{RoomNo: "101"}, nil)

		m.meal.EXPECT().
			Upsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, meal mealModel.Meal, _, _ []string) error {
				assert.Equal(t, 4, meal.Headcount)

				return nil
			})

		m.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Submit(ctx, dto.SubmitMealRequest{RoomNo: "101", Headcount: 9})

		assert.NoError(t, err)
		assert.Equal(t, 4, res.Meal.Headcount)
		assert.Len(t, res.Warnings, 1)
	})

	t.Run("exceeding party size warns without blocking", func(t *testing.T) {
		svc, m := newTestService(t, 10)

		m.res.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(occupant(2), nil)

		m.room.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(roomModel.Room{RoomNo: "101"}, nil)

		m.meal.EXPECT().
			Upsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		m.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Submit(ctx, dto.SubmitMealRequest{RoomNo: "101", Headcount: 5})

		assert.NoError(t, err)
		assert.Equal(t, 5, res.Meal.Headcount)
		assert.Len(t, res.Warnings, 1)
	})

	t.Run("room lookup failure does not block submission", func(t *testing.T) {
		svc, m := newTestService(t, 4)

		m.res.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(occupant(2), nil)

		m.room.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(roomModel.Room{}, errors.New("database error"))

		m.meal.EXPECT().
			Upsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, meal mealModel.Meal, _, _ []string) error {
				assert.Empty(t, meal.OrgCd)

				return nil
			})

		m.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		_, err := svc.Submit(ctx, dto.SubmitMealRequest{RoomNo: "101", Headcount: 2})

		assert.NoError(t, err)
	})

	t.Run("no active occupant", func(t *testing.T) {
		svc, m := newTestService(t, 4)

		m.res.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(resModel.Reservation{}, nil)

		_, err := svc.Submit(ctx, dto.SubmitMealRequest{RoomNo: "101", Headcount: 2})

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("upsert error", func(t *testing.T) {
		svc, m := newTestService(t, 4)

		m.res.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(occupant(2), nil)

		m.room.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(roomModel.Room{RoomNo: "101"}, nil)

		m.meal.EXPECT().
			Upsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		_, err := svc.Submit(ctx, dto.SubmitMealRequest{RoomNo: "101", Headcount: 2})

		assert.Error(t, err)
		assert.Equal(t, 502, failure.GetCode(err))
	})
}

func TestMealService_ListByDate(t *testing.T) {
	t.Run("malformed date", func(t *testing.T) {
		svc, _ := newTestService(t, 4)

		_, err := svc.ListByDate(context.Background(), "2024-06-15", "")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("cache hit", func(t *testing.T) {
		svc, m := newTestService(t, 4)

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := svc.ListByDate(context.Background(), "20240615", "")

		assert.NoError(t, err)
	})

	t.Run("cache miss, fetched from db", func(t *testing.T) {
		svc, m := newTestService(t, 4)

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		m.meal.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]mealModel.Meal{
				{ID: "id-1", RoomNo: "101", MealYMD: "20240615", Band: mealModel.BandLunch, Headcount: 2},
			}, nil)

		m.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.ListByDate(context.Background(), "20240615", "101")

		assert.NoError(t, err)
		assert.Len(t, res.Meals, 1)
		assert.Equal(t, "Lunch", res.Meals[0].BandLabel)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, m := newTestService(t, 4)

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		m.meal.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := svc.ListByDate(context.Background(), "20240615", "")

		assert.Error(t, err)
	})
}

package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/internal/domains/meal/model"
	"lodge/internal/domains/meal/model/dto"
	"lodge/internal/domains/meal/repository"
	resModel "lodge/internal/domains/reservation/model"
	resDto "lodge/internal/domains/reservation/model/dto"
	resRepo "lodge/internal/domains/reservation/repository"
	roomModel "lodge/internal/domains/room/model"
	roomRepo "lodge/internal/domains/room/repository"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	"lodge/shared/datecode"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const cacheGetAllMeal = "meal:gets"

type Meal interface {
	FindActiveOccupant(ctx context.Context, roomNo string) (resDto.ReservationResponse, error)
	Submit(ctx context.Context, req dto.SubmitMealRequest) (dto.SubmitMealResponse, error)
	ListByDate(ctx context.Context, ymd, roomNo string) (dto.GetMealsResponse, error)
}

type serviceImpl struct {
	repo     repository.Meal
	resRepo  resRepo.Reservation
	roomRepo roomRepo.Room
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Meal, resRepo resRepo.Reservation, roomRepo roomRepo.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Meal {
	return &serviceImpl{
		repo:     repo,
		resRepo:  resRepo,
		roomRepo: roomRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

// FindActiveOccupant resolves a 3-digit room fragment to the reservation
// currently occupying a matching room. The stay must span today and still
// be booked or in-house.
func (s *serviceImpl) FindActiveOccupant(ctx context.Context, roomNo string) (res resDto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FindActiveOccupant")
	defer scope.End()
	defer scope.TraceIfError(err)

	occupant, err := s.findOccupant(ctx, roomNo, datecode.TodayYMD())
	if err != nil {
		return res, err
	}

	res.FromModel(occupant)

	return res, nil
}

func (s *serviceImpl) findOccupant(ctx context.Context, roomNo, today string) (resModel.Reservation, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: resModel.FieldRoomNo, Value: roomNo, Operator: gDto.FilterOperatorLike, Table: resModel.TableName},
			gDto.Filter{Field: resModel.FieldCheckInYMD, Value: today, Operator: gDto.FilterOperatorLessEq, Table: resModel.TableName},
			gDto.Filter{Field: resModel.FieldCheckOutYMD, Value: today, Operator: gDto.FilterOperatorGreaterEq, Table: resModel.TableName},
			gDto.Filter{Field: resModel.FieldStatus, Value: resModel.ActiveStatuses, Operator: gDto.FilterOperatorIn, Table: resModel.TableName},
		},
	}

	occupant, err := s.resRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to look up active occupant")

		return occupant, fmt.Errorf("failed to look up active occupant: %w", err)
	}

	if occupant.Code == constant.Empty {
		return occupant, failure.NotFound("active occupant") // nolint:wrapcheck
	}

	return occupant, nil
}

func (s *serviceImpl) Submit(ctx context.Context, req dto.SubmitMealRequest) (res dto.SubmitMealResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Headcount < 1 {
		return res, failure.BadRequestFromString("headcount must be at least 1") // nolint:wrapcheck
	}

	now := timezone.Now()
	today := datecode.TodayYMD()

	occupant, err := s.findOccupant(ctx, req.RoomNo, today)
	if err != nil {
		return res, err
	}

	headcount := req.Headcount

	if limit := s.cfg.App.Meal.HeadcountCap; limit > 0 && headcount > limit {
		res.Warnings = append(res.Warnings, fmt.Sprintf("headcount reduced to the maximum of %d", limit))
		headcount = limit
	}

	if headcount > occupant.GuestNum {
		res.Warnings = append(res.Warnings, fmt.Sprintf("headcount %d exceeds the party size of %d", headcount, occupant.GuestNum))
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	meal := model.Meal{
		ID:        uuid.NewString(),
		RoomNo:    occupant.RoomNo,
		OrgCd:     s.lookupOrgCd(ctx, occupant.RoomNo),
		MealYMD:   today,
		Band:      model.ClassifyBand(now.Hour()),
		Headcount: headcount,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	// Resubmission for the same room, date and band overwrites the count.
	conflictColumns := []string{model.FieldRoomNo, model.FieldMealYMD, model.FieldBand}
	updateColumns := []string{model.FieldHeadcount, "modified_at", "modified_by"}

	if err = s.repo.Upsert(ctx, meal, conflictColumns, updateColumns); err != nil {
		log.Error().Err(err).Msg("failed to submit meal count")

		return res, failure.WriteError(fmt.Errorf("failed to submit meal count: %w", err)) // nolint:wrapcheck
	}

	res.Meal.FromModel(meal)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllMeal)
	}()

	return res, nil
}

func (s *serviceImpl) lookupOrgCd(ctx context.Context, roomNo string) string {
	room, err := s.roomRepo.Get(ctx, shared.FilterByID(roomNo, roomModel.FieldRoomNo, roomModel.TableName))
	if err != nil {
		log.Warn().Err(err).Str("roomNo", roomNo).Msg("could not resolve org code for room")

		return constant.Empty
	}

	return room.OrgCd
}

func (s *serviceImpl) ListByDate(ctx context.Context, ymd, roomNo string) (res dto.GetMealsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListByDate")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !datecode.ValidYMD(ymd) {
		return res, failure.BadRequestFromString("date must be formatted as YYYYMMDD") // nolint:wrapcheck
	}

	filters := []any{
		gDto.Filter{Field: model.FieldMealYMD, Value: ymd, Operator: gDto.FilterOperatorEq, Table: model.TableName},
	}
	if roomNo != "" {
		filters = append(filters, gDto.Filter{Field: model.FieldRoomNo, Value: roomNo, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: filters}
	params := gDto.QueryParams{SortBy: "created_at", SortDir: gDto.SortDirDesc}
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllMeal, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for meals")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get meals")

		return res, fmt.Errorf("failed to get meals: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save meals to cache")
		}
	}()

	return res, nil
}

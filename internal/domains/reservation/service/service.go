package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"math/rand/v2"

	"lodge/config"
	"lodge/infras/kafka"
	"lodge/infras/otel"
	"lodge/internal/domains/reservation/model"
	"lodge/internal/domains/reservation/model/dto"
	"lodge/internal/domains/reservation/repository"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	"lodge/shared/datecode"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetReservation    = "reservation:get"
	cacheGetAllReservation = "reservation:gets"

	codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength  = 6
)

// StatusChangedEvent is published to kafka whenever a reservation moves
// between lifecycle states, so housekeeping consumers can react.
type StatusChangedEvent struct {
	Code       string `json:"code"`
	SeqNo      int    `json:"seq_no"`
	RoomNo     string `json:"room_no"`
	PrevStatus string `json:"prev_status"`
	NewStatus  string `json:"new_status"`
	ChangedBy  string `json:"changed_by"`
	ChangedAt  string `json:"changed_at"`
}

type Reservation interface {
	ListByDate(ctx context.Context, ymd string) (dto.GetReservationsResponse, error)
	ListByMonth(ctx context.Context, ym, status string) (dto.GetReservationsResponse, error)
	Arrivals(ctx context.Context, ymd string) (dto.GetReservationsResponse, error)
	Departures(ctx context.Context, ymd string) (dto.GetReservationsResponse, error)
	Get(ctx context.Context, code string, seqNo int) (dto.ReservationResponse, error)
	GetAllByCode(ctx context.Context, code string) (dto.GetReservationsResponse, error)
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	UpdateStatus(ctx context.Context, code string, seqNo int, req dto.UpdateStatusRequest) error
	UpdateMemo(ctx context.Context, code string, seqNo int, req dto.UpdateMemoRequest) error
}

type serviceImpl struct {
	repo  repository.Reservation
	cfg   *config.Config
	cache cache.RedisCache
	kafka kafka.Client
	otel  otel.Otel
}

func New(repo repository.Reservation, cfg *config.Config, cache cache.RedisCache, kafkaClient kafka.Client, otel otel.Otel) Reservation {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		kafka: kafkaClient,
		otel:  otel,
	}
}

// filterByKey matches the composite key. Identifier-only lookups must use
// filterByCode instead, a code alone does not identify a single row.
func filterByKey(code string, seqNo int) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldCode, Value: code, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldSeqNo, Value: seqNo, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}
}

func filterByCode(code string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldCode, Value: code, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}
}

func filterByStay(ymd string, statuses []string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.FilterGroup{
				Operator: gDto.FilterGroupOperatorOr,
				Filters: []any{
					gDto.Filter{ArgName: "in_ymd", Field: model.FieldCheckInYMD, Value: ymd, Operator: gDto.FilterOperatorEq, Table: model.TableName},
					gDto.Filter{ArgName: "out_ymd", Field: model.FieldCheckOutYMD, Value: ymd, Operator: gDto.FilterOperatorEq, Table: model.TableName},
				},
			},
			gDto.Filter{Field: model.FieldStatus, Value: statuses, Operator: gDto.FilterOperatorIn, Table: model.TableName},
		},
	}
}

func (s *serviceImpl) ListByDate(ctx context.Context, ymd string) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListByDate")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !datecode.ValidYMD(ymd) {
		return res, failure.BadRequestFromString("date must be formatted as YYYYMMDD") // nolint:wrapcheck
	}

	params := gDto.QueryParams{SortBy: model.FieldCheckInYMD, SortDir: gDto.SortDirAsc}
	filter := filterByStay(ymd, model.AllStatuses)

	return s.listWithCache(ctx, params, filter)
}

func (s *serviceImpl) ListByMonth(ctx context.Context, ym, status string) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListByMonth")
	defer scope.End()
	defer scope.TraceIfError(err)

	if len(ym) != 6 || !datecode.ValidYMD(ym+"01") {
		return res, failure.BadRequestFromString("month must be formatted as YYYYMM") // nolint:wrapcheck
	}

	if status != "" && !model.ValidStatus(status) {
		return res, failure.BadRequestFromString(fmt.Sprintf("unknown reservation status: %s", status)) // nolint:wrapcheck
	}

	filters := []any{
		gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{ArgName: "in_ym", Field: model.FieldCheckInYMD, Value: ym, Operator: gDto.FilterOperatorPrefix, Table: model.TableName},
				gDto.Filter{ArgName: "out_ym", Field: model.FieldCheckOutYMD, Value: ym, Operator: gDto.FilterOperatorPrefix, Table: model.TableName},
			},
		},
	}
	if status != "" {
		filters = append(filters, gDto.Filter{Field: model.FieldStatus, Value: status, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	params := gDto.QueryParams{SortBy: model.FieldCheckInYMD, SortDir: gDto.SortDirAsc}

	return s.listWithCache(ctx, params, gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: filters})
}

func (s *serviceImpl) Arrivals(ctx context.Context, ymd string) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Arrivals")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !datecode.ValidYMD(ymd) {
		return res, failure.BadRequestFromString("date must be formatted as YYYYMMDD") // nolint:wrapcheck
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldCheckInYMD, Value: ymd, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldStatus, Value: model.ActiveStatuses, Operator: gDto.FilterOperatorIn, Table: model.TableName},
		},
	}
	params := gDto.QueryParams{SortBy: model.FieldCheckInYMD, SortDir: gDto.SortDirAsc}

	return s.listWithCache(ctx, params, filter)
}

func (s *serviceImpl) Departures(ctx context.Context, ymd string) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Departures")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !datecode.ValidYMD(ymd) {
		return res, failure.BadRequestFromString("date must be formatted as YYYYMMDD") // nolint:wrapcheck
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldCheckOutYMD, Value: ymd, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldStatus, Value: model.AllStatuses, Operator: gDto.FilterOperatorIn, Table: model.TableName},
		},
	}
	params := gDto.QueryParams{SortBy: model.FieldCheckInYMD, SortDir: gDto.SortDirAsc}

	return s.listWithCache(ctx, params, filter)
}

func (s *serviceImpl) listWithCache(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReservation, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, failure.WriteError(fmt.Errorf("failed to get reservations: %w", err)) // nolint:wrapcheck
	}

	res.FromModels(models, len(models), params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, code string, seqNo int) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetReservation, code, fmt.Sprintf("%d", seqNo))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation")

		return res, nil
	}

	reservation, err := s.repo.Get(ctx, filterByKey(code, seqNo))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.Code == constant.Empty {
		return res, failure.NotFound("reservation") // nolint:wrapcheck
	}

	res.FromModel(reservation)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation to cache")
		}
	}()

	return res, nil
}

// GetAllByCode returns every row carrying the code. Codes recycle across
// months, so the result is a set rather than a single reservation.
func (s *serviceImpl) GetAllByCode(ctx context.Context, code string) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllByCode")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{SortBy: model.FieldSeqNo, SortDir: gDto.SortDirDesc}

	models, err := s.repo.GetAll(ctx, params, filterByCode(code))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations by code")

		return res, fmt.Errorf("failed to get reservations by code: %w", err)
	}

	res.FromModels(models, len(models), params.Limit)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !datecode.ValidYMD(req.CheckInYMD) || !datecode.ValidYMD(req.CheckOutYMD) {
		return res, failure.BadRequestFromString("dates must be formatted as YYYYMMDD") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	reservation := req.ToModel(user)

	// Fixed-width digit strings compare correctly as text.
	checkIn := reservation.CheckInYMD + reservation.CheckInHHMM
	checkOut := reservation.CheckOutYMD + reservation.CheckOutHHMM

	if checkOut < checkIn {
		return res, failure.BadRequestFromString("check-out must not be before check-in") // nolint:wrapcheck
	}

	reservation.SeqNo = datecode.SeqNo(timezone.Now())

	reservation.Code, err = s.generateCode(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate reservation code")

		return res, fmt.Errorf("failed to generate reservation code: %w", err)
	}

	if err = s.repo.Insert(ctx, reservation); err != nil {
		log.Error().Err(err).Msg("failed to create reservation")

		return res, failure.WriteError(fmt.Errorf("failed to create reservation: %w", err)) // nolint:wrapcheck
	}

	res.FromModel(reservation)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
	}()

	return res, nil
}

// generateCode draws random 6-char codes and re-draws on collision, up to
// the configured attempt cap. Exhaustion is surfaced as an error instead of
// silently reusing a taken code.
func (s *serviceImpl) generateCode(ctx context.Context) (string, error) {
	attempts := s.cfg.App.Reservation.CodeAttempts
	if attempts <= 0 {
		attempts = 1
	}

	for range attempts {
		code := randomCode()

		exist, err := s.repo.Exist(ctx, filterByCode(code))
		if err != nil {
			return "", fmt.Errorf("failed to check code collision: %w", err)
		}

		if !exist {
			return code, nil
		}
	}

	return "", failure.Conflict("could not allocate a unique reservation code") // nolint:wrapcheck
}

func randomCode() string {
	buf := make([]byte, codeLength)
	for i := range buf {
		buf[i] = codeCharset[rand.IntN(len(codeCharset))]
	}

	return string(buf)
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, code string, seqNo int, req dto.UpdateStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !model.ValidStatus(req.Status) {
		return failure.BadRequestFromString(fmt.Sprintf("unknown reservation status: %s", req.Status)) // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := filterByKey(code, seqNo)

	reservation, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.Code == constant.Empty {
		return failure.NotFound("reservation") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update reservation status")

		return failure.WriteError(fmt.Errorf("failed to update reservation status: %w", err)) // nolint:wrapcheck
	}

	s.publishStatusChange(ctx, reservation, req.Status, user)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetReservation, code, fmt.Sprintf("%d", seqNo))); err != nil {
			log.Error().Err(err).Msg("failed to delete reservation from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
	}()

	return nil
}

// publishStatusChange is fire and forget, a broker outage must not fail the
// update that already committed.
func (s *serviceImpl) publishStatusChange(ctx context.Context, prev model.Reservation, newStatus, user string) {
	event := StatusChangedEvent{
		Code:       prev.Code,
		SeqNo:      prev.SeqNo,
		RoomNo:     prev.RoomNo,
		PrevStatus: prev.Status,
		NewStatus:  newStatus,
		ChangedBy:  user,
		ChangedAt:  datecode.TodayYMD() + datecode.NowHHMM(),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		msg := kafka.Message{Key: fmt.Sprintf("%s:%d", prev.Code, prev.SeqNo), Value: event}
		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.ReservationStatus, msg); err != nil {
			log.Error().Err(err).Msg("failed to publish reservation status event")
		}
	}()
}

func (s *serviceImpl) UpdateMemo(ctx context.Context, code string, seqNo int, req dto.UpdateMemoRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateMemo")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := filterByKey(code, seqNo)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if reservation exists")

		return fmt.Errorf("failed to check if reservation exists: %w", err)
	}

	if !exist {
		return failure.NotFound("reservation") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update reservation memo")

		return failure.WriteError(fmt.Errorf("failed to update reservation memo: %w", err)) // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetReservation, code, fmt.Sprintf("%d", seqNo))); err != nil {
			log.Error().Err(err).Msg("failed to delete reservation from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
	}()

	return nil
}

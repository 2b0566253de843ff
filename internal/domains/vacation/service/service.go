package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/internal/domains/vacation/model"
	"lodge/internal/domains/vacation/model/dto"
	"lodge/internal/domains/vacation/repository"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	"lodge/shared/datecode"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"

	"github.com/rs/zerolog/log"
)

const cacheGetAllVacation = "vacation:gets"

type Vacation interface {
	Create(ctx context.Context, req dto.CreateVacationRequest) (dto.VacationResponse, error)
	List(ctx context.Context) (dto.GetVacationsResponse, error)
	Decide(ctx context.Context, id string, req dto.DecideVacationRequest) error
}

type serviceImpl struct {
	repo  repository.Vacation
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Vacation, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Vacation {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateVacationRequest) (res dto.VacationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	requester, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	if requester == constant.Empty {
		return res, failure.Unauthorized("requester email missing from session") // nolint:wrapcheck
	}

	vacation := req.ToModel(requester)

	if err = s.repo.Insert(ctx, vacation); err != nil {
		log.Error().Err(err).Msg("failed to create vacation request")

		return res, failure.WriteError(fmt.Errorf("failed to create vacation request: %w", err)) // nolint:wrapcheck
	}

	res.FromModel(vacation)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllVacation)
	}()

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context) (res dto.GetVacationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldRequestCd, Value: model.RequestCdVacation, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}
	params := gDto.QueryParams{SortBy: model.FieldRequestYMD, SortDir: gDto.SortDirDesc}
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllVacation, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for vacation requests")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get vacation requests")

		return res, fmt.Errorf("failed to get vacation requests: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save vacation requests to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Decide(ctx context.Context, id string, req dto.DecideVacationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Decide")
	defer scope.End()
	defer scope.TraceIfError(err)

	approver, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	if approver == constant.Empty {
		return failure.Unauthorized("approver email missing from session") // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	vacation, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get vacation request")

		return fmt.Errorf("failed to get vacation request: %w", err)
	}

	if vacation.ID == constant.Empty {
		return failure.NotFound("vacation request") // nolint:wrapcheck
	}

	if vacation.DecisionCd != model.DecisionPending {
		return failure.Conflict("vacation request has already been decided") // nolint:wrapcheck
	}

	decision := model.DecisionRejected
	if req.Approve {
		decision = model.DecisionApproved
	}

	update := dto.VacationDecisionUpdate{
		ApproverEmail: approver,
		DecisionYMD:   datecode.TodayYMD(),
		DecisionCd:    decision,
		DecisionDesc:  req.DecisionDesc,
	}
	updatedFields := shared.TransformFields(update, approver)

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to decide vacation request")

		return failure.WriteError(fmt.Errorf("failed to decide vacation request: %w", err)) // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllVacation)
	}()

	return nil
}

//go:build wireinject
// +build wireinject

package di

import (
	"lodge/config"
	"lodge/infras/jwt"
	"lodge/infras/kafka"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/infras/redis"
	"lodge/internal/workers/housekeeping"
	"lodge/permissions"
	"lodge/shared/cache"
	"lodge/transport/http"
	"lodge/transport/http/middleware"
	"lodge/transport/http/router"

	"github.com/google/wire"

	adminRepository "lodge/internal/domains/admin/repository"
	authService "lodge/internal/domains/auth/service"
	mealRepository "lodge/internal/domains/meal/repository"
	mealService "lodge/internal/domains/meal/service"
	reservationRepository "lodge/internal/domains/reservation/repository"
	reservationService "lodge/internal/domains/reservation/service"
	roomRepository "lodge/internal/domains/room/repository"
	roomService "lodge/internal/domains/room/service"
	vacationRepository "lodge/internal/domains/vacation/repository"
	vacationService "lodge/internal/domains/vacation/service"

	authHandler "lodge/internal/handlers/auth"
	mealHandler "lodge/internal/handlers/meal"
	reservationHandler "lodge/internal/handlers/reservation"
	roomHandler "lodge/internal/handlers/room"
	vacationHandler "lodge/internal/handlers/vacation"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var mealDomain = wire.NewSet(
	mealRepository.New,
	mealService.New,
)

var vacationDomain = wire.NewSet(
	vacationRepository.New,
	vacationService.New,
)

var authDomain = wire.NewSet(
	adminRepository.New,
	authService.New,
)

var domains = wire.NewSet(
	reservationDomain,
	roomDomain,
	mealDomain,
	vacationDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	reservationHandler.New,
	roomHandler.New,
	mealHandler.New,
	vacationHandler.New,
	authHandler.New,
	router.New,
)

var workers = wire.NewSet(
	housekeeping.New,
)

func InitializeService() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		workers,
		http.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}

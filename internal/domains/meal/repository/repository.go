package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/meal/model"
	gDto "lodge/shared/dto"
	gRepo "lodge/shared/repository"
)

type Meal interface {
	Upsert(ctx context.Context, model model.Meal, conflictColumns, updateColumns []string) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Meal, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Meal, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Meal]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Meal {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Meal](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

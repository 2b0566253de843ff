package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/vacation/model"
	gDto "lodge/shared/dto"
	gRepo "lodge/shared/repository"
)

type Vacation interface {
	Insert(ctx context.Context, model model.Vacation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Vacation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Vacation, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Vacation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Vacation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Vacation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

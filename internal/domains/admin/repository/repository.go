package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/admin/model"
	gDto "lodge/shared/dto"
	gRepo "lodge/shared/repository"
)

type Administrator interface {
	Insert(ctx context.Context, model model.Administrator) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Administrator, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Administrator]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Administrator {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Administrator](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

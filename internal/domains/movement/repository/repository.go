package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/jmoiron/sqlx"

	"agendalab/infras/otel"
	"agendalab/infras/postgres"
	"agendalab/internal/domains/movement/model"
	gDto "agendalab/shared/dto"
	gRepo "agendalab/shared/repository"
)

type Movement interface {
	Insert(ctx context.Context, model model.Movement) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Movement) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Movement, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Movement, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Movement]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Movement {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Movement](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

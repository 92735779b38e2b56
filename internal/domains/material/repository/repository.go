package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"agendalab/infras/otel"
	"agendalab/infras/postgres"
	"agendalab/internal/domains/material/model"
	movementModel "agendalab/internal/domains/movement/model"
	movementRepo "agendalab/internal/domains/movement/repository"
	"agendalab/shared/constant"
	gDto "agendalab/shared/dto"
	gRepo "agendalab/shared/repository"
)

type Material interface {
	Insert(ctx context.Context, model model.Material) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Material, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Material, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	Move(ctx context.Context, req map[string]any, filter gDto.FilterGroup, movement movementModel.Movement) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Material]
	db        *postgres.Connection
	movements movementRepo.Movement
	otel      otel.Otel
}

func New(db *postgres.Connection, movements movementRepo.Movement, otel otel.Otel) Material {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Material](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		movements:  movements,
		otel:       otel,
	}
}

// Move applies a stock change and records the movement row in a single
// transaction, so the stock level and the movement history cannot drift.
func (repo *repositoryImpl) Move(ctx context.Context, req map[string]any, filter gDto.FilterGroup, movement movementModel.Movement) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Move", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback movement transaction")
			}
		}
	}()

	if err = repo.UpdateTx(ctx, tx, req, filter); err != nil {
		return fmt.Errorf("failed to update material stock: %w", err)
	}

	if err = repo.movements.InsertTx(ctx, tx, movement); err != nil {
		return fmt.Errorf("failed to insert movement: %w", err)
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit movement transaction")

		return fmt.Errorf("failed to commit movement transaction: %w", err)
	}

	return nil
}

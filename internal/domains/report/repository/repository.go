package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"agendalab/infras/otel"
	"agendalab/infras/postgres"
	bookingModel "agendalab/internal/domains/booking/model"
	"agendalab/internal/domains/report/model"
	"agendalab/shared/constant"
	"agendalab/shared/logger"
)

type Report interface {
	MostActiveProfessor(ctx context.Context, since time.Time) (model.ProfessorActivity, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Report {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) MostActiveProfessor(ctx context.Context, since time.Time) (res model.ProfessorActivity, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.MostActiveProfessor", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT professor, COUNT(*) AS total FROM %s WHERE status != :status AND created_at >= :since GROUP BY professor ORDER BY total DESC LIMIT 1",
		bookingModel.TableName,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return res, fmt.Errorf("failed to prepare most active professor query: %w", err)
	}
	defer prepare.Close()

	args := map[string]any{
		"status": constant.BookingStatusCancelled,
		"since":  since,
	}

	err = prepare.GetContext(ctx, &res, args)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ProfessorActivity{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return res, fmt.Errorf("failed to get most active professor: %w", err)
	}

	return res, nil
}

package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"lumen/infras/otel"
	"lumen/infras/postgres"
	"lumen/internal/domains/maplocation/model"
	"lumen/shared/constant"
	gDto "lumen/shared/dto"
	"lumen/shared/failure"
	"lumen/shared/logger"
	gRepo "lumen/shared/repository"
)

type MapLocation interface {
	InsertReturningID(ctx context.Context, model model.MapLocation) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.MapLocation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.MapLocation, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	InsertBulk(ctx context.Context, models []model.MapLocation) error
	Summarize(ctx context.Context, filter gDto.FilterGroup) ([]model.Summary, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.MapLocation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) MapLocation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.MapLocation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Summarize counts locations and sums their value per status and service type.
func (r *repositoryImpl) Summarize(ctx context.Context, filter gDto.FilterGroup) ([]model.Summary, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".map_location.Summarize")
	defer scope.End()

	where, args := r.BuildWhereClause(ctx, filter)

	query := fmt.Sprintf(
		"SELECT %[2]s, %[3]s, COUNT(%[4]s) AS total, COALESCE(SUM(%[5]s), 0)::BIGINT AS value FROM %[1]s %[6]s GROUP BY %[2]s, %[3]s ORDER BY %[2]s, %[3]s",
		model.TableName, model.FieldStatus, model.FieldServiceType, model.FieldID, model.FieldValue, where,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	summaries := []model.Summary{}

	prepare, err := r.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare summary (%s): %w", model.EntityName, failure.StorageUnavailable(err))
	}
	defer prepare.Close()

	if err = prepare.SelectContext(ctx, &summaries, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to summarize (%s): %w", model.EntityName, failure.StorageUnavailable(err))
	}

	return summaries, nil
}

package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"lumen/infras/otel"
	"lumen/infras/postgres"
	"lumen/internal/domains/booking/model"
	"lumen/shared/constant"
	gDto "lumen/shared/dto"
	"lumen/shared/failure"
	gRepo "lumen/shared/repository"
	"net/http"

	"github.com/rs/zerolog/log"
)

const maxReferenceAttempts = 3

type Booking interface {
	InsertReturningID(ctx context.Context, model model.Booking) (int64, error)
	InsertWithReference(ctx context.Context, booking model.Booking, next func() string) (model.Booking, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

// InsertWithReference inserts booking and returns it with its id. When the unique index
// rejects the reference, next supplies another one, up to maxReferenceAttempts inserts.
func (r *repositoryImpl) InsertWithReference(ctx context.Context, booking model.Booking, next func() string) (model.Booking, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.InsertWithReference")
	defer scope.End()

	var err error

	for attempt := 1; attempt <= maxReferenceAttempts; attempt++ {
		booking.ID, err = r.InsertReturningID(ctx, booking)
		if err == nil || failure.GetCode(err) != http.StatusConflict {
			break
		}

		log.Warn().Int("attempt", attempt).Str("reference", booking.BookingReference).Msg("booking reference taken")
		scope.AddEvent("booking reference collision")

		if attempt < maxReferenceAttempts {
			booking.BookingReference = next()
		}
	}

	scope.TraceIfError(err)

	return booking, err // nolint:wrapcheck
}

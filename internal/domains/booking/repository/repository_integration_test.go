//go:build integration

package repository_test

import (
	"context"
	"lumen/infras/otel/mocks"
	"lumen/internal/domains/booking/model"
	"lumen/internal/domains/booking/model/dto"
	"lumen/internal/domains/booking/repository"
	"lumen/shared"
	"lumen/shared/failure"
	"lumen/shared/testhelper"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBooking(t *testing.T, now time.Time) model.Booking {
	t.Helper()

	req := dto.CreateBookingRequest{
		Name:          "Sarah Johnson",
		Email:         "sarah@example.com",
		Phone:         "555-0100",
		Address:       "123 Main St, Anytown, ST",
		Service:       "Premium Package",
		PreferredDate: "2024-12-01",
		PreferredTime: "18:00",
	}
	req.SetDefaults()

	booking, err := req.ToModel(now)
	require.NoError(t, err)

	return booking
}

func TestBookingRepository_Postgres(t *testing.T) {
	conn, _ := testhelper.Postgres(t)
	repo := repository.New(conn, mocks.NewOtel())
	ctx := context.Background()
	now := time.Date(2024, 11, 20, 12, 0, 0, 0, time.UTC)

	t.Run("ids increase strictly", func(t *testing.T) {
		var last int64

		for range 3 {
			id, err := repo.InsertReturningID(ctx, newBooking(t, now))
			require.NoError(t, err)
			assert.Greater(t, id, last)

			last = id
		}
	})

	t.Run("concurrent creates get distinct ids", func(t *testing.T) {
		const workers = 8

		var (
			wg  sync.WaitGroup
			mu  sync.Mutex
			ids = map[int64]bool{}
		)

		for range workers {
			booking := newBooking(t, now)

			wg.Add(1)

			go func() {
				defer wg.Done()

				id, err := repo.InsertReturningID(ctx, booking)
				assert.NoError(t, err)

				mu.Lock()
				ids[id] = true
				mu.Unlock()
			}()
		}

		wg.Wait()

		assert.Len(t, ids, workers)
	})

	t.Run("duplicate reference is a conflict", func(t *testing.T) {
		booking := newBooking(t, now)

		_, err := repo.InsertReturningID(ctx, booking)
		require.NoError(t, err)

		_, err = repo.InsertReturningID(ctx, booking)
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("taken reference is replaced", func(t *testing.T) {
		taken := newBooking(t, now)

		_, err := repo.InsertReturningID(ctx, taken)
		require.NoError(t, err)

		fresh := dto.NewBookingReference(now)

		booking, err := repo.InsertWithReference(ctx, taken, func() string { return fresh })
		require.NoError(t, err)
		assert.Equal(t, fresh, booking.BookingReference)
		assert.NotZero(t, booking.ID)
	})

	t.Run("gives up after repeated collisions", func(t *testing.T) {
		taken := newBooking(t, now)

		_, err := repo.InsertReturningID(ctx, taken)
		require.NoError(t, err)

		calls := 0

		_, err = repo.InsertWithReference(ctx, taken, func() string {
			calls++

			return taken.BookingReference
		})
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.Equal(t, 2, calls)
	})

	t.Run("stored record reads back unchanged", func(t *testing.T) {
		booking := newBooking(t, now)

		id, err := repo.InsertReturningID(ctx, booking)
		require.NoError(t, err)

		got, err := repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
		require.NoError(t, err)

		assert.Equal(t, booking.BookingReference, got.BookingReference)
		assert.Equal(t, model.StatusPending, got.Status)
		assert.Equal(t, "2024-12-01", got.PreferredDate.Format(time.DateOnly))
		assert.Nil(t, got.TotalPrice)
	})
}

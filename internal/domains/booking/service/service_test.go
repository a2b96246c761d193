package service_test

import (
	"context"
	"errors"
	"lumen/config"
	"lumen/infras/otel/mocks"
	bookingMocks "lumen/internal/domains/booking/mocks"
	"lumen/internal/domains/booking/model"
	"lumen/internal/domains/booking/model/dto"
	"lumen/internal/domains/booking/service"
	"lumen/shared/cache"
	cacheMocks "lumen/shared/cache/mocks"
	gDto "lumen/shared/dto"
	"lumen/shared/failure"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDatabase = errors.New("database error")

func newService(t *testing.T) (service.Booking, *bookingMocks.MockBooking, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func createRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		Name:          "Sarah Johnson",
		Email:         "sarah@example.com",
		Phone:         "555-0100",
		Address:       "123 Main St, Anytown, ST",
		Service:       "Premium Package",
		PreferredDate: "2024-12-01",
		PreferredTime: "18:00",
		Duration:      model.DefaultDuration,
	}
}

func TestBookingService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func(repo *bookingMocks.MockBooking)
		wantCode  int
		wantID    int64
	}{
		{
			name: "successful creation",
			req:  createRequest(),
			setupMock: func(repo *bookingMocks.MockBooking) {
				repo.EXPECT().
					InsertWithReference(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking, next func() string) (model.Booking, error) {
						assert.Equal(t, model.StatusPending, booking.Status)
						assert.Regexp(t, `^LL-\d{8}-[0-9A-F]{8}$`, booking.BookingReference)
						assert.NotEqual(t, booking.BookingReference, next())

						booking.ID = 42

						return booking, nil
					})
			},
			wantID: 42,
		},
		{
			name: "storage unavailable",
			req:  createRequest(),
			setupMock: func(repo *bookingMocks.MockBooking) {
				repo.EXPECT().
					InsertWithReference(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Booking{}, failure.StorageUnavailable(errDatabase))
			},
			wantCode: http.StatusServiceUnavailable,
		},
		{
			name: "references exhausted",
			req:  createRequest(),
			setupMock: func(repo *bookingMocks.MockBooking) {
				repo.EXPECT().
					InsertWithReference(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Booking{}, failure.Conflict("booking already exists"))
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "unparseable date",
			req: func() dto.CreateBookingRequest {
				req := createRequest()
				req.PreferredDate = "tomorrow"

				return req
			}(),
			setupMock: func(_ *bookingMocks.MockBooking) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)
			tt.setupMock(repo)

			res, err := svc.Create(context.Background(), tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, res.ID)
			assert.Equal(t, model.StatusPending, res.Status)
			assert.Equal(t, "2024-12-01", res.PreferredDate)
		})
	}
}

func TestBookingService_GetAll(t *testing.T) {
	params := gDto.QueryParams{Page: 1, Limit: 10}

	t.Run("cache miss loads from repository", func(t *testing.T) {
		svc, repo, mockCache := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).Times(2)
		repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(11, nil)
		repo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.Booking{{ID: 1}, {ID: 2}}, nil)

		res, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, 11, res.TotalData)
		assert.Equal(t, 2, res.TotalPage)
		assert.Len(t, res.Bookings, 2)
	})

	t.Run("cache hit skips repository", func(t *testing.T) {
		svc, _, mockCache := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})
		require.NoError(t, err)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, repo, mockCache := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).Times(2)
		repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
		repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, failure.StorageUnavailable(errDatabase))

		_, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

		require.Error(t, err)
		assert.True(t, failure.IsStorageUnavailable(err))
	})
}

func TestBookingService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *bookingMocks.MockBooking)
		wantCode  int
	}{
		{
			name: "found",
			setupMock: func(repo *bookingMocks.MockBooking) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{ID: 5, Name: "Sarah"}, nil)
			},
		},
		{
			name: "not found",
			setupMock: func(repo *bookingMocks.MockBooking) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "storage unavailable",
			setupMock: func(repo *bookingMocks.MockBooking) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, failure.StorageUnavailable(errDatabase))
			},
			wantCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, mockCache := newService(t)

			mockCache.EXPECT().Get(gomock.Any(), "booking:get:5", gomock.Any()).Return(cache.Nil)
			tt.setupMock(repo)

			res, err := svc.Get(context.Background(), 5)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(5), res.ID)
		})
	}
}

func TestBookingService_Update(t *testing.T) {
	confirmed := model.StatusConfirmed

	tests := []struct {
		name      string
		req       dto.UpdateBookingRequest
		setupMock func(repo *bookingMocks.MockBooking)
		wantCode  int
	}{
		{
			name: "successful update",
			req:  dto.UpdateBookingRequest{Status: &confirmed},
			setupMock: func(repo *bookingMocks.MockBooking) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, confirmed, fields[model.FieldStatus])
						assert.Contains(t, fields, "modified_date")

						return nil
					})
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{ID: 9, Status: confirmed}, nil)
			},
		},
		{
			name:      "empty patch",
			req:       dto.UpdateBookingRequest{},
			setupMock: func(_ *bookingMocks.MockBooking) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "not found",
			req:  dto.UpdateBookingRequest{Status: &confirmed},
			setupMock: func(repo *bookingMocks.MockBooking) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "update fails",
			req:  dto.UpdateBookingRequest{Status: &confirmed},
			setupMock: func(repo *bookingMocks.MockBooking) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(failure.StorageUnavailable(errDatabase))
			},
			wantCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)
			tt.setupMock(repo)

			res, err := svc.Update(context.Background(), tt.req, 9)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, confirmed, res.Status)
		})
	}
}

func TestBookingService_Delete(t *testing.T) {
	t.Run("deletes existing booking", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Delete(context.Background(), 3)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("missing booking", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Delete(context.Background(), 3)

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

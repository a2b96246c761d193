package service_test

import (
	"context"
	"errors"
	"lumen/config"
	"lumen/infras/otel/mocks"
	"lumen/infras/s3"
	s3Mocks "lumen/infras/s3/mocks"
	mapLocationMocks "lumen/internal/domains/maplocation/mocks"
	"lumen/internal/domains/maplocation/model"
	"lumen/internal/domains/maplocation/model/dto"
	"lumen/internal/domains/maplocation/service"
	"lumen/shared/cache"
	cacheMocks "lumen/shared/cache/mocks"
	"lumen/shared/constant"
	gDto "lumen/shared/dto"
	"lumen/shared/failure"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDatabase = errors.New("database error")

type fixture struct {
	svc     service.MapLocation
	repo    *mapLocationMocks.MockMapLocation
	cache   *cacheMocks.MockRedisCache
	storage *s3Mocks.MockS3
}

func newService(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:    mapLocationMocks.NewMockMapLocation(ctrl),
		cache:   cacheMocks.NewMockRedisCache(ctrl),
		storage: s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(f.repo, f.storage, cfg, f.cache, mocks.NewOtel())

	return f
}

func ptr[T any](v T) *T {
	return &v
}

func createRequest() dto.CreateMapLocationRequest {
	return dto.CreateMapLocationRequest{
		Name:         "Johnson Residence",
		Address:      "123 Broadway, New York, NY",
		CustomerName: "Sarah Johnson",
		ServiceType:  "Premium Package",
		Status:       model.StatusCompleted,
		Date:         "2024-11-15",
		Value:        2500,
		Latitude:     ptr(40.7128),
		Longitude:    ptr(-74.0060),
	}
}

func sampleLocation(id int64) model.MapLocation {
	return model.MapLocation{
		ID:           id,
		Name:         "Johnson Residence",
		Address:      "123 Broadway, New York, NY",
		CustomerName: "Sarah Johnson",
		ServiceType:  "Premium Package",
		Status:       model.StatusCompleted,
		Date:         time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC),
		Value:        2500,
		Latitude:     40.7128,
		Longitude:    -74.0060,
	}
}

func TestMapLocationService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateMapLocationRequest
		setupMock func(repo *mapLocationMocks.MockMapLocation)
		wantCode  int
	}{
		{
			name: "successful creation",
			req:  createRequest(),
			setupMock: func(repo *mapLocationMocks.MockMapLocation) {
				repo.EXPECT().
					InsertReturningID(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, location model.MapLocation) (int64, error) {
						assert.InDelta(t, 40.7128, location.Latitude, 0)
						assert.InDelta(t, -74.0060, location.Longitude, 0)
						assert.False(t, location.CreatedDate.IsZero())

						return 7, nil
					})
			},
		},
		{
			name: "storage unavailable",
			req:  createRequest(),
			setupMock: func(repo *mapLocationMocks.MockMapLocation) {
				repo.EXPECT().
					InsertReturningID(gomock.Any(), gomock.Any()).
					Return(int64(0), failure.StorageUnavailable(errDatabase))
			},
			wantCode: http.StatusServiceUnavailable,
		},
		{
			name: "unparseable date",
			req: func() dto.CreateMapLocationRequest {
				req := createRequest()
				req.Date = "15/11/2024"

				return req
			}(),
			setupMock: func(_ *mapLocationMocks.MockMapLocation) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newService(t)
			tt.setupMock(f.repo)

			res, err := f.svc.Create(context.Background(), tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(7), res.ID)
			assert.Equal(t, "Premium Package", res.ServiceType)
			assert.Equal(t, model.StatusCompleted, res.Status)
			assert.Equal(t, "2024-11-15T00:00:00Z", res.Date)
			assert.InDelta(t, 40.7128, res.Latitude, 0)
			assert.InDelta(t, -74.0060, res.Longitude, 0)
		})
	}
}

func TestMapLocationService_GetAll(t *testing.T) {
	params := gDto.QueryParams{Page: 1, Limit: 10}

	t.Run("cache miss loads from repository", func(t *testing.T) {
		f := newService(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		f.repo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.MapLocation{sampleLocation(1), sampleLocation(2)}, nil)

		res, err := f.svc.GetAll(context.Background(), params, gDto.FilterGroup{})

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		require.Len(t, res, 2)
		assert.Equal(t, int64(2), res[1].ID)
	})

	t.Run("cache hit skips repository", func(t *testing.T) {
		f := newService(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.svc.GetAll(context.Background(), params, gDto.FilterGroup{})

		require.NoError(t, err)
	})

	t.Run("repository error", func(t *testing.T) {
		f := newService(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		f.repo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return(nil, failure.StorageUnavailable(errDatabase))

		_, err := f.svc.GetAll(context.Background(), params, gDto.FilterGroup{})

		require.Error(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, failure.GetCode(err))
	})
}

func TestMapLocationService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newService(t)

		f.cache.EXPECT().Get(gomock.Any(), "maplocation:get:3", gomock.Any()).Return(cache.Nil)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(sampleLocation(3), nil)

		res, err := f.svc.Get(context.Background(), 3)

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, int64(3), res.ID)
	})

	t.Run("not found", func(t *testing.T) {
		f := newService(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.MapLocation{}, nil)

		_, err := f.svc.Get(context.Background(), 99)

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestMapLocationService_Update(t *testing.T) {
	t.Run("empty update rejected", func(t *testing.T) {
		f := newService(t)

		_, err := f.svc.Update(context.Background(), dto.UpdateMapLocationRequest{}, 1)

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("date is stored as a timestamp", func(t *testing.T) {
		f := newService(t)

		updated := sampleLocation(1)
		updated.Status = model.StatusScheduled

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, model.StatusScheduled, fields[model.FieldStatus])
				assert.Equal(t, time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), fields[model.FieldDate])
				assert.Contains(t, fields, constant.FieldModifiedDate)

				return nil
			})
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(updated, nil)

		res, err := f.svc.Update(context.Background(), dto.UpdateMapLocationRequest{
			Status: ptr(model.StatusScheduled),
			Date:   ptr("2025-01-02"),
		}, 1)

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, model.StatusScheduled, res.Status)
	})

	t.Run("missing location", func(t *testing.T) {
		f := newService(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.svc.Update(context.Background(), dto.UpdateMapLocationRequest{Value: ptr(int64(10))}, 5)

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestMapLocationService_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		f := newService(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := f.svc.Delete(context.Background(), 4)

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
	})

	t.Run("missing", func(t *testing.T) {
		f := newService(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.Delete(context.Background(), 4)

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestMapLocationService_GeoJSON(t *testing.T) {
	f := newService(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.MapLocation{sampleLocation(1)}, nil)

	fc, err := f.svc.GeoJSON(context.Background(), gDto.FilterGroup{})

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, model.ColorCompleted, fc.Features[0].Properties["color"])
}

func TestMapLocationService_Stats(t *testing.T) {
	f := newService(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
	f.repo.EXPECT().Summarize(gomock.Any(), gomock.Any()).Return([]model.Summary{
		{Status: model.StatusCompleted, ServiceType: "Premium Package", Total: 2, Value: 5000},
		{Status: model.StatusPending, ServiceType: "Basic Package", Total: 1, Value: 800},
	}, nil)

	res, err := f.svc.Stats(context.Background(), gDto.FilterGroup{})

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, int64(5800), res.TotalValue)
	assert.Equal(t, 0, res.ByStatus[model.StatusScheduled])
	assert.Equal(t, 2, res.ByServiceType["Premium Package"])
}

func TestMapLocationService_Export(t *testing.T) {
	t.Run("uploads snapshot and latest alias", func(t *testing.T) {
		f := newService(t)

		const url = "https://cdn.example.com/exports/map-locations.geojson"

		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.MapLocation{sampleLocation(1), sampleLocation(2)}, nil)
		f.storage.EXPECT().
			UploadBytes(gomock.Any(), "exports", gomock.Any(), constant.ContentTypeGeoJSON, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, fileName, _ string, data []byte) (string, error) {
				assert.True(t, strings.HasPrefix(fileName, "map-locations-"))
				assert.Contains(t, string(data), "FeatureCollection")

				return url, nil
			}).
			Times(2)
		f.storage.EXPECT().ObjectKeyFromURL(url).Return("exports/map-locations.geojson")

		res, err := f.svc.Export(context.Background())

		require.NoError(t, err)
		assert.Equal(t, url, res.URL)
		assert.Equal(t, "exports/map-locations.geojson", res.Key)
		assert.Equal(t, 2, res.Features)
	})

	t.Run("bucket not configured", func(t *testing.T) {
		f := newService(t)

		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.storage.EXPECT().
			UploadBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", s3.ErrBucketNotConfigured)

		_, err := f.svc.Export(context.Background())

		require.Error(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, failure.GetCode(err))
	})
}

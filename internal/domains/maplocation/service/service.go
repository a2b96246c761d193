package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"lumen/config"
	"lumen/infras/otel"
	"lumen/infras/s3"
	"lumen/internal/domains/maplocation/model"
	"lumen/internal/domains/maplocation/model/dto"
	"lumen/internal/domains/maplocation/repository"
	"lumen/shared"
	"lumen/shared/cache"
	"lumen/shared/constant"
	gDto "lumen/shared/dto"
	"lumen/shared/failure"
	"lumen/shared/validator"
	"time"

	"github.com/paulmach/orb/geojson"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetMapLocation     = "maplocation:get"
	cacheGetAllMapLocation  = "maplocation:gets"
	cacheGeoJSONMapLocation = "maplocation:geojson"
	cacheStatsMapLocation   = "maplocation:stats"

	exportDirectory   = "exports"
	exportFileLayout  = "map-locations-20060102T150405Z.geojson"
	exportFileLatest  = "map-locations-latest.geojson"
	otelAttrExportKey = "export_key"
)

type MapLocation interface {
	Create(ctx context.Context, req dto.CreateMapLocationRequest) (dto.MapLocationResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) ([]dto.MapLocationResponse, error)
	Get(ctx context.Context, id int64) (dto.MapLocationResponse, error)
	Update(ctx context.Context, req dto.UpdateMapLocationRequest, id int64) (dto.MapLocationResponse, error)
	Delete(ctx context.Context, id int64) error
	GeoJSON(ctx context.Context, filter gDto.FilterGroup) (*geojson.FeatureCollection, error)
	Stats(ctx context.Context, filter gDto.FilterGroup) (dto.StatsResponse, error)
	Export(ctx context.Context) (dto.ExportResponse, error)
}

type serviceImpl struct {
	repo    repository.MapLocation
	storage s3.S3
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
	now     func() time.Time
}

func New(repo repository.MapLocation, storage s3.S3, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) MapLocation {
	return &serviceImpl{
		repo:    repo,
		storage: storage,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
		now:     time.Now,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateMapLocationRequest) (res dto.MapLocationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".map_location.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	location, err := req.ToModel(s.now())
	if err != nil {
		log.Error().Err(err).Msg("failed to parse map location request")

		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	location.ID, err = s.repo.InsertReturningID(ctx, location)
	if err != nil {
		log.Error().Err(err).Msg("failed to create map location")

		return res, fmt.Errorf("failed to create map location: %w", err)
	}

	res.FromModel(location)

	go s.invalidate(context.WithoutCancel(ctx), 0)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res []dto.MapLocationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".map_location.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllMapLocation, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for map locations")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get map locations")

		return nil, fmt.Errorf("failed to get map locations: %w", err)
	}

	res = dto.FromModels(models)

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.MapLocationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".map_location.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetMapLocation, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for map location")

		return res, nil
	}

	location, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get map location")

		return res, fmt.Errorf("failed to get map location: %w", err)
	}

	if location.ID == 0 {
		return res, failure.NotFound("map location not found") // nolint:wrapcheck
	}

	res.FromModel(location)

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateMapLocationRequest, id int64) (res dto.MapLocationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".map_location.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	updatedFields := shared.TransformFields(req)
	if len(updatedFields) == 0 {
		return res, failure.EmptyUpdate() // nolint:wrapcheck
	}

	if req.Date != nil {
		date, parseErr := validator.ParseISODate(*req.Date)
		if parseErr != nil {
			return res, failure.BadRequest(parseErr) // nolint:wrapcheck
		}

		updatedFields[model.FieldDate] = date.UTC()
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if map location exists")

		return res, fmt.Errorf("failed to check if map location exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("map location not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update map location")

		return res, fmt.Errorf("failed to update map location: %w", err)
	}

	location, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to reload map location")

		return res, fmt.Errorf("failed to reload map location: %w", err)
	}

	if location.ID == 0 {
		return res, failure.NotFound("map location not found") // nolint:wrapcheck
	}

	res.FromModel(location)

	go s.invalidate(context.WithoutCancel(ctx), id)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".map_location.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if map location exists")

		return fmt.Errorf("failed to check if map location exists: %w", err)
	}

	if !exist {
		return failure.NotFound("map location not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete map location")

		return fmt.Errorf("failed to delete map location: %w", err)
	}

	go s.invalidate(context.WithoutCancel(ctx), id)

	return nil
}

func (s *serviceImpl) GeoJSON(ctx context.Context, filter gDto.FilterGroup) (res *geojson.FeatureCollection, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".map_location.GeoJSON")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGeoJSONMapLocation, gDto.QueryParams{}, filter)

	cached := geojson.NewFeatureCollection()
	if err = s.cache.Get(ctx, cacheKey, cached); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for map location geojson")

		return cached, nil
	}

	models, err := s.repo.GetAll(ctx, defaultOrdering(), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get map locations")

		return nil, fmt.Errorf("failed to get map locations: %w", err)
	}

	res = dto.ToFeatureCollection(models)

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Stats(ctx context.Context, filter gDto.FilterGroup) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".map_location.Stats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheStatsMapLocation, gDto.QueryParams{}, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for map location stats")

		return res, nil
	}

	summaries, err := s.repo.Summarize(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to summarize map locations")

		return res, fmt.Errorf("failed to summarize map locations: %w", err)
	}

	res.FromSummaries(summaries)

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

// Export uploads a snapshot of every location twice: a timestamped copy and the latest alias.
func (s *serviceImpl) Export(ctx context.Context) (res dto.ExportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".map_location.Export")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models, err := s.repo.GetAll(ctx, defaultOrdering(), gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get map locations for export")

		return res, fmt.Errorf("failed to get map locations: %w", err)
	}

	payload, err := dto.ToFeatureCollection(models).MarshalJSON()
	if err != nil {
		log.Error().Err(err).Msg("failed to encode map location export")

		return res, failure.InternalError(err) // nolint:wrapcheck
	}

	now := s.now().UTC()
	fileName := now.Format(exportFileLayout)

	url, err := s.storage.UploadBytes(ctx, exportDirectory, fileName, constant.ContentTypeGeoJSON, payload)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload map location export")

		if errors.Is(err, s3.ErrBucketNotConfigured) {
			return res, failure.StorageUnavailable(err) // nolint:wrapcheck
		}

		return res, fmt.Errorf("failed to upload map location export: %w", err)
	}

	if _, err = s.storage.UploadBytes(ctx, exportDirectory, exportFileLatest, constant.ContentTypeGeoJSON, payload); err != nil {
		log.Warn().Err(err).Msg("failed to refresh latest map location export")
	}

	res = dto.ExportResponse{
		URL:         url,
		Key:         s.storage.ObjectKeyFromURL(url),
		Features:    len(models),
		GeneratedAt: now.Format(constant.DateFormat),
	}

	scope.SetAttribute(otelAttrExportKey, res.Key)

	return res, nil
}

func (s *serviceImpl) saveCache(ctx context.Context, key string, value any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, key, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save map location cache")
		}
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context, id int64) {
	if id > 0 {
		if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetMapLocation, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete map location from cache")
		}
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllMapLocation)
	shared.InvalidateCaches(ctx, s.cache, cacheGeoJSONMapLocation)
	shared.InvalidateCaches(ctx, s.cache, cacheStatsMapLocation)
}

func defaultOrdering() gDto.QueryParams {
	return gDto.QueryParams{
		SortBy:  model.FieldID,
		SortDir: gDto.SortDirAsc,
	}
}

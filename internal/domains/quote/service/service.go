package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"lumen/config"
	"lumen/infras/otel"
	"lumen/internal/domains/quote/model"
	"lumen/internal/domains/quote/model/dto"
	"lumen/internal/domains/quote/repository"
	"lumen/shared"
	"lumen/shared/cache"
	"lumen/shared/constant"
	gDto "lumen/shared/dto"
	"lumen/shared/failure"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetQuote    = "quote:get"
	cacheGetAllQuote = "quote:gets"
	cacheCountQuote  = "quote:count"
)

type Quote interface {
	Create(ctx context.Context, req dto.CreateQuoteRequest) (dto.QuoteResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetQuotesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id int64) (dto.QuoteResponse, error)
	Update(ctx context.Context, req dto.UpdateQuoteRequest, id int64) (dto.QuoteResponse, error)
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo  repository.Quote
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	now   func() time.Time
}

func New(repo repository.Quote, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Quote {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		now:   time.Now,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateQuoteRequest) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".quote.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	quote := req.ToModel(s.now())

	quote.ID, err = s.repo.InsertReturningID(ctx, quote)
	if err != nil {
		log.Error().Err(err).Msg("failed to create quote")

		return res, fmt.Errorf("failed to create quote: %w", err)
	}

	res.FromModel(quote)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllQuote)
		shared.InvalidateCaches(c, s.cache, cacheCountQuote)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetQuotesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".quote.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllQuote, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for quotes")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count quotes")

		return res, fmt.Errorf("failed to count quotes: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get quotes")

		return res, fmt.Errorf("failed to get quotes: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save quotes to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".quote.Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountQuote, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for quote count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count quotes")

		return res, fmt.Errorf("failed to count quotes: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save quote count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".quote.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetQuote, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for quote")

		return res, nil
	}

	quote, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get quote")

		return res, fmt.Errorf("failed to get quote: %w", err)
	}

	if quote.ID == 0 {
		return res, failure.NotFound("quote not found") // nolint:wrapcheck
	}

	res.FromModel(quote)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save quote to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateQuoteRequest, id int64) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".quote.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	updatedFields := shared.TransformFields(req)
	if len(updatedFields) == 0 {
		return res, failure.EmptyUpdate() // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if quote exists")

		return res, fmt.Errorf("failed to check if quote exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("quote not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update quote")

		return res, fmt.Errorf("failed to update quote: %w", err)
	}

	quote, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to reload quote")

		return res, fmt.Errorf("failed to reload quote: %w", err)
	}

	if quote.ID == 0 {
		return res, failure.NotFound("quote not found") // nolint:wrapcheck
	}

	res.FromModel(quote)

	go s.invalidate(context.WithoutCancel(ctx), id)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".quote.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if quote exists")

		return fmt.Errorf("failed to check if quote exists: %w", err)
	}

	if !exist {
		return failure.NotFound("quote not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete quote")

		return fmt.Errorf("failed to delete quote: %w", err)
	}

	go s.invalidate(context.WithoutCancel(ctx), id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id int64) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetQuote, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete quote from cache")
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllQuote)
	shared.InvalidateCaches(ctx, s.cache, cacheCountQuote)
}

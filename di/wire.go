//go:build wireinject
// +build wireinject

package di

import (
	"lumen/config"
	"lumen/helper"
	"lumen/infras/otel"
	"lumen/infras/postgres"
	"lumen/infras/redis"
	"lumen/infras/s3"
	"lumen/internal/bootstrap"
	"lumen/shared/cache"
	"lumen/transport/http"
	"lumen/transport/http/middleware"
	"lumen/transport/http/router"

	accountRepository "lumen/internal/domains/account/repository"
	accountService "lumen/internal/domains/account/service"
	bookingRepository "lumen/internal/domains/booking/repository"
	bookingService "lumen/internal/domains/booking/service"
	contactRepository "lumen/internal/domains/contact/repository"
	contactService "lumen/internal/domains/contact/service"
	mapLocationRepository "lumen/internal/domains/maplocation/repository"
	mapLocationService "lumen/internal/domains/maplocation/service"
	quoteRepository "lumen/internal/domains/quote/repository"
	quoteService "lumen/internal/domains/quote/service"

	bookingHandler "lumen/internal/handlers/booking"
	contactHandler "lumen/internal/handlers/contact"
	mapLocationHandler "lumen/internal/handlers/maplocation"
	quoteHandler "lumen/internal/handlers/quote"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var database = wire.NewSet(
	postgres.New,
	otel.New,
)

var infrastructures = wire.NewSet(
	database,
	redis.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var contactDomain = wire.NewSet(
	contactRepository.New,
	contactService.New,
)

var quoteDomain = wire.NewSet(
	quoteRepository.New,
	quoteService.New,
)

var mapLocationDomain = wire.NewSet(
	mapLocationRepository.New,
	mapLocationService.New,
)

var accountDomain = wire.NewSet(
	accountRepository.NewUser,
	accountRepository.NewRole,
	accountRepository.NewUserRole,
	accountService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	contactDomain,
	quoteDomain,
	mapLocationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	contactHandler.New,
	quoteHandler.New,
	mapLocationHandler.New,
	router.New,
)

var seeding = wire.NewSet(
	accountDomain,
	helper.NewMigratorFromConfig,
	bootstrap.New,
	wire.Bind(new(bootstrap.SchemaMigrator), new(*helper.Migrator)),
	wire.Bind(new(bootstrap.AccountStore), new(accountService.Account)),
	wire.Bind(new(bootstrap.LocationStore), new(mapLocationRepository.MapLocation)),
)

func InitializeApp() (*App, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		seeding,
		wire.Bind(new(http.Pinger), new(*postgres.Connection)),
		http.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}, nil
}

func InitializeSeeder() (*bootstrap.Seeder, error) {
	wire.Build(
		configurations,
		database,
		mapLocationRepository.New,
		seeding,
	)

	return &bootstrap.Seeder{}, nil
}

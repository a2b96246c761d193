package handler

import (
	"lumen/config"
	"lumen/di"
	"lumen/shared/failure"
	"lumen/shared/logger"
	"lumen/shared/timezone"
	"lumen/transport/http/response"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	app     *di.App
	initErr error
	once    sync.Once
)

func initialize(r *http.Request) {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	if initErr = timezone.Init(cfg.App.Timezone); initErr != nil {
		return
	}

	app, initErr = di.InitializeApp()
	if initErr != nil {
		return
	}

	if cfg.Seed.Enable {
		_, initErr = app.Seeder.Run(r.Context())
	}
}

// Handler is the serverless entry point. Wiring and seeding happen on the first request.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() { initialize(r) })

	if initErr != nil {
		log.Error().Err(initErr).Msg("failed to initialize service")

		response.WithError(w, failure.InternalError(initErr))

		return
	}

	app.HTTP.ServeHTTP(w, r)
}

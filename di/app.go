package di

import (
	"lumen/helper"
	"lumen/internal/bootstrap"
	"lumen/transport/http"
)

// App is everything the server binary needs after wiring.
type App struct {
	HTTP     *http.HTTP
	Seeder   *bootstrap.Seeder
	Migrator *helper.Migrator
}

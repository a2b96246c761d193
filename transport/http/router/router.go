package router

import (
	"lumen/internal/handlers/booking"
	"lumen/internal/handlers/contact"
	"lumen/internal/handlers/maplocation"
	"lumen/internal/handlers/quote"
	"lumen/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Booking     booking.Handler
	Contact     contact.Handler
	Quote       quote.Handler
	MapLocation maplocation.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.AppMiddleware
}

// SetupRoutes mounts the public form endpoints behind the rate limiter and
// everything else behind the API key.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Group(func(public chi.Router) {
			public.Use(r.Middleware.RateLimit())

			r.DomainHandlers.Booking.PublicRouter(public)
			r.DomainHandlers.Contact.PublicRouter(public)
			r.DomainHandlers.Quote.PublicRouter(public)
		})

		routerGroup.Group(func(admin chi.Router) {
			admin.Use(r.Middleware.APIKey)

			r.DomainHandlers.Booking.AdminRouter(admin)
			r.DomainHandlers.Contact.AdminRouter(admin)
			r.DomainHandlers.Quote.AdminRouter(admin)
			r.DomainHandlers.MapLocation.AdminRouter(admin)
		})
	})
}

func New(domainHandlers DomainHandlers, middleware middleware.AppMiddleware) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     middleware,
	}
}

package router

import (
	"halachi/config"
	"halachi/internal/handlers/booking"
	"halachi/internal/handlers/category"
	"halachi/internal/handlers/hotel"
	"halachi/internal/handlers/media"
	"halachi/internal/handlers/review"
	"halachi/internal/handlers/seo"
	"halachi/internal/handlers/site"
	"halachi/internal/handlers/tour"
	"halachi/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Site     site.Handler
	Hotel    hotel.Handler
	Tour     tour.Handler
	Category category.Handler
	Review   review.Handler
	SEO      seo.Handler
	Booking  booking.Handler
	Media    media.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Admin          middleware.Admin
	Config         *config.Config
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Site.Router(routerGroup)
		r.DomainHandlers.Hotel.Router(routerGroup)
		r.DomainHandlers.Tour.Router(routerGroup)
		r.DomainHandlers.Category.Router(routerGroup)
		r.DomainHandlers.Review.Router(routerGroup)
		r.DomainHandlers.SEO.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)

		routerGroup.Route("/admin", func(adminGroup chi.Router) {
			adminGroup.Use(r.Admin.AdminGate)

			r.DomainHandlers.Site.AdminRouter(adminGroup)
			r.DomainHandlers.Hotel.AdminRouter(adminGroup)
			r.DomainHandlers.Tour.AdminRouter(adminGroup)
			r.DomainHandlers.Category.AdminRouter(adminGroup)
			r.DomainHandlers.Review.AdminRouter(adminGroup)
			r.DomainHandlers.SEO.AdminRouter(adminGroup)
			r.DomainHandlers.Booking.AdminRouter(adminGroup)
			r.DomainHandlers.Media.AdminRouter(adminGroup)
		})
	})

	static := NewStatic(r.Config.Storage.PublicDir)
	router.Get("/admin", static.Admin)
	router.Get("/*", static.ServeHTTP)
}

func New(domainHandlers DomainHandlers, admin middleware.Admin, config *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Admin:          admin,
		Config:         config,
	}
}

package router

import (
	"borrowdung/internal/handlers/auth"
	"borrowdung/internal/handlers/booking"
	"borrowdung/internal/handlers/dashboard"
	"borrowdung/internal/handlers/room"
	"borrowdung/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth      auth.Handler
	Dashboard dashboard.Handler
	Room      room.Handler
	Booking   booking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Session        middleware.Session
}

// SetupRoutes mounts every page behind the session middleware.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Group(func(routerGroup chi.Router) {
		routerGroup.Use(r.Session.Restore, r.Session.Auth)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Dashboard.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, session middleware.Session) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Session:        session,
	}
}

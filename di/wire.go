//go:build wireinject
// +build wireinject

package di

import (
	"borrowdung/config"
	"borrowdung/infras/api"
	"borrowdung/infras/jwt"
	"borrowdung/infras/otel"
	"borrowdung/permissions"
	"borrowdung/shared/cache"
	"borrowdung/transport/http"
	"borrowdung/transport/http/middleware"
	"borrowdung/transport/http/router"
	"borrowdung/transport/http/view"

	authRepository "borrowdung/internal/domains/auth/repository"
	authService "borrowdung/internal/domains/auth/service"
	bookingRepository "borrowdung/internal/domains/booking/repository"
	bookingService "borrowdung/internal/domains/booking/service"
	dashboardService "borrowdung/internal/domains/dashboard/service"
	roomRepository "borrowdung/internal/domains/room/repository"
	roomService "borrowdung/internal/domains/room/service"
	sessionInterceptor "borrowdung/internal/domains/session/interceptor"
	sessionRepository "borrowdung/internal/domains/session/repository"
	sessionService "borrowdung/internal/domains/session/service"

	authHandler "borrowdung/internal/handlers/auth"
	bookingHandler "borrowdung/internal/handlers/booking"
	dashboardHandler "borrowdung/internal/handlers/dashboard"
	roomHandler "borrowdung/internal/handlers/room"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	jwt.New,
	api.NewHTTPClient,
	api.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewSessionMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.New,
	view.New,
)

// The session domain supplies the API client's interceptors, so its store
// and failure handler are built before any repository.
var sessionDomain = wire.NewSet(
	sessionRepository.New,
	sessionService.NewAuthFailure,
	sessionInterceptor.New,
	sessionService.New,
)

var authDomain = wire.NewSet(
	authRepository.New,
	authService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	sessionDomain,
	authDomain,
	roomDomain,
	bookingDomain,
	dashboardService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	dashboardHandler.New,
	roomHandler.New,
	bookingHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

package middleware

import (
	"net/http"

	"borrowdung/config"
	"borrowdung/infras/otel"
	"borrowdung/internal/domains/session/model"
	"borrowdung/internal/domains/session/service"
	"borrowdung/permissions"
	"borrowdung/shared/constant"
	"borrowdung/transport/http/view"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Session interface {
	// Restore resolves the session cookie and puts the session on the request
	// context. Requests without a usable cookie continue anonymously.
	Restore(next http.Handler) http.Handler
	// Auth sends anonymous requests to the login page, except on routes the
	// permissions file marks as public.
	Auth(next http.Handler) http.Handler
}

type sessionImpl struct {
	service    service.Session
	view       view.View
	permission *permissions.PermissionData
	cfg        *config.Config
	otel       otel.Otel
}

func NewSessionMiddleware(service service.Session, view view.View, permission *permissions.PermissionData, cfg *config.Config, otel otel.Otel) Session {
	return &sessionImpl{
		service:    service,
		view:       view,
		permission: permission,
		cfg:        cfg,
		otel:       otel,
	}
}

func (m *sessionImpl) Restore(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(m.cfg.Session.CookieName)
		if err != nil || cookie.Value == constant.Empty {
			next.ServeHTTP(w, r)

			return
		}

		ctx, scope := m.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, "session.middleware")

		session, err := m.service.Restore(ctx, cookie.Value)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to restore session")
		}

		scope.End()

		if session == nil {
			if err == nil {
				m.view.ClearSessionCookie(w)
			}

			next.ServeHTTP(w, r)

			return
		}

		next.ServeHTTP(w, r.WithContext(model.WithSession(r.Context(), session)))
	})
}

func (m *sessionImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.permission != nil {
			path := r.URL.Path

			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.Routes != nil {
				path = rctx.Routes.Find(chi.NewRouteContext(), r.Method, r.URL.Path)
			}

			if m.permission.FindPermissions(path, r.Method).Skip {
				next.ServeHTTP(w, r)

				return
			}
		}

		if !model.FromContext(r.Context()).Authenticated() {
			m.view.Redirect(w, r, constant.RouteLogin, constant.Empty)

			return
		}

		next.ServeHTTP(w, r)
	})
}

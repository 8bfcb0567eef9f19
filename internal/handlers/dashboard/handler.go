package dashboard

import (
	"net/http"

	"borrowdung/infras/otel"
	"borrowdung/internal/domains/dashboard/service"
	"borrowdung/shared/constant"
	"borrowdung/transport/http/view"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Dashboard
	view    view.View
	otel    otel.Otel
}

func New(service service.Dashboard, view view.View, otel otel.Otel) Handler {
	return Handler{
		service: service,
		view:    view,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get(constant.RouteHome, handler.Index)
}

// Index shows the summary. A failed fetch is logged and the page renders
// with zero counts.
func (handler *Handler) Index(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Dashboard")
	defer scope.End()

	summary, err := handler.service.Summary(ctx)
	if err != nil {
		if handler.view.Unauthenticated(w, r, err) {
			return
		}

		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to load dashboard")
	}

	handler.view.Render(w, r, http.StatusOK, view.PageDashboard, view.Page{
		Title:  "Dashboard",
		Active: "dashboard",
		Data:   summary,
	})
}

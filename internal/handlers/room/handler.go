package room

import (
	"context"
	"net/http"

	"borrowdung/infras/otel"
	"borrowdung/internal/domains/room/model"
	"borrowdung/internal/domains/room/model/dto"
	"borrowdung/internal/domains/room/service"
	"borrowdung/shared"
	"borrowdung/shared/constant"
	"borrowdung/shared/failure"
	"borrowdung/shared/validator"
	"borrowdung/transport/http/view"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	title  = "Ruangan"
	active = "rooms"
)

// Page is the model of the rooms page.
type Page struct {
	Filter    dto.Filter
	Rooms     []model.Room
	Total     int
	Modal     string
	EditID    int64
	Form      dto.RoomRequest
	FormError string
}

type Handler struct {
	service service.Room
	view    view.View
	otel    otel.Otel
}

func New(service service.Room, view view.View, otel otel.Otel) Handler {
	return Handler{
		service: service,
		view:    view,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route(constant.RouteRooms, func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.Index)
		routerGroup.Post("/", handler.Create)
		routerGroup.Post("/{id}", handler.Update)
		routerGroup.Post("/{id}/delete", handler.Delete)
	})
}

// Index lists rooms for the current filter and opens the modal named in the
// query string.
func (handler *Handler) Index(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RoomIndex")
	defer scope.End()

	page := Page{}

	errMsg, ok := handler.load(ctx, w, r, &page)
	if !ok {
		return
	}

	query := r.URL.Query()

	switch query.Get(constant.RequestParamModal) {
	case constant.ModalCreate:
		page.Modal = constant.ModalCreate
		page.Form.Status = constant.RoomStatusAvailable
	case constant.ModalEdit:
		id, err := shared.ParseID(query.Get(constant.RequestParamID))
		if err != nil {
			errMsg = failure.Message(err, "Ruangan tidak ditemukan")

			break
		}

		room, err := handler.service.Get(ctx, id)
		if err != nil {
			if handler.view.Unauthenticated(w, r, err) {
				return
			}

			scope.TraceError(err)
			log.Error().Err(err).Int64("id", id).Msg("failed to get room")

			errMsg = failure.Message(err, "Gagal memuat data ruangan")

			break
		}

		page.Modal = constant.ModalEdit
		page.EditID = id
		page.Form.FromModel(room)
	}

	handler.render(w, r, http.StatusOK, page, errMsg)
}

func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	req := dto.RoomRequest{}

	err := validator.Decode(r, &req)
	if err == nil {
		err = handler.service.Create(ctx, req)
	}

	if err != nil {
		if handler.view.Unauthenticated(w, r, err) {
			return
		}

		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")

		handler.formError(ctx, w, r, Page{Modal: constant.ModalCreate, Form: req}, err, "Gagal menyimpan ruangan")

		return
	}

	scope.AddEvent("Room created successfully")

	handler.view.Redirect(w, r, constant.RouteRooms, view.NoticeRoomCreated)
}

func (handler *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	req := dto.RoomRequest{}

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err == nil {
		err = validator.Decode(r, &req)
	}

	if err == nil {
		err = handler.service.Update(ctx, id, req)
	}

	if err != nil {
		if handler.view.Unauthenticated(w, r, err) {
			return
		}

		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to update room")

		handler.formError(ctx, w, r, Page{Modal: constant.ModalEdit, EditID: id, Form: req}, err, "Gagal menyimpan ruangan")

		return
	}

	scope.AddEvent("Room updated successfully")

	handler.view.Redirect(w, r, constant.RouteRooms, view.NoticeRoomUpdated)
}

func (handler *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err == nil {
		err = handler.service.Delete(ctx, id)
	}

	if err != nil {
		if handler.view.Unauthenticated(w, r, err) {
			return
		}

		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to delete room")

		handler.formError(ctx, w, r, Page{}, err, "Gagal menghapus ruangan")

		return
	}

	scope.AddEvent("Room deleted successfully")

	handler.view.Redirect(w, r, constant.RouteRooms, view.NoticeRoomDeleted)
}

// load fetches the room list into page and returns the page-level error
// message. ok is false when the response has already been written.
func (handler *Handler) load(ctx context.Context, w http.ResponseWriter, r *http.Request, page *Page) (msg string, ok bool) {
	page.Filter.FromRequest(r)
	page.Rooms = []model.Room{}

	list, err := handler.service.GetAll(ctx, page.Filter)
	if err != nil {
		if handler.view.Unauthenticated(w, r, err) {
			return constant.Empty, false
		}

		log.Error().Err(err).Msg("failed to get rooms")

		return failure.Message(err, "Gagal memuat data ruangan"), true
	}

	page.Rooms = list.Items
	page.Total = list.Total

	return constant.Empty, true
}

// formError re-renders the list after a failed mutation. With a modal open
// the message is shown inside it, otherwise above the list.
func (handler *Handler) formError(ctx context.Context, w http.ResponseWriter, r *http.Request, page Page, err error, fallback string) {
	errMsg, ok := handler.load(ctx, w, r, &page)
	if !ok {
		return
	}

	if page.Modal == constant.Empty {
		errMsg = failure.Message(err, fallback)
	} else {
		page.FormError = failure.Message(err, fallback)
	}

	handler.render(w, r, failure.GetCode(err), page, errMsg)
}

func (handler *Handler) render(w http.ResponseWriter, r *http.Request, status int, page Page, errMsg string) {
	handler.view.Render(w, r, status, view.PageRooms, view.Page{
		Title:  title,
		Active: active,
		Error:  errMsg,
		Data:   page,
	})
}

package booking

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"borrowdung/config"
	"borrowdung/infras/otel"
	"borrowdung/internal/domains/booking/model"
	"borrowdung/internal/domains/booking/model/dto"
	"borrowdung/internal/domains/booking/service"
	roomModel "borrowdung/internal/domains/room/model"
	roomDto "borrowdung/internal/domains/room/model/dto"
	roomService "borrowdung/internal/domains/room/service"
	"borrowdung/shared"
	"borrowdung/shared/constant"
	gDto "borrowdung/shared/dto"
	"borrowdung/shared/failure"
	"borrowdung/shared/validator"
	"borrowdung/transport/http/view"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	routeHistory = "/history"

	title        = "Booking"
	titleHistory = "Riwayat Booking"
	active       = "bookings"
	activeHist   = "history"
)

// Page is the model of the bookings page. Rooms holds the choices of the
// create/edit form.
type Page struct {
	Filter          dto.Filter
	Bookings        []model.Booking
	Total           int
	Rooms           []roomModel.Room
	Modal           string
	EditID          int64
	Selected        *model.Booking
	Form            dto.BookingRequest
	RejectionReason string
	FormError       string

	allRooms []roomModel.Room
}

// HistoryPage is the model of the history page.
type HistoryPage struct {
	Filter   dto.Filter
	Bookings []model.Booking
	Total    int
}

type Handler struct {
	service     service.Booking
	roomService roomService.Room
	view        view.View
	cfg         *config.Config
	otel        otel.Otel
}

func New(service service.Booking, roomService roomService.Room, view view.View, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service:     service,
		roomService: roomService,
		view:        view,
		cfg:         cfg,
		otel:        otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route(constant.RouteBookings, func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.Index)
		routerGroup.Post("/", handler.Create)
		routerGroup.Get(routeHistory, handler.History)
		routerGroup.Post("/{id}", handler.Update)
		routerGroup.Post("/{id}/approve", handler.Approve)
		routerGroup.Post("/{id}/reject", handler.Reject)
		routerGroup.Post("/{id}/delete", handler.Delete)
	})
}

// Index lists bookings for the current filter. The room list for the form is
// fetched alongside, and the modal named in the query string is opened.
func (handler *Handler) Index(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookingIndex")
	defer scope.End()

	page := Page{}

	errMsg, ok := handler.load(ctx, w, r, &page)
	if !ok {
		return
	}

	query := r.URL.Query()
	modal := query.Get(constant.RequestParamModal)

	switch modal {
	case constant.ModalCreate:
		page.Modal = constant.ModalCreate
	case constant.ModalEdit, constant.ModalProcess:
		id, err := shared.ParseID(query.Get(constant.RequestParamID))
		if err != nil {
			errMsg = failure.Message(err, "Booking tidak ditemukan")

			break
		}

		booking, err := handler.service.Get(ctx, id)
		if err != nil {
			if handler.view.Unauthenticated(w, r, err) {
				return
			}

			scope.TraceError(err)
			log.Error().Err(err).Int64("id", id).Msg("failed to get booking")

			errMsg = failure.Message(err, "Gagal memuat data booking")

			break
		}

		if modal == constant.ModalProcess {
			if !booking.Pending() {
				errMsg = "Booking ini sudah diproses"

				break
			}

			page.Modal = constant.ModalProcess
			page.Selected = &booking

			break
		}

		page.Modal = constant.ModalEdit
		page.EditID = id
		page.Form.FromModel(booking)
		page.Rooms = roomOptions(page.allRooms, booking.RoomID)
	}

	handler.render(w, r, http.StatusOK, page, errMsg)
}

func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.BookingRequest{}

	err := validator.Decode(r, &req)
	if err == nil {
		err = handler.service.Create(ctx, req)
	}

	if err != nil {
		if handler.view.Unauthenticated(w, r, err) {
			return
		}

		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		handler.formError(ctx, w, r, Page{Modal: constant.ModalCreate, Form: req}, err, "Gagal membuat booking")

		return
	}

	scope.AddEvent("Booking created successfully")

	handler.view.Redirect(w, r, constant.RouteBookings, view.NoticeBookingCreated)
}

func (handler *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	req := dto.BookingRequest{}

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
		log.Error().Err(err).Int64("id", id).Msg("failed to update booking")

		handler.formError(ctx, w, r, Page{Modal: constant.ModalEdit, EditID: id, Form: req}, err, "Gagal mengupdate booking")

		return
	}

	scope.AddEvent("Booking updated successfully")

	handler.view.Redirect(w, r, constant.RouteBookings, view.NoticeBookingUpdated)
}

func (handler *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ApproveBooking")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err == nil {
		err = handler.service.Approve(ctx, id)
	}

	if err != nil {
		if handler.view.Unauthenticated(w, r, err) {
			return
		}

		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to approve booking")

		handler.formError(ctx, w, r, Page{}, err, "Gagal menyetujui booking")

		return
	}

	scope.AddEvent(fmt.Sprintf("Booking %d approved", id))

	handler.view.Redirect(w, r, constant.RouteBookings, view.NoticeBookingApproved)
}

// Reject requires a reason. On failure the process modal is shown again with
// the reason as typed.
func (handler *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RejectBooking")
	defer scope.End()

	req := dto.ProcessRequest{}

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err == nil {
		err = validator.Decode(r, &req)
	}

	if err == nil {
		err = handler.service.Reject(ctx, id, req.RejectionReason)
	}

	if err == nil {
		scope.AddEvent(fmt.Sprintf("Booking %d rejected", id))

		handler.view.Redirect(w, r, constant.RouteBookings, view.NoticeBookingRejected)

		return
	}

	if handler.view.Unauthenticated(w, r, err) {
		return
	}

	scope.TraceError(err)
	log.Error().Err(err).Int64("id", id).Msg("failed to reject booking")

	page := Page{RejectionReason: req.RejectionReason}

	if id > 0 {
		booking, getErr := handler.service.Get(ctx, id)
		if getErr == nil {
			page.Modal = constant.ModalProcess
			page.Selected = &booking
		} else if handler.view.Unauthenticated(w, r, getErr) {
			return
		}
	}

	handler.formError(ctx, w, r, page, err, "Gagal menolak booking")
}

func (handler *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
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
		log.Error().Err(err).Int64("id", id).Msg("failed to delete booking")

		handler.formError(ctx, w, r, Page{}, err, "Gagal menghapus booking")

		return
	}

	scope.AddEvent("Booking deleted successfully")

	handler.view.Redirect(w, r, constant.RouteBookings, view.NoticeBookingDeleted)
}

func (handler *Handler) History(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookingHistory")
	defer scope.End()

	page := HistoryPage{Bookings: []model.Booking{}}
	page.Filter.FromRequest(r)

	errMsg := constant.Empty

	list, err := handler.service.History(ctx, page.Filter)
	if err != nil {
		if handler.view.Unauthenticated(w, r, err) {
			return
		}

		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking history")

		errMsg = failure.Message(err, "Gagal memuat riwayat booking")
	} else {
		page.Bookings = list.Items
		page.Total = list.Total
	}

	handler.view.Render(w, r, http.StatusOK, view.PageHistory, view.Page{
		Title:  titleHistory,
		Active: activeHist,
		Error:  errMsg,
		Data:   page,
	})
}

func (handler *Handler) pageSize() int {
	if handler.cfg.API.PageSize > 0 {
		return handler.cfg.API.PageSize
	}

	return constant.DefaultValuePageSize
}

// load fetches the booking list and the rooms concurrently and returns the
// page-level error message. ok is false when the response has already been
// written.
func (handler *Handler) load(ctx context.Context, w http.ResponseWriter, r *http.Request, page *Page) (msg string, ok bool) {
	page.Filter.FromRequest(r)
	page.Bookings = []model.Booking{}
	page.Rooms = []roomModel.Room{}

	var (
		bookings    gDto.ListResult[model.Booking]
		rooms       gDto.ListResult[roomModel.Room]
		bookingsErr error
		roomsErr    error
		group       errgroup.Group
	)

	// Each fetch keeps its own error so a 401 from one is never hidden by
	// the other failing first.
	group.Go(func() error {
		bookings, bookingsErr = handler.service.GetAll(ctx, page.Filter)

		return nil
	})

	group.Go(func() error {
		rooms, roomsErr = handler.roomService.GetAll(ctx, roomDto.Filter{
			QueryParams: gDto.QueryParams{PageSize: handler.pageSize()},
		})

		return nil
	})

	_ = group.Wait()

	if err := errors.Join(bookingsErr, roomsErr); err != nil {
		if handler.view.Unauthenticated(w, r, err) {
			return constant.Empty, false
		}

		log.Error().Err(err).Msg("failed to get bookings")

		return failure.Message(err, "Gagal memuat data"), true
	}

	page.Bookings = bookings.Items
	page.Total = bookings.Total
	page.allRooms = rooms.Items
	page.Rooms = roomOptions(rooms.Items, page.Form.RoomID)

	return constant.Empty, true
}

// roomOptions lists the available rooms, keeping the selected room even when
// it is no longer available so an existing booking can be edited.
func roomOptions(rooms []roomModel.Room, selected int64) []roomModel.Room {
	options := roomModel.FilterAvailable(rooms)

	for _, room := range rooms {
		if room.ID == selected && !room.Available() {
			options = append(options, room)
		}
	}

	return options
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
	handler.view.Render(w, r, status, view.PageBookings, view.Page{
		Title:  title,
		Active: active,
		Error:  errMsg,
		Data:   page,
	})
}

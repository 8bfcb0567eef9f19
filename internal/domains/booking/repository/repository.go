package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"borrowdung/config"
	"borrowdung/infras/api"
	"borrowdung/infras/otel"
	"borrowdung/internal/domains/booking/model"
	"borrowdung/internal/domains/booking/model/dto"
	"borrowdung/shared/constant"
	gDto "borrowdung/shared/dto"

	"github.com/rs/zerolog/log"
)

const (
	pathBookings = "/Bookings"
	pathHistory  = pathBookings + "/history"
	pathStatus   = "/status"
)

type Booking interface {
	GetAll(ctx context.Context, filter dto.Filter) (gDto.ListResult[model.Booking], error)
	History(ctx context.Context, filter dto.Filter) (gDto.ListResult[model.Booking], error)
	Get(ctx context.Context, id int64) (model.Booking, error)
	Insert(ctx context.Context, payload dto.Payload) (model.Booking, error)
	Update(ctx context.Context, id int64, payload dto.Payload) (model.Booking, error)
	UpdateStatus(ctx context.Context, id int64, req dto.StatusRequest) (model.Booking, error)
	Delete(ctx context.Context, id int64) error
}

type repositoryImpl struct {
	client       api.Client
	statusMethod string
	otel         otel.Otel
}

func New(client api.Client, cfg *config.Config, otel otel.Otel) Booking {
	return &repositoryImpl{
		client:       client,
		statusMethod: statusMethod(cfg.API.BookingStatusMethod),
		otel:         otel,
	}
}

// statusMethod picks the verb of the status endpoint. Deployments differ
// between PATCH and PUT; anything else falls back to PATCH.
func statusMethod(configured string) string {
	if strings.EqualFold(strings.TrimSpace(configured), http.MethodPut) {
		return http.MethodPut
	}

	return http.MethodPatch
}

func bookingPath(id int64) string {
	return pathBookings + "/" + strconv.FormatInt(id, 10)
}

func (r *repositoryImpl) GetAll(ctx context.Context, filter dto.Filter) (res gDto.ListResult[model.Booking], err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Booking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return r.list(ctx, pathBookings, filter)
}

func (r *repositoryImpl) History(ctx context.Context, filter dto.Filter) (res gDto.ListResult[model.Booking], err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Booking.History")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return r.list(ctx, pathHistory, filter)
}

func (r *repositoryImpl) list(ctx context.Context, path string, filter dto.Filter) (gDto.ListResult[model.Booking], error) {
	var bookings []model.Booking

	header, err := r.client.Do(ctx, api.Request{Method: http.MethodGet, Path: path, Query: filter.Encode()}, &bookings)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to get bookings")

		return gDto.ListResult[model.Booking]{}, fmt.Errorf("failed to get bookings: %w", err)
	}

	return gDto.NewListResult(bookings, header), nil
}

func (r *repositoryImpl) Get(ctx context.Context, id int64) (res model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = r.client.Do(ctx, api.Request{Method: http.MethodGet, Path: bookingPath(id)}, &res); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Insert(ctx context.Context, payload dto.Payload) (res model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Booking.Insert")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = r.client.Do(ctx, api.Request{Method: http.MethodPost, Path: pathBookings, Body: payload}, &res); err != nil {
		log.Error().Err(err).Int64("roomId", payload.RoomID).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Update(ctx context.Context, id int64, payload dto.Payload) (res model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Booking.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = r.client.Do(ctx, api.Request{Method: http.MethodPut, Path: bookingPath(id), Body: payload}, &res); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update booking")

		return res, fmt.Errorf("failed to update booking: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) UpdateStatus(ctx context.Context, id int64, req dto.StatusRequest) (res model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Booking.UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("booking.status", int(req.Status))

	request := api.Request{Method: r.statusMethod, Path: bookingPath(id) + pathStatus, Body: req}
	if _, err = r.client.Do(ctx, request, &res); err != nil {
		log.Error().Err(err).Int64("id", id).Int("status", int(req.Status)).Msg("failed to update booking status")

		return res, fmt.Errorf("failed to update booking status: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Booking.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = r.client.Do(ctx, api.Request{Method: http.MethodDelete, Path: bookingPath(id)}, nil); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	return nil
}

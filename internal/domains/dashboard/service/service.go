package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"borrowdung/config"
	"borrowdung/infras/otel"
	bookingModel "borrowdung/internal/domains/booking/model"
	bookingDto "borrowdung/internal/domains/booking/model/dto"
	bookingRepo "borrowdung/internal/domains/booking/repository"
	"borrowdung/internal/domains/dashboard/model"
	roomModel "borrowdung/internal/domains/room/model"
	roomDto "borrowdung/internal/domains/room/model/dto"
	roomRepo "borrowdung/internal/domains/room/repository"
	"borrowdung/shared/constant"
	gDto "borrowdung/shared/dto"

	"golang.org/x/sync/errgroup"
)

type Dashboard interface {
	// Summary fetches rooms and bookings concurrently. On any failure it
	// returns a zero Summary together with the error.
	Summary(ctx context.Context) (model.Summary, error)
}

type serviceImpl struct {
	roomRepo    roomRepo.Room
	bookingRepo bookingRepo.Booking
	cfg         *config.Config
	otel        otel.Otel
}

func New(roomRepo roomRepo.Room, bookingRepo bookingRepo.Booking, cfg *config.Config, otel otel.Otel) Dashboard {
	return &serviceImpl{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		otel:        otel,
	}
}

func (s *serviceImpl) pageSize() int {
	if s.cfg.API.PageSize > 0 {
		return s.cfg.API.PageSize
	}

	return constant.DefaultValuePageSize
}

func (s *serviceImpl) Summary(ctx context.Context) (res model.Summary, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard.Summary")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := gDto.QueryParams{PageSize: s.pageSize()}

	var (
		rooms       gDto.ListResult[roomModel.Room]
		bookings    gDto.ListResult[bookingModel.Booking]
		roomsErr    error
		bookingsErr error
		group       errgroup.Group
	)

	// Both errors are kept so the caller can still see an authentication
	// failure when the other fetch fails too.
	group.Go(func() error {
		rooms, roomsErr = s.roomRepo.GetAll(ctx, roomDto.Filter{QueryParams: params})

		return nil
	})

	group.Go(func() error {
		bookings, bookingsErr = s.bookingRepo.GetAll(ctx, bookingDto.Filter{QueryParams: params})

		return nil
	})

	_ = group.Wait()

	if err = errors.Join(roomsErr, bookingsErr); err != nil {
		return model.Summary{}, fmt.Errorf("failed to load dashboard: %w", err)
	}

	recent := bookings.Items
	if len(recent) > constant.RecentBookingsLimit {
		recent = recent[:constant.RecentBookingsLimit]
	}

	return model.Summary{
		TotalRooms:       len(rooms.Items),
		AvailableRooms:   len(roomModel.FilterAvailable(rooms.Items)),
		PendingBookings:  bookingModel.CountByStatus(bookings.Items, bookingModel.StatusPending),
		ApprovedBookings: bookingModel.CountByStatus(bookings.Items, bookingModel.StatusApproved),
		RecentBookings:   recent,
	}, nil
}

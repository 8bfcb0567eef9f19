package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"borrowdung/config"
	"borrowdung/infras/api"
	"borrowdung/infras/otel/mocks"
	bookingMocks "borrowdung/internal/domains/booking/mocks"
	bookingModel "borrowdung/internal/domains/booking/model"
	bookingDto "borrowdung/internal/domains/booking/model/dto"
	"borrowdung/internal/domains/dashboard/model"
	"borrowdung/internal/domains/dashboard/service"
	roomMocks "borrowdung/internal/domains/room/mocks"
	roomModel "borrowdung/internal/domains/room/model"
	roomDto "borrowdung/internal/domains/room/model/dto"
	gDto "borrowdung/shared/dto"
	"borrowdung/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (service.Dashboard, *roomMocks.MockRoom, *bookingMocks.MockBooking) {
	t.Helper()

	ctrl := gomock.NewController(t)
	rooms := roomMocks.NewMockRoom(ctrl)
	bookings := bookingMocks.NewMockBooking(ctrl)

	cfg := &config.Config{}
	cfg.API.PageSize = 100

	return service.New(rooms, bookings, cfg, mocks.NewOtel()), rooms, bookings
}

func TestDashboardService_Summary(t *testing.T) {
	svc, rooms, bookings := newService(t)

	page := gDto.QueryParams{PageSize: 100}

	rooms.EXPECT().GetAll(gomock.Any(), roomDto.Filter{QueryParams: page}).Return(gDto.ListResult[roomModel.Room]{
		Items: []roomModel.Room{
			{ID: 1, Name: "Lab A", Status: "Tersedia"},
			{ID: 2, Name: "Aula", Status: "Tidak Tersedia"},
			{ID: 3, Name: "Lab B", Status: "Tersedia"},
		},
	}, nil).Times(1)

	items := make([]bookingModel.Booking, 0, 7)
	for i, status := range []bookingModel.Status{0, 1, 0, 2, 1, 0, 1} {
		items = append(items, bookingModel.Booking{ID: int64(i + 1), Status: status})
	}

	bookings.EXPECT().GetAll(gomock.Any(), bookingDto.Filter{QueryParams: page}).Return(gDto.ListResult[bookingModel.Booking]{Items: items}, nil).Times(1)

	got, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, got.TotalRooms)
	assert.Equal(t, 2, got.AvailableRooms)
	assert.Equal(t, 3, got.PendingBookings)
	assert.Equal(t, 3, got.ApprovedBookings)
	require.Len(t, got.RecentBookings, 5)
	assert.Equal(t, int64(1), got.RecentBookings[0].ID)
	assert.Equal(t, int64(5), got.RecentBookings[4].ID)
}

func TestDashboardService_SummaryFailure(t *testing.T) {
	svc, rooms, bookings := newService(t)

	rooms.EXPECT().GetAll(gomock.Any(), gomock.Any()).Return(gDto.ListResult[roomModel.Room]{}, errors.New("connection refused"))
	bookings.EXPECT().GetAll(gomock.Any(), gomock.Any()).Return(gDto.ListResult[bookingModel.Booking]{
		Items: []bookingModel.Booking{{ID: 1}},
	}, nil).AnyTimes()

	got, err := svc.Summary(context.Background())

	assert.Error(t, err)
	assert.Equal(t, model.Summary{}, got)
}

func TestDashboardService_SummaryKeepsUnauthenticated(t *testing.T) {
	svc, rooms, bookings := newService(t)

	rooms.EXPECT().GetAll(gomock.Any(), gomock.Any()).
		Return(gDto.ListResult[roomModel.Room]{}, failure.FromStatus(http.StatusServiceUnavailable, "Service Unavailable"))
	bookings.EXPECT().GetAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, bookingDto.Filter) (gDto.ListResult[bookingModel.Booking], error) {
			time.Sleep(50 * time.Millisecond)

			return gDto.ListResult[bookingModel.Booking]{}, api.ErrUnauthenticated
		})

	_, err := svc.Summary(context.Background())

	assert.ErrorIs(t, err, api.ErrUnauthenticated)
	assert.Equal(t, http.StatusServiceUnavailable, failure.GetCode(err))
}

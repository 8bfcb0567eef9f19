package service_test

import (
	"context"
	"net/http"
	"testing"

	"borrowdung/infras/otel/mocks"
	bookingMocks "borrowdung/internal/domains/booking/mocks"
	"borrowdung/internal/domains/booking/model"
	"borrowdung/internal/domains/booking/model/dto"
	"borrowdung/internal/domains/booking/service"
	gDto "borrowdung/shared/dto"
	"borrowdung/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (service.Booking, *bookingMocks.MockBooking) {
	t.Helper()

	repo := bookingMocks.NewMockBooking(gomock.NewController(t))

	return service.New(repo, mocks.NewOtel()), repo
}

func TestBookingService_Reject(t *testing.T) {
	tests := []struct {
		name      string
		reason    string
		setupMock func(repo *bookingMocks.MockBooking)
		wantMsg   string
	}{
		{
			name:      "empty reason makes no call",
			reason:    "",
			setupMock: func(*bookingMocks.MockBooking) {},
			wantMsg:   service.ErrRejectionReasonRequired,
		},
		{
			name:      "whitespace reason makes no call",
			reason:    "  \t\n ",
			setupMock: func(*bookingMocks.MockBooking) {},
			wantMsg:   service.ErrRejectionReasonRequired,
		},
		{
			name:   "reason is sent with rejected status",
			reason: "Ruangan sedang direnovasi",
			setupMock: func(repo *bookingMocks.MockBooking) {
				reason := "Ruangan sedang direnovasi"
				repo.EXPECT().
					UpdateStatus(gomock.Any(), int64(5), dto.StatusRequest{Status: model.StatusRejected, RejectionReason: &reason}).
					Return(model.Booking{ID: 5, Status: model.StatusRejected}, nil).
					Times(1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService(t)
			tt.setupMock(repo)

			err := svc.Reject(context.Background(), 5, tt.reason)
			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.Equal(t, tt.wantMsg, failure.Message(err, ""))
		})
	}
}

func TestBookingService_Approve(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().
		UpdateStatus(gomock.Any(), int64(5), dto.StatusRequest{Status: model.StatusApproved}).
		Return(model.Booking{ID: 5, Status: model.StatusApproved}, nil).
		Times(1)

	require.NoError(t, svc.Approve(context.Background(), 5))
}

func TestBookingService_ApproveServerRejects(t *testing.T) {
	svc, repo := newService(t)

	apiErr := failure.FromStatus(http.StatusBadRequest, "Booking sudah diproses")
	repo.EXPECT().UpdateStatus(gomock.Any(), int64(5), gomock.Any()).Return(model.Booking{}, apiErr)

	err := svc.Approve(context.Background(), 5)

	assert.ErrorIs(t, err, apiErr)
}

func TestBookingService_CreatePassesTimesThrough(t *testing.T) {
	svc, repo := newService(t)

	req := dto.BookingRequest{
		RoomID:      3,
		BookerName:  "Rina",
		BookerEmail: "rina@kampus.ac.id",
		Purpose:     "Rapat",
		StartTime:   "2025-03-02T09:00",
		EndTime:     "2025-03-02T08:00",
	}

	repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, payload dto.Payload) (model.Booking, error) {
			assert.Equal(t, "2025-03-02T09:00", payload.StartTime)
			assert.Equal(t, "2025-03-02T08:00", payload.EndTime)

			return model.Booking{ID: 1}, nil
		})

	require.NoError(t, svc.Create(context.Background(), req))
}

func TestBookingService_Queries(t *testing.T) {
	svc, repo := newService(t)

	approved := model.StatusApproved
	filter := dto.Filter{QueryParams: gDto.QueryParams{PageSize: 100, Search: "rapat"}, Status: &approved}
	want := gDto.ListResult[model.Booking]{Items: []model.Booking{{ID: 1, Status: model.StatusApproved}}, Total: 1}

	repo.EXPECT().GetAll(gomock.Any(), filter).Return(want, nil).Times(1)
	repo.EXPECT().History(gomock.Any(), filter).Return(want, nil).Times(1)
	repo.EXPECT().Get(gomock.Any(), int64(1)).Return(want.Items[0], nil)
	repo.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)
	repo.EXPECT().Update(gomock.Any(), int64(1), gomock.Any()).Return(model.Booking{ID: 1}, nil)

	ctx := context.Background()

	got, err := svc.GetAll(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = svc.History(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	booking, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), booking.ID)

	require.NoError(t, svc.Update(ctx, 1, dto.BookingRequest{RoomID: 3}))
	require.NoError(t, svc.Delete(ctx, 1))
}

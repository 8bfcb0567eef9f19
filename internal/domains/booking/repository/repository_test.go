package repository_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"borrowdung/config"
	"borrowdung/infras/api"
	"borrowdung/infras/otel/mocks"
	"borrowdung/internal/domains/booking/model"
	"borrowdung/internal/domains/booking/model/dto"
	"borrowdung/internal/domains/booking/repository"
	gDto "borrowdung/shared/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	method string
	path   string
	query  string
	body   string
}

func newRepository(t *testing.T, statusMethod string, respond string) (repository.Booking, *[]recorded) {
	t.Helper()

	var calls []recorded

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		calls = append(calls, recorded{method: r.Method, path: r.URL.Path, query: r.URL.RawQuery, body: string(raw)})

		_, _ = w.Write([]byte(respond))
	}))
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.API.BaseURL = server.URL + "/api"
	cfg.API.BookingStatusMethod = statusMethod

	client := api.New(cfg, server.Client(), api.Interceptors{}, mocks.NewOtel())

	return repository.New(client, cfg, mocks.NewOtel()), &calls
}

func TestBookingRepository_Lists(t *testing.T) {
	repo, calls := newRepository(t, "", `[{"id":1,"roomId":3,"status":0}]`)

	pending := model.StatusPending
	filter := dto.Filter{QueryParams: gDto.QueryParams{PageSize: 100}, Status: &pending}

	res, err := repo.GetAll(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, model.StatusPending, res.Items[0].Status)

	_, err = repo.History(context.Background(), dto.Filter{RoomID: 3})
	require.NoError(t, err)

	assert.Equal(t, []recorded{
		{method: http.MethodGet, path: "/api/Bookings", query: "pageSize=100&status=0"},
		{method: http.MethodGet, path: "/api/Bookings/history", query: "roomId=3"},
	}, *calls)
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	reason := "Ruangan sedang direnovasi"

	tests := []struct {
		name       string
		configured string
		req        dto.StatusRequest
		wantMethod string
		wantBody   string
	}{
		{
			name:       "approve uses patch by default",
			req:        dto.StatusRequest{Status: model.StatusApproved},
			wantMethod: http.MethodPatch,
			wantBody:   `{"status":1}`,
		},
		{
			name:       "reject with put variant",
			configured: "put",
			req:        dto.StatusRequest{Status: model.StatusRejected, RejectionReason: &reason},
			wantMethod: http.MethodPut,
			wantBody:   `{"status":2,"rejectionReason":"Ruangan sedang direnovasi"}`,
		},
		{
			name:       "unknown method falls back to patch",
			configured: "POST",
			req:        dto.StatusRequest{Status: model.StatusApproved},
			wantMethod: http.MethodPatch,
			wantBody:   `{"status":1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, calls := newRepository(t, tt.configured, `{"id":5,"status":1}`)

			_, err := repo.UpdateStatus(context.Background(), 5, tt.req)
			require.NoError(t, err)

			require.Len(t, *calls, 1)
			call := (*calls)[0]
			assert.Equal(t, tt.wantMethod, call.method)
			assert.Equal(t, "/api/Bookings/5/status", call.path)
			assert.JSONEq(t, tt.wantBody, call.body)
		})
	}
}

func TestBookingRepository_CreateKeepsTimes(t *testing.T) {
	repo, calls := newRepository(t, "", `{"id":8}`)

	payload := dto.BookingRequest{
		RoomID:      3,
		BookerName:  "Rina",
		BookerEmail: "rina@kampus.ac.id",
		Purpose:     "Rapat",
		StartTime:   "2025-03-02T09:00",
		EndTime:     "2025-03-02T11:00",
	}.ToPayload()

	created, err := repo.Insert(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, int64(8), created.ID)

	require.Len(t, *calls, 1)
	assert.Contains(t, (*calls)[0].body, `"startTime":"2025-03-02T09:00"`)
	assert.Contains(t, (*calls)[0].body, `"endTime":"2025-03-02T11:00"`)
}

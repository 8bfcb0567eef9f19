package dto_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"borrowdung/internal/domains/booking/model"
	"borrowdung/internal/domains/booking/model/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_FromRequestEncode(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		expect url.Values
	}{
		{
			name:   "any status",
			query:  "status=",
			expect: url.Values{"pageSize": {"100"}},
		},
		{
			name:   "pending is sent as zero",
			query:  "status=0",
			expect: url.Values{"pageSize": {"100"}, "status": {"0"}},
		},
		{
			name:   "search, status and room",
			query:  "search=rapat&status=1&roomId=3",
			expect: url.Values{"pageSize": {"100"}, "search": {"rapat"}, "status": {"1"}, "roomId": {"3"}},
		},
		{
			name:   "unknown status and room are ignored",
			query:  "status=9&roomId=abc",
			expect: url.Values{"pageSize": {"100"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var filter dto.Filter
			filter.FromRequest(httptest.NewRequest(http.MethodGet, "/bookings?"+tt.query, nil))

			assert.Equal(t, tt.expect, filter.Encode())
		})
	}
}

func TestBookingRequest_ToPayloadPassesTimesThrough(t *testing.T) {
	req := dto.BookingRequest{
		RoomID:      3,
		BookerName:  "Rina",
		BookerEmail: "rina@kampus.ac.id",
		Purpose:     "Rapat himpunan",
		StartTime:   "2025-03-02T09:00",
		EndTime:     "2025-03-02T11:00",
	}

	raw, err := json.Marshal(req.ToPayload())
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"roomId": 3, "bookerName": "Rina", "bookerEmail": "rina@kampus.ac.id",
		"purpose": "Rapat himpunan", "startTime": "2025-03-02T09:00", "endTime": "2025-03-02T11:00"
	}`, string(raw))
}

func TestStatusRequest_JSON(t *testing.T) {
	reason := "Ruangan sedang direnovasi"

	raw, err := json.Marshal(dto.StatusRequest{Status: model.StatusApproved})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":1}`, string(raw))

	raw, err = json.Marshal(dto.StatusRequest{Status: model.StatusRejected, RejectionReason: &reason})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":2,"rejectionReason":"Ruangan sedang direnovasi"}`, string(raw))
}

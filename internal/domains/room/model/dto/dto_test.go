package dto_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"borrowdung/internal/domains/room/model"
	"borrowdung/internal/domains/room/model/dto"
	"borrowdung/shared/constant"
	gDto "borrowdung/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestFilter_FromRequestEncode(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		expect url.Values
	}{
		{
			name:   "defaults only",
			query:  "",
			expect: url.Values{"pageSize": {"100"}},
		},
		{
			name:  "search with availability window",
			query: "search=Lab&startTime=2025-03-02T09:00&endTime=2025-03-02T11:00",
			expect: url.Values{
				"pageSize":  {"100"},
				"search":    {"Lab"},
				"startTime": {"2025-03-02T09:00"},
				"endTime":   {"2025-03-02T11:00"},
			},
		},
		{
			name:   "status",
			query:  "status=Tersedia",
			expect: url.Values{"pageSize": {"100"}, "status": {"Tersedia"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var filter dto.Filter
			filter.FromRequest(httptest.NewRequest(http.MethodGet, "/rooms?"+tt.query, nil))

			assert.Equal(t, tt.expect, filter.Encode())
		})
	}
}

func TestFilter_EncodeLeavesTimesVerbatim(t *testing.T) {
	filter := dto.Filter{
		QueryParams: gDto.QueryParams{PageSize: 10},
		StartTime:   "2025-03-02T09:00:00+07:00",
	}

	assert.Equal(t, "2025-03-02T09:00:00+07:00", filter.Encode().Get("startTime"))
}

func TestRoomRequest_ToPayload(t *testing.T) {
	req := dto.RoomRequest{Name: " Lab A ", Location: "Gedung B", Capacity: 30}

	payload := req.ToPayload()

	assert.Equal(t, "Lab A", payload.Name)
	assert.Equal(t, constant.RoomStatusAvailable, payload.Status)
	assert.Nil(t, payload.Description)

	req.Description = "Proyektor tersedia"
	req.Status = constant.RoomStatusUnavailable
	payload = req.ToPayload()

	assert.Equal(t, "Proyektor tersedia", *payload.Description)
	assert.Equal(t, constant.RoomStatusUnavailable, payload.Status)
}

func TestRoomRequest_FromModel(t *testing.T) {
	description := "Lantai 2"
	room := model.Room{ID: 4, Name: "Aula", Location: "Gedung A", Capacity: 200, Description: &description, Status: "Tidak Tersedia"}

	var req dto.RoomRequest
	req.FromModel(room)

	assert.Equal(t, dto.RoomRequest{Name: "Aula", Location: "Gedung A", Capacity: 200, Description: "Lantai 2", Status: "Tidak Tersedia"}, req)
}

func TestFilterAvailable(t *testing.T) {
	rooms := []model.Room{
		{ID: 1, Status: "Tersedia"},
		{ID: 2, Status: "Tidak Tersedia"},
		{ID: 3, Status: "tersedia"},
		{ID: 4, Status: "Tersedia"},
	}

	got := model.FilterAvailable(rooms)

	assert.Equal(t, []model.Room{{ID: 1, Status: "Tersedia"}, {ID: 4, Status: "Tersedia"}}, got)
}

package room_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"borrowdung/config"
	"borrowdung/infras/api"
	"borrowdung/infras/otel/mocks"
	"borrowdung/internal/domains/room/model"
	"borrowdung/internal/domains/room/model/dto"
	serviceMocks "borrowdung/internal/domains/room/service/mocks"
	"borrowdung/internal/handlers/room"
	gDto "borrowdung/shared/dto"
	"borrowdung/shared/failure"
	"borrowdung/transport/http/view"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (http.Handler, *serviceMocks.MockRoom) {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Name = "Borrowdung"
	cfg.Session.CookieName = "borrowdung_session"

	ctrl := gomock.NewController(t)
	svc := serviceMocks.NewMockRoom(ctrl)

	handler := room.New(svc, view.New(cfg), mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func postForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return req
}

var defaultFilter = dto.Filter{QueryParams: gDto.QueryParams{PageSize: 100}}

func TestHandler_Index(t *testing.T) {
	router, svc := newRouter(t)

	filter := dto.Filter{QueryParams: gDto.QueryParams{PageSize: 100, Search: "Lab"}}
	svc.EXPECT().GetAll(gomock.Any(), filter).Return(gDto.ListResult[model.Room]{
		Items: []model.Room{
			{ID: 1, Name: "Lab A", Location: "Gedung B", Capacity: 30, Status: "Tersedia"},
			{ID: 2, Name: "Aula", Location: "Gedung A", Capacity: 200, Status: "Tidak Tersedia"},
		},
		Total: 2,
	}, nil).Times(1)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms?search=Lab", nil))

	body := rec.Body.String()

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, "Lab A")
	assert.Contains(t, body, "bg-green-100 text-green-800")
	assert.Contains(t, body, "bg-red-100 text-red-800")
	assert.Contains(t, body, "Kapasitas: 30 orang")
	assert.NotContains(t, body, `role="dialog"`)
}

func TestHandler_Index_Modal(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		setup    func(svc *serviceMocks.MockRoom)
		contains []string
	}{
		{
			name:     "create modal defaults to available",
			query:    "modal=create",
			setup:    func(svc *serviceMocks.MockRoom) {},
			contains: []string{"Tambah Ruangan", `action="/rooms"`, `<option value="Tersedia" selected>`},
		},
		{
			name:  "edit modal is filled from the stored room",
			query: "modal=edit&id=3",
			setup: func(svc *serviceMocks.MockRoom) {
				svc.EXPECT().Get(gomock.Any(), int64(3)).
					Return(model.Room{ID: 3, Name: "Ruang Rapat", Location: "Lantai 2", Capacity: 12, Status: "Tidak Tersedia"}, nil)
			},
			contains: []string{"Edit Ruangan", `action="/rooms/3"`, `value="Ruang Rapat"`, `<option value="Tidak Tersedia" selected>`},
		},
		{
			name:  "edit modal keeps a status outside the usual two",
			query: "modal=edit&id=5",
			setup: func(svc *serviceMocks.MockRoom) {
				svc.EXPECT().Get(gomock.Any(), int64(5)).
					Return(model.Room{ID: 5, Name: "Lab C", Location: "Gedung C", Capacity: 20, Status: "Dalam Perbaikan"}, nil)
			},
			contains: []string{`<option value="Dalam Perbaikan" selected>Dalam Perbaikan</option>`, `<option value="Tersedia" >Tersedia</option>`},
		},
		{
			name:  "failed lookup shows an error without a modal",
			query: "modal=edit&id=9",
			setup: func(svc *serviceMocks.MockRoom) {
				svc.EXPECT().Get(gomock.Any(), int64(9)).Return(model.Room{}, failure.NotFound("Room not found"))
			},
			contains: []string{"Room not found"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)

			svc.EXPECT().GetAll(gomock.Any(), defaultFilter).Return(gDto.ListResult[model.Room]{Items: []model.Room{}}, nil)
			tt.setup(svc)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms?"+tt.query, nil))

			assert.Equal(t, http.StatusOK, rec.Code)

			for _, s := range tt.contains {
				assert.Contains(t, rec.Body.String(), s)
			}
		})
	}
}

func TestHandler_Create(t *testing.T) {
	tests := []struct {
		name         string
		form         url.Values
		setup        func(svc *serviceMocks.MockRoom)
		wantStatus   int
		wantLocation string
		wantBody     []string
	}{
		{
			name: "created room redirects with a notice",
			form: url.Values{"name": {"Lab A"}, "location": {"Gedung B"}, "capacity": {"30"}, "status": {"Tersedia"}},
			setup: func(svc *serviceMocks.MockRoom) {
				svc.EXPECT().Create(gomock.Any(), dto.RoomRequest{Name: "Lab A", Location: "Gedung B", Capacity: 30, Status: "Tersedia"}).Return(nil)
			},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/rooms?notice=room_created",
		},
		{
			name: "invalid form keeps the modal open",
			form: url.Values{"name": {"Lab A"}, "location": {"Gedung B"}, "capacity": {"0"}},
			setup: func(svc *serviceMocks.MockRoom) {
				svc.EXPECT().GetAll(gomock.Any(), defaultFilter).Return(gDto.ListResult[model.Room]{Items: []model.Room{}}, nil)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   []string{"Kapasitas harus lebih dari 0", `value="Lab A"`, "Tambah Ruangan"},
		},
		{
			name: "server rejection is shown in the modal",
			form: url.Values{"name": {"Lab A"}, "location": {"Gedung B"}, "capacity": {"30"}},
			setup: func(svc *serviceMocks.MockRoom) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(failure.FromStatus(http.StatusConflict, "Nama ruangan sudah dipakai"))
				svc.EXPECT().GetAll(gomock.Any(), defaultFilter).Return(gDto.ListResult[model.Room]{Items: []model.Room{}}, nil)
			},
			wantStatus: http.StatusConflict,
			wantBody:   []string{"Nama ruangan sudah dipakai", `role="dialog"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setup(svc)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, postForm("/rooms", tt.form))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))

			for _, s := range tt.wantBody {
				assert.Contains(t, rec.Body.String(), s)
			}
		})
	}
}

func TestHandler_UpdateDelete(t *testing.T) {
	router, svc := newRouter(t)

	req := dto.RoomRequest{Name: "Aula", Location: "Gedung A", Capacity: 200, Status: "Tidak Tersedia"}

	gomock.InOrder(
		svc.EXPECT().Update(gomock.Any(), int64(4), req).Return(nil),
		svc.EXPECT().Delete(gomock.Any(), int64(4)).Return(nil),
	)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, postForm("/rooms/4", url.Values{
		"name": {"Aula"}, "location": {"Gedung A"}, "capacity": {"200"}, "status": {"Tidak Tersedia"},
	}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/rooms?notice=room_updated", rec.Header().Get("Location"))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, postForm("/rooms/4/delete", url.Values{}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/rooms?notice=room_deleted", rec.Header().Get("Location"))
}

func TestHandler_Delete_Failure(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Delete(gomock.Any(), int64(4)).Return(fmt.Errorf("failed to call booking api: %w", assert.AnError))
	svc.EXPECT().GetAll(gomock.Any(), defaultFilter).Return(gDto.ListResult[model.Room]{Items: []model.Room{}}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, postForm("/rooms/4/delete", url.Values{}))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Gagal menghapus ruangan")
}

func TestHandler_Unauthenticated(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().GetAll(gomock.Any(), gomock.Any()).Return(gDto.ListResult[model.Room]{}, fmt.Errorf("failed to get rooms: %w", api.ErrUnauthenticated))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login?notice=session_expired", rec.Header().Get("Location"))
	assert.Contains(t, rec.Header().Get("Set-Cookie"), "borrowdung_session=;")
	assert.Contains(t, rec.Header().Get("Set-Cookie"), "Max-Age=0")
}

func TestHandler_Update_KeepsCustomStatus(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Update(gomock.Any(), int64(5),
		dto.RoomRequest{Name: "Lab C", Location: "Gedung C", Capacity: 20, Status: "Dalam Perbaikan"}).Return(nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, postForm("/rooms/5", url.Values{
		"name": {"Lab C"}, "location": {"Gedung C"}, "capacity": {"20"}, "status": {"Dalam Perbaikan"},
	}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/rooms?notice=room_updated", rec.Header().Get("Location"))
}

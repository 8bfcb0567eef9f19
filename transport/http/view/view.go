// Package view renders the console's HTML pages and owns the browser-facing
// side of a session: its cookie and the redirects that follow a mutation.
package view

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"net/url"

	"borrowdung/config"
	"borrowdung/infras/api"
	authModel "borrowdung/internal/domains/auth/model"
	bookingModel "borrowdung/internal/domains/booking/model"
	sessionModel "borrowdung/internal/domains/session/model"
	"borrowdung/shared"
	"borrowdung/shared/constant"
	"borrowdung/shared/format"
	"borrowdung/shared/logger"

	"github.com/rs/zerolog/log"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	PageLogin     = "login"
	PageRegister  = "register"
	PageDashboard = "dashboard"
	PageRooms     = "rooms"
	PageBookings  = "bookings"
	PageHistory   = "history"
	PageProfile   = "profile"
)

var pages = []string{PageLogin, PageRegister, PageDashboard, PageRooms, PageBookings, PageHistory, PageProfile}

const (
	NoticeRoomCreated     = "room_created"
	NoticeRoomUpdated     = "room_updated"
	NoticeRoomDeleted     = "room_deleted"
	NoticeBookingCreated  = "booking_created"
	NoticeBookingUpdated  = "booking_updated"
	NoticeBookingApproved = "booking_approved"
	NoticeBookingRejected = "booking_rejected"
	NoticeBookingDeleted  = "booking_deleted"
	NoticeRegistered      = "registered"
	NoticeLoggedOut       = "logged_out"
	NoticeSessionExpired  = "session_expired"
	NoticeProfileUpdated  = "profile_updated"
)

var notices = map[string]string{
	NoticeRoomCreated:     "Ruangan berhasil ditambahkan!",
	NoticeRoomUpdated:     "Ruangan berhasil diupdate!",
	NoticeRoomDeleted:     "Ruangan berhasil dihapus!",
	NoticeBookingCreated:  "Booking berhasil dibuat!",
	NoticeBookingUpdated:  "Booking berhasil diupdate!",
	NoticeBookingApproved: "Booking berhasil disetujui!",
	NoticeBookingRejected: "Booking berhasil ditolak!",
	NoticeBookingDeleted:  "Booking berhasil dihapus!",
	NoticeRegistered:      "Registrasi berhasil! Silakan login dengan akun Anda.",
	NoticeLoggedOut:       "Anda telah keluar.",
	NoticeSessionExpired:  "Sesi Anda telah berakhir, silakan login kembali.",
	NoticeProfileUpdated:  "Profil berhasil dimuat ulang.",
}

// Page is the data every template receives. Data holds the page's own model.
type Page struct {
	Title   string
	Active  string
	AppName string
	User    *authModel.User
	Notice  string
	Error   string
	Data    any
}

type View interface {
	Render(w http.ResponseWriter, r *http.Request, status int, name string, page Page)
	// Redirect answers a form submission with 303 See Other, optionally
	// carrying a notice key for the next page.
	Redirect(w http.ResponseWriter, r *http.Request, target, notice string)
	// Unauthenticated handles an error that ended the session. It reports
	// whether it wrote the response.
	Unauthenticated(w http.ResponseWriter, r *http.Request, err error) bool
	SetSessionCookie(w http.ResponseWriter, value string)
	ClearSessionCookie(w http.ResponseWriter)
}

type viewImpl struct {
	cfg       *config.Config
	templates map[string]*template.Template
}

var funcs = template.FuncMap{
	"formatDate":         format.Date,
	"formatDateTime":     format.DateTime,
	"formatTime":         format.Time,
	"dateTimeInput":      format.DateTimeInput,
	"bookingStatusText":  format.BookingStatusText,
	"bookingStatusColor": format.BookingStatusColor,
	"roomStatusColor":    format.RoomStatusColor,
	"deref":              shared.Deref,
	"statuses":           bookingModel.Statuses,
}

func New(cfg *config.Config) View {
	templates := make(map[string]*template.Template, len(pages))

	for _, name := range pages {
		templates[name] = template.Must(
			template.New(name).Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", "templates/"+name+".html"),
		)
	}

	return &viewImpl{
		cfg:       cfg,
		templates: templates,
	}
}

func (v *viewImpl) Render(w http.ResponseWriter, r *http.Request, status int, name string, page Page) {
	tmpl, ok := v.templates[name]
	if !ok {
		log.Error().Str("page", name).Msg("unknown page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	page.AppName = v.cfg.App.Name

	if page.User == nil {
		if session := sessionModel.FromContext(r.Context()); session.Authenticated() {
			user := session.User
			page.User = &user
		}
	}

	if page.Notice == constant.Empty {
		page.Notice = notices[r.URL.Query().Get(constant.RequestParamNotice)]
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", page); err != nil {
		logger.ErrorWithStack(err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeHTML)
	w.WriteHeader(status)

	if _, err := buf.WriteTo(w); err != nil {
		log.Warn().Err(err).Str("page", name).Msg("failed to write page")
	}
}

func (v *viewImpl) Redirect(w http.ResponseWriter, r *http.Request, target, notice string) {
	if notice != constant.Empty {
		u, err := url.Parse(target)
		if err == nil {
			query := u.Query()
			query.Set(constant.RequestParamNotice, notice)
			u.RawQuery = query.Encode()
			target = u.String()
		}
	}

	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (v *viewImpl) Unauthenticated(w http.ResponseWriter, r *http.Request, err error) bool {
	if !errors.Is(err, api.ErrUnauthenticated) {
		return false
	}

	v.ClearSessionCookie(w)
	v.Redirect(w, r, constant.RouteLogin, NoticeSessionExpired)

	return true
}

func (v *viewImpl) SetSessionCookie(w http.ResponseWriter, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     v.cfg.Session.CookieName,
		Value:    value,
		Path:     constant.RouteHome,
		MaxAge:   v.cfg.Session.TTLSeconds,
		HttpOnly: true,
		Secure:   v.cfg.Session.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func (v *viewImpl) ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     v.cfg.Session.CookieName,
		Value:    constant.Empty,
		Path:     constant.RouteHome,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   v.cfg.Session.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

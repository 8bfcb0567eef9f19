package auth

import (
	"net/http"

	"borrowdung/infras/otel"
	"borrowdung/internal/domains/auth/model/dto"
	"borrowdung/internal/domains/auth/service"
	sessionModel "borrowdung/internal/domains/session/model"
	sessionService "borrowdung/internal/domains/session/service"
	"borrowdung/shared/constant"
	"borrowdung/shared/failure"
	"borrowdung/shared/validator"
	"borrowdung/transport/http/view"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// LoginPage keeps the username across a failed attempt. The password is
// never rendered back.
type LoginPage struct {
	Username string
}

type RegisterPage struct {
	FullName string
	Username string
	Email    string
}

type Handler struct {
	service        service.Auth
	sessionService sessionService.Session
	view           view.View
	otel           otel.Otel
}

func New(service service.Auth, sessionService sessionService.Session, view view.View, otel otel.Otel) Handler {
	return Handler{
		service:        service,
		sessionService: sessionService,
		view:           view,
		otel:           otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get(constant.RouteLogin, handler.LoginForm)
	router.Post(constant.RouteLogin, handler.Login)
	router.Get(constant.RouteRegister, handler.RegisterForm)
	router.Post(constant.RouteRegister, handler.Register)
	router.Post(constant.RouteLogout, handler.Logout)
	router.Get(constant.RouteProfile, handler.Profile)
}

func (handler *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if sessionModel.FromContext(r.Context()).Authenticated() {
		handler.view.Redirect(w, r, constant.RouteHome, constant.Empty)

		return
	}

	handler.renderLogin(w, r, http.StatusOK, LoginPage{}, constant.Empty)
}

func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	err := validator.Decode(r, &req)
	if err != nil {
		handler.renderLogin(w, r, failure.GetCode(err), LoginPage{Username: req.Username}, failure.Message(err, "Login gagal"))

		return
	}

	// A sign-in never carries a previous session's token.
	_, cookie, err := handler.sessionService.Login(sessionModel.WithSession(ctx, nil), req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("username", req.Username).Msg("failed to sign in")

		handler.renderLogin(w, r, failure.GetCode(err), LoginPage{Username: req.Username}, failure.Message(err, "Login gagal. Periksa username dan password Anda."))

		return
	}

	handler.view.SetSessionCookie(w, cookie)
	handler.view.Redirect(w, r, constant.RouteHome, constant.Empty)
}

func (handler *Handler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	if sessionModel.FromContext(r.Context()).Authenticated() {
		handler.view.Redirect(w, r, constant.RouteHome, constant.Empty)

		return
	}

	handler.renderRegister(w, r, http.StatusOK, RegisterPage{}, constant.Empty)
}

func (handler *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Register")
	defer scope.End()

	req := dto.RegisterRequest{}

	err := validator.Decode(r, &req)
	if err == nil {
		err = handler.service.Register(ctx, req)
	}

	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("username", req.Username).Msg("failed to register")

		page := RegisterPage{FullName: req.FullName, Username: req.Username, Email: req.Email}
		handler.renderRegister(w, r, failure.GetCode(err), page, failure.Message(err, "Registrasi gagal"))

		return
	}

	handler.view.Redirect(w, r, constant.RouteLogin, view.NoticeRegistered)
}

// Logout always clears the cookie, even when the stored session could not be
// removed.
func (handler *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	if err := handler.sessionService.Logout(ctx, sessionModel.FromContext(ctx)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to sign out")
	}

	handler.view.ClearSessionCookie(w)
	handler.view.Redirect(w, r, constant.RouteLogin, view.NoticeLoggedOut)
}

// Profile reloads the user from the API. When that fails the stored profile
// is shown with the error.
func (handler *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Profile")
	defer scope.End()

	session := sessionModel.FromContext(ctx)
	if session == nil {
		handler.view.Redirect(w, r, constant.RouteLogin, constant.Empty)

		return
	}

	errMsg := constant.Empty

	user, err := handler.sessionService.RefreshProfile(ctx, session)
	if err != nil {
		if handler.view.Unauthenticated(w, r, err) {
			return
		}

		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to refresh profile")

		user = session.User
		errMsg = failure.Message(err, "Gagal memuat profil")
	}

	handler.view.Render(w, r, http.StatusOK, view.PageProfile, view.Page{
		Title:  "Profil",
		Active: "profile",
		User:   &user,
		Error:  errMsg,
		Data:   user,
	})
}

func (handler *Handler) renderLogin(w http.ResponseWriter, r *http.Request, status int, page LoginPage, errMsg string) {
	handler.view.Render(w, r, status, view.PageLogin, view.Page{
		Title: "Login",
		Error: errMsg,
		Data:  page,
	})
}

func (handler *Handler) renderRegister(w http.ResponseWriter, r *http.Request, status int, page RegisterPage, errMsg string) {
	handler.view.Render(w, r, status, view.PageRegister, view.Page{
		Title: "Daftar",
		Error: errMsg,
		Data:  page,
	})
}

package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"borrowdung/infras/jwt"
	"borrowdung/infras/otel"
	authModel "borrowdung/internal/domains/auth/model"
	authDto "borrowdung/internal/domains/auth/model/dto"
	authRepo "borrowdung/internal/domains/auth/repository"
	"borrowdung/internal/domains/session/model"
	"borrowdung/internal/domains/session/repository"
	"borrowdung/shared/constant"
	"borrowdung/shared/validator"

	"github.com/rs/zerolog/log"
)

// AuthFailure reacts to the booking API rejecting a session's token.
type AuthFailure interface {
	HandleAuthFailure(ctx context.Context, session *model.Session) error
}

type Session interface {
	AuthFailure
	// Login returns the new session and the signed cookie value naming it.
	Login(ctx context.Context, req authDto.LoginRequest) (*model.Session, string, error)
	Logout(ctx context.Context, session *model.Session) error
	// Restore resolves a cookie value to its stored session. Anonymous
	// requests get a nil session and no error.
	Restore(ctx context.Context, cookie string) (*model.Session, error)
	RefreshProfile(ctx context.Context, session *model.Session) (authModel.User, error)
}

type authFailureImpl struct {
	repo repository.Session
}

func NewAuthFailure(repo repository.Session) AuthFailure {
	return &authFailureImpl{repo: repo}
}

// HandleAuthFailure clears the stored session once, however many requests
// observe the rejection.
func (a *authFailureImpl) HandleAuthFailure(ctx context.Context, session *model.Session) error {
	cleared, err := a.repo.Invalidate(ctx, session)
	if err != nil {
		log.Error().Err(err).Msg("failed to clear expired session")

		return fmt.Errorf("failed to clear expired session: %w", err)
	}

	if cleared {
		log.Info().Str("session", session.ID).Str("username", session.User.Username).Msg("session expired, signed out")
	}

	return nil
}

type serviceImpl struct {
	AuthFailure
	authRepo authRepo.Auth
	repo     repository.Session
	jwt      jwt.JWT
	otel     otel.Otel
}

func New(authRepo authRepo.Auth, repo repository.Session, authFailure AuthFailure, jwt jwt.JWT, otel otel.Otel) Session {
	return &serviceImpl{
		AuthFailure: authFailure,
		authRepo:    authRepo,
		repo:        repo,
		jwt:         jwt,
		otel:        otel,
	}
}

func (s *serviceImpl) Login(ctx context.Context, req authDto.LoginRequest) (res *model.Session, cookie string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return nil, "", err
	}

	login, err := s.authRepo.Login(ctx, req)
	if err != nil {
		return nil, "", err
	}

	sessionID, cookie, err := s.jwt.NewSession()
	if err != nil {
		log.Error().Err(err).Msg("failed to create session")

		return nil, "", fmt.Errorf("failed to create session: %w", err)
	}

	res = model.New(sessionID, login.Token, login.ToUser())

	if err = s.repo.Save(ctx, res); err != nil {
		log.Error().Err(err).Msg("failed to store session")

		return nil, "", fmt.Errorf("failed to store session: %w", err)
	}

	log.Info().Str("username", res.User.Username).Str("role", res.User.Role).Msg("signed in")

	return res, cookie, nil
}

func (s *serviceImpl) Logout(ctx context.Context, session *model.Session) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if session == nil {
		return nil
	}

	if err = s.repo.Delete(ctx, session.ID); err != nil {
		log.Error().Err(err).Msg("failed to delete session")

		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

func (s *serviceImpl) Restore(ctx context.Context, cookie string) (res *model.Session, err error) {
	if cookie == constant.Empty {
		return nil, nil
	}

	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Restore")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	claims, err := s.jwt.ParseSession(cookie)
	if err != nil {
		log.Debug().Err(err).Msg("ignoring invalid session cookie")

		return nil, nil
	}

	res, err = s.repo.Get(ctx, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) RefreshProfile(ctx context.Context, session *model.Session) (res authModel.User, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshProfile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = s.authRepo.Me(model.WithSession(ctx, session))
	if err != nil {
		return res, err
	}

	session.User = res

	if err = s.repo.SaveUser(ctx, session.ID, res); err != nil {
		return res, fmt.Errorf("failed to store profile: %w", err)
	}

	return res, nil
}

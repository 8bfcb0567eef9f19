package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/http"

	"borrowdung/infras/api"
	"borrowdung/infras/otel"
	"borrowdung/internal/domains/auth/model"
	"borrowdung/internal/domains/auth/model/dto"
	"borrowdung/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	pathLogin    = "/Auth/login"
	pathRegister = "/Auth/register"
	pathMe       = "/Auth/me"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	Register(ctx context.Context, req dto.RegisterRequest) error
	Me(ctx context.Context) (model.User, error)
}

type repositoryImpl struct {
	client api.Client
	otel   otel.Otel
}

func New(client api.Client, otel otel.Otel) Auth {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Auth.Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = r.client.Do(ctx, api.Request{Method: http.MethodPost, Path: pathLogin, Body: req}, &res); err != nil {
		log.Warn().Err(err).Str("username", req.Username).Msg("login rejected by booking api")

		return res, fmt.Errorf("failed to login: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Register(ctx context.Context, req dto.RegisterRequest) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Auth.Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = r.client.Do(ctx, api.Request{Method: http.MethodPost, Path: pathRegister, Body: req}, nil); err != nil {
		log.Error().Err(err).Str("username", req.Username).Msg("failed to register account")

		return fmt.Errorf("failed to register account: %w", err)
	}

	return nil
}

func (r *repositoryImpl) Me(ctx context.Context) (res model.User, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Auth.Me")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = r.client.Do(ctx, api.Request{Method: http.MethodGet, Path: pathMe}, &res); err != nil {
		log.Error().Err(err).Msg("failed to get current user")

		return res, fmt.Errorf("failed to get current user: %w", err)
	}

	return res, nil
}

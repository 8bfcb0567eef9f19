package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"borrowdung/infras/otel"
	"borrowdung/internal/domains/auth/model/dto"
	"borrowdung/internal/domains/auth/repository"
	"borrowdung/shared/constant"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) error
}

type serviceImpl struct {
	repo repository.Auth
	otel otel.Otel
}

func New(repo repository.Auth, otel otel.Otel) Auth {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// Register validates the form locally and only then submits the account.
func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = req.Validate(); err != nil {
		return err
	}

	if err = s.repo.Register(ctx, req); err != nil {
		log.Error().Err(err).Str("username", req.Username).Msg("failed to register")

		return fmt.Errorf("failed to register: %w", err)
	}

	log.Info().Str("username", req.Username).Msg("account registered")

	return nil
}

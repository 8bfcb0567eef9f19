package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"borrowdung/infras/otel"
	"borrowdung/internal/domains/room/model"
	"borrowdung/internal/domains/room/model/dto"
	"borrowdung/internal/domains/room/repository"
	"borrowdung/shared/constant"
	gDto "borrowdung/shared/dto"

	"github.com/rs/zerolog/log"
)

type Room interface {
	GetAll(ctx context.Context, filter dto.Filter) (gDto.ListResult[model.Room], error)
	Get(ctx context.Context, id int64) (model.Room, error)
	Create(ctx context.Context, req dto.RoomRequest) error
	Update(ctx context.Context, id int64, req dto.RoomRequest) error
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo repository.Room
	otel otel.Otel
}

func New(repo repository.Room, otel otel.Otel) Room {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, filter dto.Filter) (res gDto.ListResult[model.Room], err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Room.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("filter.search", filter.Search)

	return s.repo.GetAll(ctx, filter)
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Room.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.repo.Get(ctx, id)
}

func (s *serviceImpl) Create(ctx context.Context, req dto.RoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Room.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err := s.repo.Insert(ctx, req.ToPayload())
	if err != nil {
		return err
	}

	log.Info().Int64("id", room.ID).Str("name", room.Name).Msg("room created")

	return nil
}

func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.RoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Room.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.repo.Update(ctx, id, req.ToPayload()); err != nil {
		return err
	}

	log.Info().Int64("id", id).Msg("room updated")

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Room.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete room %d: %w", id, err)
	}

	log.Info().Int64("id", id).Msg("room deleted")

	return nil
}

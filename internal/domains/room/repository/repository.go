package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"borrowdung/infras/api"
	"borrowdung/infras/otel"
	"borrowdung/internal/domains/room/model"
	"borrowdung/internal/domains/room/model/dto"
	"borrowdung/shared/constant"
	gDto "borrowdung/shared/dto"

	"github.com/rs/zerolog/log"
)

const pathRooms = "/Rooms"

type Room interface {
	GetAll(ctx context.Context, filter dto.Filter) (gDto.ListResult[model.Room], error)
	Get(ctx context.Context, id int64) (model.Room, error)
	Insert(ctx context.Context, payload dto.Payload) (model.Room, error)
	Update(ctx context.Context, id int64, payload dto.Payload) (model.Room, error)
	Delete(ctx context.Context, id int64) error
}

type repositoryImpl struct {
	client api.Client
	otel   otel.Otel
}

func New(client api.Client, otel otel.Otel) Room {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func roomPath(id int64) string {
	return pathRooms + "/" + strconv.FormatInt(id, 10)
}

func (r *repositoryImpl) GetAll(ctx context.Context, filter dto.Filter) (res gDto.ListResult[model.Room], err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Room.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var rooms []model.Room

	header, err := r.client.Do(ctx, api.Request{Method: http.MethodGet, Path: pathRooms, Query: filter.Encode()}, &rooms)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	return gDto.NewListResult(rooms, header), nil
}

func (r *repositoryImpl) Get(ctx context.Context, id int64) (res model.Room, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Room.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = r.client.Do(ctx, api.Request{Method: http.MethodGet, Path: roomPath(id)}, &res); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Insert(ctx context.Context, payload dto.Payload) (res model.Room, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Room.Insert")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = r.client.Do(ctx, api.Request{Method: http.MethodPost, Path: pathRooms, Body: payload}, &res); err != nil {
		log.Error().Err(err).Msg("failed to create room")

		return res, fmt.Errorf("failed to create room: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Update(ctx context.Context, id int64, payload dto.Payload) (res model.Room, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Room.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = r.client.Do(ctx, api.Request{Method: http.MethodPut, Path: roomPath(id), Body: payload}, &res); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update room")

		return res, fmt.Errorf("failed to update room: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Room.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = r.client.Do(ctx, api.Request{Method: http.MethodDelete, Path: roomPath(id)}, nil); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	return nil
}

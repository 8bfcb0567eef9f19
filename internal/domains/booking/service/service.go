package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"strings"

	"borrowdung/infras/otel"
	"borrowdung/internal/domains/booking/model"
	"borrowdung/internal/domains/booking/model/dto"
	"borrowdung/internal/domains/booking/repository"
	"borrowdung/shared/constant"
	gDto "borrowdung/shared/dto"
	"borrowdung/shared/failure"

	"github.com/rs/zerolog/log"
)

const ErrRejectionReasonRequired = "Alasan penolakan harus diisi!"

type Booking interface {
	GetAll(ctx context.Context, filter dto.Filter) (gDto.ListResult[model.Booking], error)
	History(ctx context.Context, filter dto.Filter) (gDto.ListResult[model.Booking], error)
	Get(ctx context.Context, id int64) (model.Booking, error)
	Create(ctx context.Context, req dto.BookingRequest) error
	Update(ctx context.Context, id int64, req dto.BookingRequest) error
	Approve(ctx context.Context, id int64) error
	// Reject requires a non-blank reason and makes no call without one.
	Reject(ctx context.Context, id int64, reason string) error
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo repository.Booking
	otel otel.Otel
}

func New(repo repository.Booking, otel otel.Otel) Booking {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, filter dto.Filter) (res gDto.ListResult[model.Booking], err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"filter.search": filter.Search,
		"filter.status": filter.StatusValue(),
	})

	return s.repo.GetAll(ctx, filter)
}

func (s *serviceImpl) History(ctx context.Context, filter dto.Filter) (res gDto.ListResult[model.Booking], err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.History")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.repo.History(ctx, filter)
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.repo.Get(ctx, id)
}

func (s *serviceImpl) Create(ctx context.Context, req dto.BookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.repo.Insert(ctx, req.ToPayload())
	if err != nil {
		return err
	}

	log.Info().Int64("id", booking.ID).Int64("roomId", req.RoomID).Msg("booking created")

	return nil
}

func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.BookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.repo.Update(ctx, id, req.ToPayload()); err != nil {
		return err
	}

	log.Info().Int64("id", id).Msg("booking updated")

	return nil
}

func (s *serviceImpl) Approve(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Approve")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.repo.UpdateStatus(ctx, id, dto.StatusRequest{Status: model.StatusApproved}); err != nil {
		return err
	}

	log.Info().Int64("id", id).Msg("booking approved")

	return nil
}

func (s *serviceImpl) Reject(ctx context.Context, id int64, reason string) (err error) {
	if strings.TrimSpace(reason) == constant.Empty {
		return failure.BadRequestFromString(ErrRejectionReasonRequired) //nolint:wrapcheck
	}

	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Reject")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req := dto.StatusRequest{Status: model.StatusRejected, RejectionReason: &reason}
	if _, err = s.repo.UpdateStatus(ctx, id, req); err != nil {
		return err
	}

	log.Info().Int64("id", id).Msg("booking rejected")

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Int64("id", id).Msg("booking deleted")

	return nil
}

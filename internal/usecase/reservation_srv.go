package usecase

import (
	"context"
	"time"

	"github.com/alekscortez/ff-reservations-sub000/internal/data/entity"
	"github.com/alekscortez/ff-reservations-sub000/internal/data/repository"
	"github.com/alekscortez/ff-reservations-sub000/internal/dto/request"
	"github.com/alekscortez/ff-reservations-sub000/internal/dto/response"
	"github.com/alekscortez/ff-reservations-sub000/pkg/utils"

	"go.uber.org/zap"
)

type ReservationService interface {
	// CreateReservation converts a live hold into a confirmed reservation
	// and returns the new reservation ID. The lock and reservation rows are
	// the durable proof of success.
	CreateReservation(ctx context.Context, actor string, isAdmin bool, req *request.CreateReservationRequest) (string, error)
	CancelReservation(ctx context.Context, actor, eventDate, reservationID string, req *request.CancelReservationRequest) error
	GetReservation(ctx context.Context, eventDate, reservationID string) (*response.ReservationResponse, error)
	ListReservations(ctx context.Context, eventDate string) ([]*response.ReservationResponse, error)
}

type reservationService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReservationService(repo *repository.Repository, log *zap.Logger) ReservationService {
	return &reservationService{
		repo: repo,
		log:  log.With(zap.String("service", "reservation")),
	}
}

func (s *reservationService) CreateReservation(ctx context.Context, actor string, isAdmin bool, req *request.CreateReservationRequest) (string, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create reservation validation failed", zap.Any("errors", errs))
		return "", utils.ValidationErrorf("%s", utils.FormatValidationErrors(errs))
	}

	event, err := s.repo.Event.FindByDate(ctx, req.EventDate)
	if err != nil {
		return "", err
	}
	if event == nil {
		return "", utils.NotFoundErrorf("no event for date %s", req.EventDate)
	}

	// privileged callers may take a deposit below the event floor
	if !isAdmin && req.DepositAmount < event.MinDeposit {
		return "", utils.ValidationErrorf("deposit %.2f is below the event minimum %.2f", req.DepositAmount, event.MinDeposit)
	}

	now := time.Now()
	reservation := &entity.Reservation{
		ReservationID: utils.GenerateReservationID(),
		EventDate:     req.EventDate,
		TableID:       req.TableID,
		CustomerName:  req.CustomerName,
		Phone:         req.Phone,
		DepositAmount: req.DepositAmount,
		PaymentMethod: req.PaymentMethod,
		Status:        entity.ReservationStatusConfirmed,
		CreatedAt:     now,
		CreatedBy:     actor,
	}

	if err := s.repo.Reservation.ConvertHold(ctx, reservation, req.HoldID, now); err != nil {
		return "", err
	}

	s.log.Info("Reservation created",
		zap.String("reservation_id", reservation.ReservationID),
		zap.String("event_date", reservation.EventDate),
		zap.String("table_id", reservation.TableID),
		zap.Float64("deposit", reservation.DepositAmount),
		zap.String("created_by", actor),
	)

	return reservation.ReservationID, nil
}

func (s *reservationService) CancelReservation(ctx context.Context, actor, eventDate, reservationID string, req *request.CancelReservationRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Cancel reservation validation failed", zap.Any("errors", errs))
		return utils.ValidationErrorf("%s", utils.FormatValidationErrors(errs))
	}
	if _, err := time.Parse("2006-01-02", eventDate); err != nil {
		return utils.ValidationErrorf("invalid date %s", eventDate)
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, eventDate, reservationID)
	if err != nil {
		return err
	}
	if reservation == nil {
		return utils.NotFoundErrorf("reservation %s not found", reservationID)
	}

	// step 1 is authoritative: the conditioned status flip guards against
	// double cancellation
	if err := s.repo.Reservation.Cancel(ctx, eventDate, reservationID, req.Reason, actor, time.Now()); err != nil {
		return err
	}

	s.log.Info("Reservation cancelled",
		zap.String("reservation_id", reservationID),
		zap.String("event_date", eventDate),
		zap.String("cancelled_by", actor),
		zap.String("reason", req.Reason),
	)

	// step 2 is best-effort lock cleanup; a failed precondition is already
	// swallowed by the repository, anything else still surfaces
	if err := s.repo.Lock.ReleaseReserved(ctx, eventDate, req.TableID, reservationID); err != nil {
		return utils.InternalErrorf("reservation %s cancelled but lock cleanup failed: %v", reservationID, err)
	}

	return nil
}

func (s *reservationService) GetReservation(ctx context.Context, eventDate, reservationID string) (*response.ReservationResponse, error) {
	reservation, err := s.repo.Reservation.FindByID(ctx, eventDate, reservationID)
	if err != nil {
		return nil, err
	}
	if reservation == nil {
		return nil, utils.NotFoundErrorf("reservation %s not found", reservationID)
	}

	return buildReservationResponse(reservation), nil
}

func (s *reservationService) ListReservations(ctx context.Context, eventDate string) ([]*response.ReservationResponse, error) {
	if _, err := time.Parse("2006-01-02", eventDate); err != nil {
		return nil, utils.ValidationErrorf("invalid date %s", eventDate)
	}

	reservations, err := s.repo.Reservation.ListByDate(ctx, eventDate)
	if err != nil {
		return nil, err
	}

	out := make([]*response.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, buildReservationResponse(r))
	}
	return out, nil
}

func buildReservationResponse(r *entity.Reservation) *response.ReservationResponse {
	return &response.ReservationResponse{
		ReservationID: r.ReservationID,
		EventDate:     r.EventDate,
		TableID:       r.TableID,
		CustomerName:  r.CustomerName,
		Phone:         r.Phone,
		DepositAmount: r.DepositAmount,
		PaymentMethod: r.PaymentMethod,
		Status:        string(r.Status),
		CreatedAt:     r.CreatedAt,
		CancelReason:  r.CancelReason,
		CancelledAt:   r.CancelledAt,
		CancelledBy:   r.CancelledBy,
	}
}

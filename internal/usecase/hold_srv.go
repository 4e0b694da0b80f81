package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/alekscortez/ff-reservations-sub000/internal/data/entity"
	"github.com/alekscortez/ff-reservations-sub000/internal/data/repository"
	"github.com/alekscortez/ff-reservations-sub000/internal/dto/request"
	"github.com/alekscortez/ff-reservations-sub000/internal/dto/response"
	"github.com/alekscortez/ff-reservations-sub000/pkg/utils"

	"go.uber.org/zap"
)

type HoldService interface {
	CreateHold(ctx context.Context, actor string, req *request.CreateHoldRequest) (*response.HoldResponse, error)
	ReleaseHold(ctx context.Context, eventDate, tableID string) error
	ListLocks(ctx context.Context, eventDate string) ([]*entity.TableLock, error)
}

type holdService struct {
	repo    *repository.Repository
	holdTTL time.Duration
	log     *zap.Logger
}

func NewHoldService(repo *repository.Repository, config *utils.Config, log *zap.Logger) HoldService {
	return &holdService{
		repo:    repo,
		holdTTL: time.Duration(config.Reservation.HoldTTLSeconds) * time.Second,
		log:     log.With(zap.String("service", "hold")),
	}
}

func (s *holdService) CreateHold(ctx context.Context, actor string, req *request.CreateHoldRequest) (*response.HoldResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create hold validation failed", zap.Any("errors", errs))
		return nil, utils.ValidationErrorf("%s", utils.FormatValidationErrors(errs))
	}

	event, err := s.repo.Event.FindByDate(ctx, req.EventDate)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, utils.NotFoundErrorf("no event for date %s", req.EventDate)
	}

	if _, ok := entity.FindTable(req.TableID); !ok {
		return nil, utils.ValidationErrorf("unknown table %s", req.TableID)
	}

	if event.HasDisabledTable(req.TableID) {
		return nil, utils.ConflictErrorf("table %s is disabled for this event", req.TableID)
	}

	clients, err := s.repo.Client.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if DisabledFromFrequentClients(clients, event)[req.TableID] {
		return nil, utils.ConflictErrorf("table %s is reserved for a frequent client", req.TableID)
	}

	now := time.Now()
	lock := &entity.TableLock{
		EventDate:    req.EventDate,
		TableID:      req.TableID,
		LockType:     entity.LockTypeHold,
		HoldID:       utils.GenerateHoldID(),
		ExpiresAt:    now.Add(s.holdTTL).Unix(),
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		CreatedAt:    now,
		CreatedBy:    actor,
	}

	err = s.repo.Lock.AcquireHold(ctx, lock, now)
	if errors.Is(err, utils.ErrConflict) {
		// a RESERVED slot whose reservation was cancelled is stale (the
		// cancellation's lock cleanup is best-effort); reclaim it once
		if reclaimed := s.reclaimStaleReserved(ctx, req.EventDate, req.TableID); reclaimed {
			err = s.repo.Lock.AcquireHold(ctx, lock, now)
		}
	}
	if err != nil {
		return nil, err
	}

	s.log.Info("Hold created",
		zap.String("hold_id", lock.HoldID),
		zap.String("event_date", lock.EventDate),
		zap.String("table_id", lock.TableID),
		zap.Int64("expires_at", lock.ExpiresAt),
		zap.String("created_by", actor),
	)

	return &response.HoldResponse{
		HoldID:    lock.HoldID,
		EventDate: lock.EventDate,
		TableID:   lock.TableID,
		ExpiresAt: lock.ExpiresAt,
	}, nil
}

// reclaimStaleReserved deletes a RESERVED lock that points at a CANCELLED
// reservation. The delete is conditioned on the stale reservationId, so a
// live slot can never be stolen.
func (s *holdService) reclaimStaleReserved(ctx context.Context, eventDate, tableID string) bool {
	lock, err := s.repo.Lock.Find(ctx, eventDate, tableID)
	if err != nil || lock == nil || lock.LockType != entity.LockTypeReserved || lock.ReservationID == "" {
		return false
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, eventDate, lock.ReservationID)
	if err != nil || reservation == nil || reservation.Status != entity.ReservationStatusCancelled {
		return false
	}

	s.log.Info("Reclaiming stale reserved lock",
		zap.String("event_date", eventDate),
		zap.String("table_id", tableID),
		zap.String("reservation_id", lock.ReservationID),
	)

	return s.repo.Lock.ReleaseReserved(ctx, eventDate, tableID, lock.ReservationID) == nil
}

func (s *holdService) ReleaseHold(ctx context.Context, eventDate, tableID string) error {
	if _, err := time.Parse("2006-01-02", eventDate); err != nil {
		return utils.ValidationErrorf("invalid date %s", eventDate)
	}
	if tableID == "" {
		return utils.ValidationErrorf("table ID is required")
	}

	return s.repo.Lock.ReleaseHold(ctx, eventDate, tableID)
}

func (s *holdService) ListLocks(ctx context.Context, eventDate string) ([]*entity.TableLock, error) {
	if _, err := time.Parse("2006-01-02", eventDate); err != nil {
		return nil, utils.ValidationErrorf("invalid date %s", eventDate)
	}

	return s.repo.Lock.ListByDate(ctx, eventDate)
}

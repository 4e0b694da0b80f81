package usecase

import (
	"context"
	"time"

	"github.com/alekscortez/ff-reservations-sub000/internal/data/entity"
	"github.com/alekscortez/ff-reservations-sub000/internal/data/repository"
	"github.com/alekscortez/ff-reservations-sub000/internal/dto/response"
	"github.com/alekscortez/ff-reservations-sub000/pkg/utils"

	"go.uber.org/zap"
)

type AvailabilityService interface {
	BuildView(ctx context.Context, eventDate string) (*response.AvailabilityResponse, error)
}

type availabilityService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAvailabilityService(repo *repository.Repository, log *zap.Logger) AvailabilityService {
	return &availabilityService{
		repo: repo,
		log:  log.With(zap.String("service", "availability")),
	}
}

// BuildView reports the per-table status for a date. HOLD locks are reported
// on raw presence without expiry filtering; authoritative expiry enforcement
// happens at write time. RESERVED locks are cross-checked against their
// reservation so a stale lock left by an interrupted cancellation does not
// block the table.
func (s *availabilityService) BuildView(ctx context.Context, eventDate string) (*response.AvailabilityResponse, error) {
	if _, err := time.Parse("2006-01-02", eventDate); err != nil {
		return nil, utils.ValidationErrorf("invalid date %s", eventDate)
	}

	event, err := s.repo.Event.FindByDate(ctx, eventDate)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, utils.NotFoundErrorf("no event for date %s", eventDate)
	}

	clients, err := s.repo.Client.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	disabledFromFrequent := DisabledFromFrequentClients(clients, event)

	tables := EffectiveTables(event, disabledFromFrequent)

	locks, err := s.repo.Lock.ListByDate(ctx, eventDate)
	if err != nil {
		return nil, err
	}
	lockByTable := make(map[string]*entity.TableLock, len(locks))
	for _, l := range locks {
		lockByTable[l.TableID] = l
	}

	cancelled, err := s.cancelledReservations(ctx, eventDate, locks)
	if err != nil {
		return nil, err
	}

	view := &response.AvailabilityResponse{
		EventID:   event.EventID,
		EventName: event.EventName,
		EventDate: eventDate,
		Tables:    make([]response.TableStatusResponse, 0, len(tables)),
	}

	for _, t := range tables {
		entry := response.TableStatusResponse{
			TableID: t.ID,
			Number:  t.Number,
			Section: t.Section,
			Price:   t.Price,
			Status:  response.TableStatusAvailable,
		}

		lock := lockByTable[t.ID]
		switch {
		case lock != nil && lock.LockType == entity.LockTypeReserved && !cancelled[lock.ReservationID]:
			entry.Status = response.TableStatusReserved
		case lock != nil && lock.LockType == entity.LockTypeHold:
			entry.Status = response.TableStatusHold
			entry.ExpiresAt = lock.ExpiresAt
		case t.Disabled:
			entry.Status = response.TableStatusDisabled
		}

		view.Tables = append(view.Tables, entry)
	}

	return view, nil
}

// cancelledReservations returns the ids of CANCELLED reservations referenced
// by RESERVED locks for the date. One range read covers all slots.
func (s *availabilityService) cancelledReservations(ctx context.Context, eventDate string, locks []*entity.TableLock) (map[string]bool, error) {
	hasReserved := false
	for _, l := range locks {
		if l.LockType == entity.LockTypeReserved {
			hasReserved = true
			break
		}
	}
	if !hasReserved {
		return nil, nil
	}

	reservations, err := s.repo.Reservation.ListByDate(ctx, eventDate)
	if err != nil {
		return nil, err
	}

	cancelled := make(map[string]bool)
	for _, r := range reservations {
		if r.Status == entity.ReservationStatusCancelled {
			cancelled[r.ReservationID] = true
		}
	}
	return cancelled, nil
}

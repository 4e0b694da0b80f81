package usecase

import (
	"context"
	"time"

	"github.com/alekscortez/ff-reservations-sub000/internal/data/entity"
	"github.com/alekscortez/ff-reservations-sub000/internal/data/repository"
)

// Function-field mocks: each method delegates to its field when set and
// returns zero values otherwise.

type mockEventRepo struct {
	createWithDateLock func(ctx context.Context, event *entity.Event) error
	findByID           func(ctx context.Context, eventID string) (*entity.Event, error)
	findDateLock       func(ctx context.Context, eventDate string) (*entity.DateLock, error)
	findByDate         func(ctx context.Context, eventDate string) (*entity.Event, error)
	updateInPlace      func(ctx context.Context, event *entity.Event) error
	deactivate         func(ctx context.Context, event *entity.Event) error
	reactivate         func(ctx context.Context, event *entity.Event) error
	deleteWithDateLock func(ctx context.Context, event *entity.Event) error
	delete             func(ctx context.Context, eventID string) error
	list               func(ctx context.Context) ([]*entity.Event, error)
}

func (m *mockEventRepo) CreateWithDateLock(ctx context.Context, event *entity.Event) error {
	if m.createWithDateLock != nil {
		return m.createWithDateLock(ctx, event)
	}
	return nil
}

func (m *mockEventRepo) FindByID(ctx context.Context, eventID string) (*entity.Event, error) {
	if m.findByID != nil {
		return m.findByID(ctx, eventID)
	}
	return nil, nil
}

func (m *mockEventRepo) FindDateLock(ctx context.Context, eventDate string) (*entity.DateLock, error) {
	if m.findDateLock != nil {
		return m.findDateLock(ctx, eventDate)
	}
	return nil, nil
}

func (m *mockEventRepo) FindByDate(ctx context.Context, eventDate string) (*entity.Event, error) {
	if m.findByDate != nil {
		return m.findByDate(ctx, eventDate)
	}
	return nil, nil
}

func (m *mockEventRepo) UpdateInPlace(ctx context.Context, event *entity.Event) error {
	if m.updateInPlace != nil {
		return m.updateInPlace(ctx, event)
	}
	return nil
}

func (m *mockEventRepo) Deactivate(ctx context.Context, event *entity.Event) error {
	if m.deactivate != nil {
		return m.deactivate(ctx, event)
	}
	return nil
}

func (m *mockEventRepo) Reactivate(ctx context.Context, event *entity.Event) error {
	if m.reactivate != nil {
		return m.reactivate(ctx, event)
	}
	return nil
}

func (m *mockEventRepo) DeleteWithDateLock(ctx context.Context, event *entity.Event) error {
	if m.deleteWithDateLock != nil {
		return m.deleteWithDateLock(ctx, event)
	}
	return nil
}

func (m *mockEventRepo) Delete(ctx context.Context, eventID string) error {
	if m.delete != nil {
		return m.delete(ctx, eventID)
	}
	return nil
}

func (m *mockEventRepo) List(ctx context.Context) ([]*entity.Event, error) {
	if m.list != nil {
		return m.list(ctx)
	}
	return nil, nil
}

type mockLockRepo struct {
	acquireHold     func(ctx context.Context, lock *entity.TableLock, now time.Time) error
	find            func(ctx context.Context, eventDate, tableID string) (*entity.TableLock, error)
	releaseHold     func(ctx context.Context, eventDate, tableID string) error
	releaseReserved func(ctx context.Context, eventDate, tableID, reservationID string) error
	listByDate      func(ctx context.Context, eventDate string) ([]*entity.TableLock, error)
}

func (m *mockLockRepo) AcquireHold(ctx context.Context, lock *entity.TableLock, now time.Time) error {
	if m.acquireHold != nil {
		return m.acquireHold(ctx, lock, now)
	}
	return nil
}

func (m *mockLockRepo) Find(ctx context.Context, eventDate, tableID string) (*entity.TableLock, error) {
	if m.find != nil {
		return m.find(ctx, eventDate, tableID)
	}
	return nil, nil
}

func (m *mockLockRepo) ReleaseHold(ctx context.Context, eventDate, tableID string) error {
	if m.releaseHold != nil {
		return m.releaseHold(ctx, eventDate, tableID)
	}
	return nil
}

func (m *mockLockRepo) ReleaseReserved(ctx context.Context, eventDate, tableID, reservationID string) error {
	if m.releaseReserved != nil {
		return m.releaseReserved(ctx, eventDate, tableID, reservationID)
	}
	return nil
}

func (m *mockLockRepo) ListByDate(ctx context.Context, eventDate string) ([]*entity.TableLock, error) {
	if m.listByDate != nil {
		return m.listByDate(ctx, eventDate)
	}
	return nil, nil
}

type mockReservationRepo struct {
	convertHold func(ctx context.Context, reservation *entity.Reservation, holdID string, now time.Time) error
	findByID    func(ctx context.Context, eventDate, reservationID string) (*entity.Reservation, error)
	cancel      func(ctx context.Context, eventDate, reservationID, reason, actor string, at time.Time) error
	listByDate  func(ctx context.Context, eventDate string) ([]*entity.Reservation, error)
}

func (m *mockReservationRepo) ConvertHold(ctx context.Context, reservation *entity.Reservation, holdID string, now time.Time) error {
	if m.convertHold != nil {
		return m.convertHold(ctx, reservation, holdID, now)
	}
	return nil
}

func (m *mockReservationRepo) FindByID(ctx context.Context, eventDate, reservationID string) (*entity.Reservation, error) {
	if m.findByID != nil {
		return m.findByID(ctx, eventDate, reservationID)
	}
	return nil, nil
}

func (m *mockReservationRepo) Cancel(ctx context.Context, eventDate, reservationID, reason, actor string, at time.Time) error {
	if m.cancel != nil {
		return m.cancel(ctx, eventDate, reservationID, reason, actor, at)
	}
	return nil
}

func (m *mockReservationRepo) ListByDate(ctx context.Context, eventDate string) ([]*entity.Reservation, error) {
	if m.listByDate != nil {
		return m.listByDate(ctx, eventDate)
	}
	return nil, nil
}

type mockClientRepo struct {
	listAll func(ctx context.Context) ([]*entity.FrequentClient, error)
}

func (m *mockClientRepo) ListAll(ctx context.Context) ([]*entity.FrequentClient, error) {
	if m.listAll != nil {
		return m.listAll(ctx)
	}
	return nil, nil
}

type mockCRMRepo struct {
	upsertAfterReservation func(ctx context.Context, reservation *entity.Reservation) error
}

func (m *mockCRMRepo) UpsertAfterReservation(ctx context.Context, reservation *entity.Reservation) error {
	if m.upsertAfterReservation != nil {
		return m.upsertAfterReservation(ctx, reservation)
	}
	return nil
}

type mocks struct {
	event       *mockEventRepo
	lock        *mockLockRepo
	reservation *mockReservationRepo
	client      *mockClientRepo
	crm         *mockCRMRepo
}

func newMocks() (*mocks, *repository.Repository) {
	m := &mocks{
		event:       &mockEventRepo{},
		lock:        &mockLockRepo{},
		reservation: &mockReservationRepo{},
		client:      &mockClientRepo{},
		crm:         &mockCRMRepo{},
	}
	return m, &repository.Repository{
		Event:       m.event,
		Lock:        m.lock,
		Reservation: m.reservation,
		Client:      m.client,
		CRM:         m.crm,
	}
}

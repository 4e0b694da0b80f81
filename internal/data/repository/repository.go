package repository

import (
	"github.com/alekscortez/ff-reservations-sub000/pkg/database"
	"github.com/alekscortez/ff-reservations-sub000/pkg/utils"

	"go.uber.org/zap"
)

type Repository struct {
	Event       EventRepository
	Lock        LockRepository
	Reservation ReservationRepository
	Client      ClientRepository
	CRM         CRMRepository
}

func NewRepository(db database.DynamoIface, tables utils.TableNames, log *zap.Logger) *Repository {
	return &Repository{
		Event:       NewEventRepository(db, tables, log),
		Lock:        NewLockRepository(db, tables, log),
		Reservation: NewReservationRepository(db, tables, log),
		Client:      NewClientRepository(db, tables, log),
		CRM:         NewCRMRepository(db, tables, log),
	}
}

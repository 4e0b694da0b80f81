package usecase

import (
	"github.com/alekscortez/ff-reservations-sub000/internal/data/repository"
	"github.com/alekscortez/ff-reservations-sub000/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Event        EventService
	Hold         HoldService
	Reservation  ReservationService
	Availability AvailabilityService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Event:        NewEventService(repo, log),
		Hold:         NewHoldService(repo, config, log),
		Reservation:  NewReservationService(repo, log),
		Availability: NewAvailabilityService(repo, log),
	}
}

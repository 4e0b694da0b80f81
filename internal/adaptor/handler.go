package adaptor

import (
	"errors"
	"net/http"

	"github.com/alekscortez/ff-reservations-sub000/internal/usecase"
	"github.com/alekscortez/ff-reservations-sub000/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Event        *EventHandler
	Hold         *HoldHandler
	Reservation  *ReservationHandler
	Availability *AvailabilityHandler
}

func NewHandler(service *usecase.Service, crm CRMNotifier, log *zap.Logger) *Handler {
	return &Handler{
		Event:        NewEventHandler(service.Event, log),
		Hold:         NewHoldHandler(service.Hold, log),
		Reservation:  NewReservationHandler(service.Reservation, crm, log),
		Availability: NewAvailabilityHandler(service.Availability, log),
	}
}

// handleServiceError maps the error taxonomy to HTTP responses
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, utils.ErrValidation):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, utils.ErrConflict):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, utils.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

package adaptor

import (
	"net/http"

	"github.com/alekscortez/ff-reservations-sub000/internal/usecase"
	"github.com/alekscortez/ff-reservations-sub000/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AvailabilityHandler struct {
	service usecase.AvailabilityService
	log     *zap.Logger
}

func NewAvailabilityHandler(service usecase.AvailabilityService, log *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{
		service: service,
		log:     log.With(zap.String("handler", "availability")),
	}
}

// GetAvailability handles GET /api/availability/{date} (public)
func (h *AvailabilityHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	eventDate := chi.URLParam(r, "date")
	if eventDate == "" {
		utils.ResponseBadRequest(w, "Event date is required", nil)
		return
	}

	view, err := h.service.BuildView(r.Context(), eventDate)
	if err != nil {
		handleServiceError(h.log, w, err, "build availability view")
		return
	}

	utils.ResponseSuccess(w, "success", view)
}

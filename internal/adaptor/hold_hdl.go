package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/alekscortez/ff-reservations-sub000/internal/dto/request"
	"github.com/alekscortez/ff-reservations-sub000/internal/usecase"
	"github.com/alekscortez/ff-reservations-sub000/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type HoldHandler struct {
	service usecase.HoldService
	log     *zap.Logger
}

func NewHoldHandler(service usecase.HoldService, log *zap.Logger) *HoldHandler {
	return &HoldHandler{
		service: service,
		log:     log.With(zap.String("handler", "hold")),
	}
}

// CreateHold handles POST /api/holds (protected)
func (h *HoldHandler) CreateHold(w http.ResponseWriter, r *http.Request) {
	actor, ok := utils.GetActorFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateHoldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	hold, err := h.service.CreateHold(r.Context(), actor, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create hold")
		return
	}

	utils.ResponseCreated(w, "success", hold)
}

// ReleaseHold handles DELETE /api/holds/{date}/{tableId} (protected)
func (h *HoldHandler) ReleaseHold(w http.ResponseWriter, r *http.Request) {
	eventDate := chi.URLParam(r, "date")
	tableID := chi.URLParam(r, "tableId")
	if eventDate == "" || tableID == "" {
		utils.ResponseBadRequest(w, "Event date and table ID are required", nil)
		return
	}

	if err := h.service.ReleaseHold(r.Context(), eventDate, tableID); err != nil {
		handleServiceError(h.log, w, err, "release hold")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// ListLocks handles GET /api/admin/locks/{date} (admin). Returns raw lock
// records; expired holds are not filtered out.
func (h *HoldHandler) ListLocks(w http.ResponseWriter, r *http.Request) {
	eventDate := chi.URLParam(r, "date")
	if eventDate == "" {
		utils.ResponseBadRequest(w, "Event date is required", nil)
		return
	}

	locks, err := h.service.ListLocks(r.Context(), eventDate)
	if err != nil {
		handleServiceError(h.log, w, err, "list locks")
		return
	}

	utils.ResponseSuccess(w, "success", locks)
}

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

type EventHandler struct {
	service usecase.EventService
	log     *zap.Logger
}

func NewEventHandler(service usecase.EventService, log *zap.Logger) *EventHandler {
	return &EventHandler{
		service: service,
		log:     log.With(zap.String("handler", "event")),
	}
}

// CreateEvent handles POST /api/admin/events (admin)
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	actor, ok := utils.GetActorFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	event, err := h.service.CreateEvent(r.Context(), actor, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create event")
		return
	}

	utils.ResponseCreated(w, "success", event)
}

// UpdateEvent handles PUT /api/admin/events/{id} (admin)
func (h *EventHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "id")
	if eventID == "" {
		utils.ResponseBadRequest(w, "Event ID is required", nil)
		return
	}

	var req request.UpdateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	event, err := h.service.UpdateEvent(r.Context(), eventID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update event")
		return
	}

	utils.ResponseSuccess(w, "success", event)
}

// DeleteEvent handles DELETE /api/admin/events/{id} (admin)
func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "id")
	if eventID == "" {
		utils.ResponseBadRequest(w, "Event ID is required", nil)
		return
	}

	if err := h.service.DeleteEvent(r.Context(), eventID); err != nil {
		handleServiceError(h.log, w, err, "delete event")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// GetEvent handles GET /api/admin/events/{id} (admin)
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "id")
	if eventID == "" {
		utils.ResponseBadRequest(w, "Event ID is required", nil)
		return
	}

	event, err := h.service.GetEvent(r.Context(), eventID)
	if err != nil {
		handleServiceError(h.log, w, err, "get event")
		return
	}

	utils.ResponseSuccess(w, "success", event)
}

// GetEventByDate handles GET /api/events/{date} (public)
func (h *EventHandler) GetEventByDate(w http.ResponseWriter, r *http.Request) {
	eventDate := chi.URLParam(r, "date")
	if eventDate == "" {
		utils.ResponseBadRequest(w, "Event date is required", nil)
		return
	}

	event, err := h.service.GetEventByDate(r.Context(), eventDate)
	if err != nil {
		handleServiceError(h.log, w, err, "get event by date")
		return
	}

	utils.ResponseSuccess(w, "success", event)
}

// ListEvents handles GET /api/admin/events (admin)
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.ListEvents(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list events")
		return
	}

	utils.ResponseSuccess(w, "success", events)
}

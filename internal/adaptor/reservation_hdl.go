package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/alekscortez/ff-reservations-sub000/internal/data/entity"
	"github.com/alekscortez/ff-reservations-sub000/internal/dto/request"
	"github.com/alekscortez/ff-reservations-sub000/internal/usecase"
	"github.com/alekscortez/ff-reservations-sub000/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CRMNotifier is the CRM aggregate upsert boundary. Invoked after a
// successful reservation as an idempotent side effect; its failure never
// rolls back the reservation.
type CRMNotifier interface {
	UpsertAfterReservation(ctx context.Context, reservation *entity.Reservation) error
}

type ReservationHandler struct {
	service usecase.ReservationService
	crm     CRMNotifier
	log     *zap.Logger
}

func NewReservationHandler(service usecase.ReservationService, crm CRMNotifier, log *zap.Logger) *ReservationHandler {
	return &ReservationHandler{
		service: service,
		crm:     crm,
		log:     log.With(zap.String("handler", "reservation")),
	}
}

// CreateReservation handles POST /api/reservations (protected)
func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	actor, ok := utils.GetActorFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	isAdmin := utils.IsAdminFromContext(r.Context())

	var req request.CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	reservationID, err := h.service.CreateReservation(r.Context(), actor, isAdmin, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create reservation")
		return
	}

	// fire-and-forget CRM aggregate upkeep, keyed by phone number
	h.notifyCRM(&req, reservationID, actor)

	utils.ResponseCreated(w, "success", map[string]string{
		"reservation_id": reservationID,
	})
}

func (h *ReservationHandler) notifyCRM(req *request.CreateReservationRequest, reservationID, actor string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := h.crm.UpsertAfterReservation(ctx, &entity.Reservation{
		ReservationID: reservationID,
		EventDate:     req.EventDate,
		TableID:       req.TableID,
		CustomerName:  req.CustomerName,
		Phone:         req.Phone,
		DepositAmount: req.DepositAmount,
		PaymentMethod: req.PaymentMethod,
		Status:        entity.ReservationStatusConfirmed,
		CreatedBy:     actor,
	})
	if err != nil {
		h.log.Warn("CRM upsert failed after reservation",
			zap.Error(err),
			zap.String("reservation_id", reservationID),
		)
	}
}

// CancelReservation handles PUT /api/admin/reservations/{date}/{id}/cancel (admin)
func (h *ReservationHandler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	actor, ok := utils.GetActorFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	eventDate := chi.URLParam(r, "date")
	reservationID := chi.URLParam(r, "id")
	if eventDate == "" || reservationID == "" {
		utils.ResponseBadRequest(w, "Event date and reservation ID are required", nil)
		return
	}

	var req request.CancelReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.CancelReservation(r.Context(), actor, eventDate, reservationID, &req); err != nil {
		handleServiceError(h.log, w, err, "cancel reservation")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// GetReservation handles GET /api/admin/reservations/{date}/{id} (admin)
func (h *ReservationHandler) GetReservation(w http.ResponseWriter, r *http.Request) {
	eventDate := chi.URLParam(r, "date")
	reservationID := chi.URLParam(r, "id")
	if eventDate == "" || reservationID == "" {
		utils.ResponseBadRequest(w, "Event date and reservation ID are required", nil)
		return
	}

	reservation, err := h.service.GetReservation(r.Context(), eventDate, reservationID)
	if err != nil {
		handleServiceError(h.log, w, err, "get reservation")
		return
	}

	utils.ResponseSuccess(w, "success", reservation)
}

// ListReservations handles GET /api/admin/reservations/{date} (admin)
func (h *ReservationHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	eventDate := chi.URLParam(r, "date")
	if eventDate == "" {
		utils.ResponseBadRequest(w, "Event date is required", nil)
		return
	}

	reservations, err := h.service.ListReservations(r.Context(), eventDate)
	if err != nil {
		handleServiceError(h.log, w, err, "list reservations")
		return
	}

	utils.ResponseSuccess(w, "success", reservations)
}

package wire

import (
	"github.com/alekscortez/ff-reservations-sub000/internal/adaptor"
	"github.com/alekscortez/ff-reservations-sub000/pkg/middleware"
	"github.com/alekscortez/ff-reservations-sub000/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReservation(
	r chi.Router,
	reservationHandler *adaptor.ReservationHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))

		// POST /api/reservations - Convert a hold into a reservation
		r.Post("/api/reservations", reservationHandler.CreateReservation)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/reservations", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))
		r.Use(middleware.Admin(log))

		// GET /api/admin/reservations/{date} - Reservations for a date
		r.Get("/{date}", reservationHandler.ListReservations)

		// GET /api/admin/reservations/{date}/{id} - Reservation details
		r.Get("/{date}/{id}", reservationHandler.GetReservation)

		// PUT /api/admin/reservations/{date}/{id}/cancel - Cancel reservation
		r.Put("/{date}/{id}/cancel", reservationHandler.CancelReservation)
	})
}

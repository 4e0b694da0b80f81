package wire

import (
	"github.com/alekscortez/ff-reservations-sub000/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAvailability(r chi.Router, availabilityHandler *adaptor.AvailabilityHandler) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/availability/{date} - Per-table status view
	r.Get("/api/availability/{date}", availabilityHandler.GetAvailability)
}

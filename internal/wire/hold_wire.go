package wire

import (
	"github.com/alekscortez/ff-reservations-sub000/internal/adaptor"
	"github.com/alekscortez/ff-reservations-sub000/pkg/middleware"
	"github.com/alekscortez/ff-reservations-sub000/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireHold(
	r chi.Router,
	holdHandler *adaptor.HoldHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))

		// POST /api/holds - Place a time-boxed hold on a table
		r.Post("/api/holds", holdHandler.CreateHold)

		// DELETE /api/holds/{date}/{tableId} - Release a hold (idempotent)
		r.Delete("/api/holds/{date}/{tableId}", holdHandler.ReleaseHold)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/locks", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))
		r.Use(middleware.Admin(log))

		// GET /api/admin/locks/{date} - Raw lock records for a date
		r.Get("/{date}", holdHandler.ListLocks)
	})
}

package wire

import (
	"github.com/alekscortez/ff-reservations-sub000/internal/adaptor"
	"github.com/alekscortez/ff-reservations-sub000/pkg/middleware"
	"github.com/alekscortez/ff-reservations-sub000/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireEvent(
	r chi.Router,
	eventHandler *adaptor.EventHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/events/{date} - Resolve the event owning a date
	r.Get("/api/events/{date}", eventHandler.GetEventByDate)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/events", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))
		r.Use(middleware.Admin(log))

		// POST /api/admin/events - Create event + date lock
		r.Post("/", eventHandler.CreateEvent)

		// GET /api/admin/events - List all events
		r.Get("/", eventHandler.ListEvents)

		// GET /api/admin/events/{id} - Event details
		r.Get("/{id}", eventHandler.GetEvent)

		// PUT /api/admin/events/{id} - Update / activate / deactivate
		r.Put("/{id}", eventHandler.UpdateEvent)

		// DELETE /api/admin/events/{id} - Delete event (and lock if ACTIVE)
		r.Delete("/{id}", eventHandler.DeleteEvent)
	})
}

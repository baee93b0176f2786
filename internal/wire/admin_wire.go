package wire

import (
	"pos-terminal/internal/adaptor"
	"pos-terminal/internal/data/session"
	"pos-terminal/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(
	r chi.Router,
	adminHandler *adaptor.AdminHandler,
	store *session.Store,
	log *zap.Logger,
) {
	// ==================== ADMIN ONLY ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(store, log))
		r.Use(middleware.RequireAdmin(store, log))

		r.Get("/admincontrol", adminHandler.Page)
		r.Post("/admincontrol/create-account", adminHandler.CreateAccount)
	})
}

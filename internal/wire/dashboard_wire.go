package wire

import (
	"pos-terminal/internal/adaptor"
	"pos-terminal/internal/data/session"
	"pos-terminal/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireDashboard(
	r chi.Router,
	dashboardHandler *adaptor.DashboardHandler,
	store *session.Store,
	log *zap.Logger,
) {
	r.With(middleware.RequireSession(store, log)).Get("/dashboard", dashboardHandler.Page)
}

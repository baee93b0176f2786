package wire

import (
	"pos-terminal/internal/adaptor"
	"pos-terminal/internal/data/session"
	"pos-terminal/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrders(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	store *session.Store,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(store, log))

		r.Get("/active-orders", orderHandler.ActivePage)
		r.Get("/history-orders", orderHandler.HistoryPage)
		r.Post("/orders/{id}/complete", orderHandler.Complete)
		r.Post("/orders/{id}/cancel", orderHandler.Cancel)
		r.Post("/orders/{id}/delete", orderHandler.Delete)
	})
}

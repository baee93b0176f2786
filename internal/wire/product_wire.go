package wire

import (
	"pos-terminal/internal/adaptor"
	"pos-terminal/internal/data/session"
	"pos-terminal/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProducts(
	r chi.Router,
	productHandler *adaptor.ProductHandler,
	store *session.Store,
	log *zap.Logger,
) {
	// ==================== ADMIN ONLY ====================
	// Role dicek ulang setiap request, bukan cuma saat login
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(store, log))
		r.Use(middleware.RequireAdmin(store, log))

		r.Get("/products", productHandler.ListPage)
		r.Post("/products", productHandler.Create)
		r.Get("/edit-product/{id}", productHandler.EditPage)
		r.Post("/edit-product/{id}", productHandler.Update)
		r.Post("/products/{id}/delete", productHandler.Delete)
	})
}

package wire

import (
	"pos-terminal/internal/adaptor"
	"pos-terminal/internal/data/session"
	"pos-terminal/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCashier(
	r chi.Router,
	cashierHandler *adaptor.CashierHandler,
	store *session.Store,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(store, log))

		r.Get("/", cashierHandler.Page)
		r.Post("/cart/add", cashierHandler.AddToCart)
		r.Post("/cart/remove/{id}", cashierHandler.RemoveFromCart)
		r.Post("/checkout", cashierHandler.Checkout)
	})
}

package wire

import (
	"pos-terminal/internal/adaptor"
	"pos-terminal/internal/data/session"
	"pos-terminal/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	store *session.Store,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Login selalu bisa diakses (route guard tidak berlaku di sini)
	r.Get("/login", authHandler.LoginPage)
	r.Post("/login", authHandler.Login)

	// ==================== PROTECTED ROUTES ====================
	r.With(middleware.RequireSession(store, log)).Post("/logout", authHandler.Logout)
}

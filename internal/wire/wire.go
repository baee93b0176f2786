// internal/wire/wire.go
package wire

import (
	"net/http"

	"pos-terminal/internal/adaptor"
	"pos-terminal/internal/data/backend"
	"pos-terminal/internal/data/session"
	"pos-terminal/internal/usecase"
	"pos-terminal/pkg/middleware"
	"pos-terminal/pkg/utils"
	"pos-terminal/web"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router *chi.Mux
}

// Wiring menginisialisasi semua dependencies
func Wiring(store *session.Store, api *backend.Backend, renderer *web.Renderer, config *utils.Config, logger *zap.Logger) *App {
	// Initialize services dan handlers
	service := usecase.NewService(store, api, config, logger)
	handler := adaptor.NewHandler(service, renderer, logger)

	// Setup router
	router := setupRouter(handler, store, logger)

	return &App{
		Router: router,
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(
	handler *adaptor.Handler,
	store *session.Store,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	// Apply routes
	wireAuth(r, handler.Auth, store, logger)
	wireCashier(r, handler.Cashier, store, logger)
	wireOrders(r, handler.Order, store, logger)
	wireProducts(r, handler.Product, store, logger)
	wireAdmin(r, handler.Admin, store, logger)
	wireDashboard(r, handler.Dashboard, store, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}

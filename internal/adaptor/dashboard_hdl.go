package adaptor

import (
	"net/http"

	"pos-terminal/internal/dto/response"
	"pos-terminal/internal/usecase"
	"pos-terminal/web"

	"go.uber.org/zap"
)

type DashboardHandler struct {
	service  usecase.DashboardService
	renderer *web.Renderer
	log      *zap.Logger
}

func NewDashboardHandler(service usecase.DashboardService, renderer *web.Renderer, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service:  service,
		renderer: renderer,
		log:      log,
	}
}

// Page handles GET /dashboard. Each stat is fetched independently and
// a failed one just shows its zero value.
func (h *DashboardHandler) Page(w http.ResponseWriter, r *http.Request) {
	page := response.DashboardPage{Page: newPage(r, "Dashboard")}

	stats := h.service.Stats(r.Context())
	page.TopSellers = stats.TopSellers
	page.TotalRevenue = stats.TotalRevenue
	page.ProductCount = stats.ProductCount

	h.renderer.Render(w, "dashboard", page)
}

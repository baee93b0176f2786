package adaptor

import (
	"net/http"

	"pos-terminal/internal/dto/response"
	"pos-terminal/internal/usecase"
	"pos-terminal/pkg/utils"
	"pos-terminal/web"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type OrderHandler struct {
	service  usecase.OrderService
	renderer *web.Renderer
	log      *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, renderer *web.Renderer, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service:  service,
		renderer: renderer,
		log:      log,
	}
}

// ActivePage handles GET /active-orders. The list is always a fresh
// snapshot sorted ascending by id; a backend failure renders the page
// with a message instead of an error screen.
func (h *OrderHandler) ActivePage(w http.ResponseWriter, r *http.Request) {
	page := response.OrdersPage{Page: newPage(r, "Active Orders")}

	orders, count, err := h.service.Active(r.Context())
	if err != nil {
		h.log.Error("Failed to fetch active orders", zap.Error(err))
		page.Error = "Failed to fetch orders. Please try again later."
	}
	page.Orders = orders
	page.Count = count

	h.renderer.Render(w, "orders", page)
}

// HistoryPage handles GET /history-orders.
func (h *OrderHandler) HistoryPage(w http.ResponseWriter, r *http.Request) {
	page := response.OrdersPage{Page: newPage(r, "History Orders")}
	page.History = true

	orders, err := h.service.History(r.Context())
	if err != nil {
		h.log.Error("Failed to fetch completed orders", zap.Error(err))
		page.Error = "Failed to fetch completed orders."
	}
	page.Orders = orders

	h.renderer.Render(w, "orders", page)
}

// Complete handles POST /orders/{id}/complete. No confirmation step;
// the redirect back to the list is the re-fetch.
func (h *OrderHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		redirectWithError(w, r, "/active-orders", "Unknown order")
		return
	}

	if err := h.service.Complete(r.Context(), id); err != nil {
		redirectWithError(w, r, "/active-orders", "Failed to complete the order. Please try again.")
		return
	}

	redirectWithMessage(w, r, "/active-orders", "Order Completed!")
}

// Cancel handles POST /orders/{id}/cancel, gated on the confirmation
// step. Without it nothing happens.
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if !confirmed(r) {
		http.Redirect(w, r, "/active-orders", http.StatusSeeOther)
		return
	}

	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		redirectWithError(w, r, "/active-orders", "Unknown order")
		return
	}

	if err := h.service.Cancel(r.Context(), id); err != nil {
		redirectWithError(w, r, "/active-orders", "Failed to cancel the order. Please try again.")
		return
	}

	redirectWithMessage(w, r, "/active-orders", "Order Canceled!")
}

// Delete handles POST /orders/{id}/delete on the history view,
// confirmation-gated like Cancel.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !confirmed(r) {
		http.Redirect(w, r, "/history-orders", http.StatusSeeOther)
		return
	}

	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		redirectWithError(w, r, "/history-orders", "Unknown order")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		redirectWithError(w, r, "/history-orders", "Failed to delete the order.")
		return
	}

	redirectWithMessage(w, r, "/history-orders", "Order history entry deleted!")
}

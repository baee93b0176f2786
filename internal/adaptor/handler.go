package adaptor

import (
	"net/http"

	"pos-terminal/internal/dto/response"
	"pos-terminal/internal/usecase"
	"pos-terminal/pkg/utils"
	"pos-terminal/web"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	Cashier   *CashierHandler
	Order     *OrderHandler
	Product   *ProductHandler
	Admin     *AdminHandler
	Dashboard *DashboardHandler
}

func NewHandler(service *usecase.Service, renderer *web.Renderer, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, renderer, log),
		Cashier:   NewCashierHandler(service.Cart, service.Product, renderer, log),
		Order:     NewOrderHandler(service.Order, renderer, log),
		Product:   NewProductHandler(service.Product, renderer, log),
		Admin:     NewAdminHandler(service.Account, renderer, log),
		Dashboard: NewDashboardHandler(service.Dashboard, renderer, log),
	}
}

// newPage builds the data every view shares: the session from the
// request context and the one-shot flash strings carried across the
// post-redirect-get hop as query parameters.
func newPage(r *http.Request, title string) response.Page {
	page := response.Page{
		Title:      title,
		ActivePath: r.URL.Path,
		Error:      r.URL.Query().Get("error"),
		Message:    r.URL.Query().Get("message"),
	}

	if sess, ok := utils.GetSessionFromContext(r.Context()); ok {
		page.Session = sess
	}
	return page
}

// confirmed reports whether the view's confirmation step approved the
// action. A post arriving without it is bounced back untouched.
func confirmed(r *http.Request) bool {
	return r.FormValue("confirm") == "yes"
}

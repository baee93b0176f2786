package usecase

import (
	"pos-terminal/internal/data/backend"
	"pos-terminal/internal/data/session"
	"pos-terminal/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	Cart      CartService
	Order     OrderService
	Product   ProductService
	Account   AccountService
	Dashboard DashboardService
}

func NewService(store *session.Store, api *backend.Backend, config *utils.Config, log *zap.Logger) *Service {
	cart := NewCartService(api, log)

	return &Service{
		Auth:      NewAuthService(store, api, cart, log),
		Cart:      cart,
		Order:     NewOrderService(api, log),
		Product:   NewProductService(api, log),
		Account:   NewAccountService(api, log),
		Dashboard: NewDashboardService(api, log),
	}
}

package backend

import (
	"time"

	"go.uber.org/zap"
)

// Backend groups the per-domain API clients the same way the views
// consume them. The fields are interfaces so tests can swap in fakes.
type Backend struct {
	Product ProductAPI
	Order   OrderAPI
	Account AccountAPI
}

func NewBackend(baseURL string, timeout time.Duration, log *zap.Logger) *Backend {
	client := NewClient(baseURL, timeout, log)

	return &Backend{
		Product: NewProductAPI(client, log),
		Order:   NewOrderAPI(client, log),
		Account: NewAccountAPI(client, log),
	}
}

package backend

import (
	"context"
	"fmt"

	"pos-terminal/internal/data/entity"

	"go.uber.org/zap"
)

// OrderSubmission is the create-order body the backend expects:
// a flattened menu string plus the per-line detail rows.
type OrderSubmission struct {
	Menu       string      `json:"menu"`
	TotalPrice float64     `json:"total_price"`
	Status     string      `json:"status"`
	Items      []OrderItem `json:"items"`
}

type OrderItem struct {
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	TotalPrice  float64 `json:"total_price"`
}

type OrderAPI interface {
	Active(ctx context.Context) ([]entity.Order, error)
	Completed(ctx context.Context) ([]entity.Order, error)
	Create(ctx context.Context, submission *OrderSubmission) error
	Complete(ctx context.Context, id int64) error
	Cancel(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	OnProgressCount(ctx context.Context) (int, error)
	TopSelling(ctx context.Context) ([]entity.TopSeller, error)
	TotalRevenue(ctx context.Context) (float64, error)
}

type orderAPI struct {
	client *Client
	log    *zap.Logger
}

func NewOrderAPI(client *Client, log *zap.Logger) OrderAPI {
	return &orderAPI{
		client: client,
		log:    log.With(zap.String("api", "order")),
	}
}

func (a *orderAPI) Active(ctx context.Context) ([]entity.Order, error) {
	var orders []entity.Order
	if err := a.client.getList(ctx, "/orders", &orders); err != nil {
		a.log.Error("Failed to fetch active orders", zap.Error(err))
		return nil, fmt.Errorf("fetch orders: %w", err)
	}
	return orders, nil
}

func (a *orderAPI) Completed(ctx context.Context) ([]entity.Order, error) {
	var orders []entity.Order
	if err := a.client.getList(ctx, "/completed-orders", &orders); err != nil {
		a.log.Error("Failed to fetch completed orders", zap.Error(err))
		return nil, fmt.Errorf("fetch completed orders: %w", err)
	}
	return orders, nil
}

func (a *orderAPI) Create(ctx context.Context, submission *OrderSubmission) error {
	if err := a.client.postJSON(ctx, "/create-order", submission, nil); err != nil {
		a.log.Error("Failed to create order", zap.Error(err))
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

func (a *orderAPI) Complete(ctx context.Context, id int64) error {
	if err := a.client.post(ctx, fmt.Sprintf("/complete-order?id=%d", id)); err != nil {
		a.log.Error("Failed to complete order", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("complete order %d: %w", id, err)
	}
	return nil
}

func (a *orderAPI) Cancel(ctx context.Context, id int64) error {
	if err := a.client.post(ctx, fmt.Sprintf("/cancel-order?id=%d", id)); err != nil {
		a.log.Error("Failed to cancel order", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("cancel order %d: %w", id, err)
	}
	return nil
}

func (a *orderAPI) Delete(ctx context.Context, id int64) error {
	if err := a.client.deleteReq(ctx, fmt.Sprintf("/delete-order?id=%d", id)); err != nil {
		a.log.Error("Failed to delete order", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("delete order %d: %w", id, err)
	}
	return nil
}

func (a *orderAPI) OnProgressCount(ctx context.Context) (int, error) {
	var out struct {
		Count int `json:"order_onprogress_count"`
	}
	if err := a.client.getJSON(ctx, "/onprogress-count", &out); err != nil {
		return 0, fmt.Errorf("fetch on-progress count: %w", err)
	}
	return out.Count, nil
}

func (a *orderAPI) TopSelling(ctx context.Context) ([]entity.TopSeller, error) {
	var sellers []entity.TopSeller
	if err := a.client.getList(ctx, "/top-selling-menu", &sellers); err != nil {
		a.log.Error("Failed to fetch top sellers", zap.Error(err))
		return nil, fmt.Errorf("fetch top sellers: %w", err)
	}
	return sellers, nil
}

func (a *orderAPI) TotalRevenue(ctx context.Context) (float64, error) {
	var out struct {
		TotalRevenue float64 `json:"total_revenue"`
	}
	if err := a.client.getJSON(ctx, "/total-revenue", &out); err != nil {
		return 0, fmt.Errorf("fetch total revenue: %w", err)
	}
	return out.TotalRevenue, nil
}

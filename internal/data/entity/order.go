package entity

import "time"

type OrderStatus string

const (
	StatusOnProgress OrderStatus = "On Progress"
	StatusCompleted  OrderStatus = "Completed"
	StatusCanceled   OrderStatus = "Order Canceled"
)

// Terminal reports whether no further status transitions are expected.
func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCanceled
}

// Order is a read-only snapshot owned by the backend. It is never
// mutated locally; any status change goes through the backend followed
// by a re-fetch.
type Order struct {
	ID         int64         `json:"id"`
	Menu       string        `json:"menu"`
	Status     OrderStatus   `json:"status"`
	TotalPrice float64       `json:"total_price"`
	CreatedAt  time.Time     `json:"created_at"`
	Details    []OrderDetail `json:"details"`
}

type OrderDetail struct {
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	TotalPrice  float64 `json:"total_price"`
}

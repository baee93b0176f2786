package usecase

import (
	"context"
	"fmt"
	"sort"

	"pos-terminal/internal/data/backend"
	"pos-terminal/internal/data/entity"

	"go.uber.org/zap"
)

// OrderService exposes the two views over the backend's orders: the
// active list and the terminal-status history. Every status-changing
// action is followed by a fresh fetch; nothing is patched locally.
type OrderService interface {
	Active(ctx context.Context) ([]entity.Order, int, error)
	History(ctx context.Context) ([]entity.Order, error)
	Complete(ctx context.Context, id int64) error
	Cancel(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type orderService struct {
	api *backend.Backend
	log *zap.Logger
}

func NewOrderService(api *backend.Backend, log *zap.Logger) OrderService {
	return &orderService{
		api: api,
		log: log,
	}
}

// Active returns the not-yet-completed orders sorted ascending by id
// regardless of the order the backend sent them in, plus the
// on-progress count for the header. A failed count fetch degrades to
// zero rather than failing the view.
func (s *orderService) Active(ctx context.Context) ([]entity.Order, int, error) {
	orders, err := s.api.Order.Active(ctx)
	if err != nil {
		return nil, 0, err
	}
	sortByID(orders)

	count, err := s.api.Order.OnProgressCount(ctx)
	if err != nil {
		s.log.Warn("Failed to fetch on-progress count", zap.Error(err))
		count = 0
	}

	return orders, count, nil
}

func (s *orderService) History(ctx context.Context) ([]entity.Order, error) {
	orders, err := s.api.Order.Completed(ctx)
	if err != nil {
		return nil, err
	}
	sortByID(orders)
	return orders, nil
}

func (s *orderService) Complete(ctx context.Context, id int64) error {
	if err := s.api.Order.Complete(ctx, id); err != nil {
		return err
	}
	s.log.Info("Order completed", zap.Int64("id", id))
	return nil
}

func (s *orderService) Cancel(ctx context.Context, id int64) error {
	if err := s.api.Order.Cancel(ctx, id); err != nil {
		return err
	}
	s.log.Info("Order canceled", zap.Int64("id", id))
	return nil
}

// Delete removes a terminal-status order from the history. Only called
// after the view's confirmation step.
func (s *orderService) Delete(ctx context.Context, id int64) error {
	if err := s.api.Order.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	s.log.Info("Order history entry deleted", zap.Int64("id", id))
	return nil
}

func sortByID(orders []entity.Order) {
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].ID < orders[j].ID
	})
}

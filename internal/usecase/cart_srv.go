package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"pos-terminal/internal/data/backend"
	"pos-terminal/internal/data/entity"

	"go.uber.org/zap"
)

// CartService is the in-memory cart for this register. Lines keep the
// order of first addition; adding an existing product merges into its
// line. The total is always derived from the lines, never stored.
type CartService interface {
	Add(ctx context.Context, productID int64, quantity int) error
	AddProduct(product entity.Product, quantity int)
	Remove(productID int64)
	Lines() []entity.CartLine
	Total() float64
	Checkout(ctx context.Context) (float64, error)
	Clear()
}

type cartService struct {
	mu    sync.Mutex
	lines []entity.CartLine
	api   *backend.Backend
	log   *zap.Logger
}

func NewCartService(api *backend.Backend, log *zap.Logger) CartService {
	return &cartService{
		api: api,
		log: log,
	}
}

// Add resolves the product from the backend and merges it into the
// cart. The form only submits an id; prices always come from the
// backend, never from the page.
func (s *cartService) Add(ctx context.Context, productID int64, quantity int) error {
	product, err := s.api.Product.Get(ctx, productID)
	if err != nil {
		return fmt.Errorf("product lookup: %w", err)
	}

	s.AddProduct(*product, quantity)
	return nil
}

func (s *cartService) AddProduct(product entity.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.ID == product.ID {
			s.lines[i].Quantity += quantity
			return
		}
	}

	s.lines = append(s.lines, entity.CartLine{
		Product:  product,
		Quantity: quantity,
	})
}

// Remove drops the line for productID. Removing an absent id is a
// no-op, not an error.
func (s *cartService) Remove(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := s.lines[:0]
	for _, line := range s.lines {
		if line.Product.ID != productID {
			filtered = append(filtered, line)
		}
	}
	s.lines = filtered
}

func (s *cartService) Lines() []entity.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *cartService) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return total(s.lines)
}

func total(lines []entity.CartLine) float64 {
	var sum float64
	for _, line := range lines {
		sum += line.Subtotal()
	}
	return sum
}

// Checkout submits the current cart as a new order. The cart is only
// cleared after the backend confirms; on failure every line stays so
// the cashier can retry. Returns the total of the placed order.
func (s *cartService) Checkout(ctx context.Context) (float64, error) {
	s.mu.Lock()
	snapshot := make([]entity.CartLine, len(s.lines))
	copy(snapshot, s.lines)
	s.mu.Unlock()

	if len(snapshot) == 0 {
		return 0, fmt.Errorf("cart is empty")
	}

	orderTotal := total(snapshot)

	menu := make([]string, len(snapshot))
	items := make([]backend.OrderItem, len(snapshot))
	for i, line := range snapshot {
		menu[i] = fmt.Sprintf("%s %dx", line.Product.Name, line.Quantity)
		items[i] = backend.OrderItem{
			ProductName: line.Product.Name,
			Quantity:    line.Quantity,
			TotalPrice:  line.Subtotal(),
		}
	}

	submission := &backend.OrderSubmission{
		Menu:       strings.Join(menu, ", "),
		TotalPrice: orderTotal,
		Status:     string(entity.StatusOnProgress),
		Items:      items,
	}

	if err := s.api.Order.Create(ctx, submission); err != nil {
		s.log.Error("Checkout failed, cart kept for retry",
			zap.Int("lines", len(snapshot)),
			zap.Float64("total", orderTotal),
			zap.Error(err))
		return 0, fmt.Errorf("checkout: %w", err)
	}

	// Only the submitted quantities leave the cart; anything added
	// while the order was in flight stays for the next checkout
	s.mu.Lock()
	for _, placed := range snapshot {
		for i := range s.lines {
			if s.lines[i].Product.ID == placed.Product.ID {
				s.lines[i].Quantity -= placed.Quantity
				break
			}
		}
	}
	kept := s.lines[:0]
	for _, line := range s.lines {
		if line.Quantity > 0 {
			kept = append(kept, line)
		}
	}
	s.lines = kept
	s.mu.Unlock()

	s.log.Info("Order placed",
		zap.Int("lines", len(snapshot)),
		zap.Float64("total", orderTotal))

	return orderTotal, nil
}

func (s *cartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

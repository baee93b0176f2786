package usecase

import (
	"context"
	"fmt"
	"sync"

	"pos-terminal/internal/data/backend"
	"pos-terminal/internal/data/entity"
	"pos-terminal/internal/dto/request"
	"pos-terminal/pkg/utils"

	"go.uber.org/zap"
)

// ProductService is the admin-only catalog view. The backend owns the
// data; this side keeps the last fetched list so a delete can drop the
// row immediately on a confirmed success without another round trip.
// Create and update always re-fetch, since the backend derives fields
// (the image URL) this side cannot compute.
type ProductService interface {
	List(ctx context.Context) ([]entity.Product, error)
	Cached() []entity.Product
	Get(ctx context.Context, id int64) (*entity.Product, error)
	Create(ctx context.Context, req *request.ProductRequest, image *backend.Upload) error
	Update(ctx context.Context, id int64, req *request.ProductRequest, image *backend.Upload) error
	Delete(ctx context.Context, id int64) error
}

type productService struct {
	mu     sync.Mutex
	cached []entity.Product
	api    *backend.Backend
	log    *zap.Logger
}

func NewProductService(api *backend.Backend, log *zap.Logger) ProductService {
	return &productService{
		api: api,
		log: log,
	}
}

// List fetches the full catalog and refreshes the local cache.
func (s *productService) List(ctx context.Context) ([]entity.Product, error) {
	products, err := s.api.Product.List(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cached = products
	s.mu.Unlock()

	return products, nil
}

func (s *productService) Cached() []entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Product, len(s.cached))
	copy(out, s.cached)
	return out
}

func (s *productService) Get(ctx context.Context, id int64) (*entity.Product, error) {
	return s.api.Product.Get(ctx, id)
}

func (s *productService) Create(ctx context.Context, req *request.ProductRequest, image *backend.Upload) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if err := s.api.Product.Create(ctx, req.Name, req.Price, image); err != nil {
		return err
	}

	s.log.Info("Product created", zap.String("name", req.Name), zap.Float64("price", req.Price))
	return nil
}

func (s *productService) Update(ctx context.Context, id int64, req *request.ProductRequest, image *backend.Upload) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if err := s.api.Product.Update(ctx, id, req.Name, req.Price, image); err != nil {
		return err
	}

	s.log.Info("Product updated", zap.Int64("id", id), zap.String("name", req.Name))
	return nil
}

// Delete removes the product on the backend, then filters it out of
// the cached list. The filter only happens after the success response.
func (s *productService) Delete(ctx context.Context, id int64) error {
	if err := s.api.Product.Delete(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	filtered := s.cached[:0]
	for _, p := range s.cached {
		if p.ID != id {
			filtered = append(filtered, p)
		}
	}
	s.cached = filtered
	s.mu.Unlock()

	s.log.Info("Product deleted", zap.Int64("id", id))
	return nil
}

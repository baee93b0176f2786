package backend

import (
	"context"
	"fmt"
	"strconv"

	"pos-terminal/internal/data/entity"

	"go.uber.org/zap"
)

type ProductAPI interface {
	List(ctx context.Context) ([]entity.Product, error)
	Get(ctx context.Context, id int64) (*entity.Product, error)
	Create(ctx context.Context, name string, price float64, image *Upload) error
	Update(ctx context.Context, id int64, name string, price float64, image *Upload) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

type productAPI struct {
	client *Client
	log    *zap.Logger
}

func NewProductAPI(client *Client, log *zap.Logger) ProductAPI {
	return &productAPI{
		client: client,
		log:    log.With(zap.String("api", "product")),
	}
}

func (a *productAPI) List(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	if err := a.client.getList(ctx, "/products", &products); err != nil {
		a.log.Error("Failed to fetch products", zap.Error(err))
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	return products, nil
}

func (a *productAPI) Get(ctx context.Context, id int64) (*entity.Product, error) {
	var product entity.Product
	if err := a.client.getJSON(ctx, fmt.Sprintf("/product/%d", id), &product); err != nil {
		a.log.Error("Failed to fetch product", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("fetch product %d: %w", id, err)
	}
	return &product, nil
}

func (a *productAPI) Create(ctx context.Context, name string, price float64, image *Upload) error {
	fields := map[string]string{
		"name":  name,
		"price": strconv.FormatFloat(price, 'f', -1, 64),
	}
	if err := a.client.postMultipart(ctx, "POST", "/create-product", fields, image); err != nil {
		a.log.Error("Failed to create product", zap.String("name", name), zap.Error(err))
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

func (a *productAPI) Update(ctx context.Context, id int64, name string, price float64, image *Upload) error {
	fields := map[string]string{
		"name":  name,
		"price": strconv.FormatFloat(price, 'f', -1, 64),
	}
	path := fmt.Sprintf("/update-product/%d", id)
	if err := a.client.postMultipart(ctx, "PUT", path, fields, image); err != nil {
		a.log.Error("Failed to update product", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("update product %d: %w", id, err)
	}
	return nil
}

func (a *productAPI) Delete(ctx context.Context, id int64) error {
	if err := a.client.deleteReq(ctx, fmt.Sprintf("/delete-product/%d", id)); err != nil {
		a.log.Error("Failed to delete product", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	return nil
}

func (a *productAPI) Count(ctx context.Context) (int, error) {
	var out struct {
		ProductCount int `json:"product_count"`
	}
	if err := a.client.getJSON(ctx, "/product-count", &out); err != nil {
		return 0, fmt.Errorf("fetch product count: %w", err)
	}
	return out.ProductCount, nil
}

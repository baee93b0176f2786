package usecase

import (
	"context"
	"errors"
	"testing"

	"pos-terminal/internal/data/backend"
	"pos-terminal/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeProductAPI struct {
	products map[int64]entity.Product
	err      error
}

func (f *fakeProductAPI) List(context.Context) ([]entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]entity.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductAPI) Get(_ context.Context, id int64) (*entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.products[id]
	if !ok {
		return nil, errors.New("product not found")
	}
	return &p, nil
}

func (f *fakeProductAPI) Create(context.Context, string, float64, *backend.Upload) error {
	return f.err
}

func (f *fakeProductAPI) Update(context.Context, int64, string, float64, *backend.Upload) error {
	return f.err
}

func (f *fakeProductAPI) Delete(context.Context, int64) error { return f.err }
func (f *fakeProductAPI) Count(context.Context) (int, error)  { return len(f.products), f.err }

type fakeOrderAPI struct {
	active    []entity.Order
	completed []entity.Order
	createErr error
	created   []*backend.OrderSubmission
	onCreate  func()
	countErr  error
	count     int
}

func (f *fakeOrderAPI) Active(context.Context) ([]entity.Order, error)    { return f.active, nil }
func (f *fakeOrderAPI) Completed(context.Context) ([]entity.Order, error) { return f.completed, nil }

func (f *fakeOrderAPI) Create(_ context.Context, submission *backend.OrderSubmission) error {
	if f.onCreate != nil {
		f.onCreate()
	}
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, submission)
	return nil
}

func (f *fakeOrderAPI) Complete(context.Context, int64) error { return nil }
func (f *fakeOrderAPI) Cancel(context.Context, int64) error   { return nil }
func (f *fakeOrderAPI) Delete(context.Context, int64) error   { return nil }

func (f *fakeOrderAPI) OnProgressCount(context.Context) (int, error) {
	return f.count, f.countErr
}

func (f *fakeOrderAPI) TopSelling(context.Context) ([]entity.TopSeller, error) { return nil, nil }
func (f *fakeOrderAPI) TotalRevenue(context.Context) (float64, error)          { return 0, nil }

func newTestCart(orders *fakeOrderAPI, products *fakeProductAPI) CartService {
	if orders == nil {
		orders = &fakeOrderAPI{}
	}
	if products == nil {
		products = &fakeProductAPI{}
	}
	api := &backend.Backend{
		Product: products,
		Order:   orders,
	}
	return NewCartService(api, zap.NewNop())
}

var (
	kopi = entity.Product{ID: 1, Name: "Kopi Susu", Price: 18000}
	teh  = entity.Product{ID: 2, Name: "Es Teh", Price: 8000}
	nasi = entity.Product{ID: 3, Name: "Nasi Goreng", Price: 25000}
)

func TestCart_AddMergesQuantityIntoExistingLine(t *testing.T) {
	cart := newTestCart(nil, nil)

	cart.AddProduct(kopi, 2)
	cart.AddProduct(kopi, 3)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.Equal(t, kopi.ID, lines[0].Product.ID)
	assert.Equal(t, 5*kopi.Price, cart.Total())
}

func TestCart_TotalIsOrderIndependent(t *testing.T) {
	first := newTestCart(nil, nil)
	first.AddProduct(kopi, 2)
	first.AddProduct(teh, 1)
	first.AddProduct(kopi, 1)

	second := newTestCart(nil, nil)
	second.AddProduct(teh, 1)
	second.AddProduct(kopi, 1)
	second.AddProduct(kopi, 2)

	assert.Equal(t, first.Total(), second.Total())
	assert.Equal(t, 3*kopi.Price+teh.Price, first.Total())

	// Same deduplicated line set either way
	require.Len(t, first.Lines(), 2)
	require.Len(t, second.Lines(), 2)
}

func TestCart_LinesKeepFirstAdditionOrder(t *testing.T) {
	cart := newTestCart(nil, nil)

	cart.AddProduct(teh, 1)
	cart.AddProduct(nasi, 1)
	cart.AddProduct(teh, 2)

	lines := cart.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, teh.ID, lines[0].Product.ID)
	assert.Equal(t, nasi.ID, lines[1].Product.ID)
}

func TestCart_QuantityCoercedToAtLeastOne(t *testing.T) {
	cart := newTestCart(nil, nil)

	cart.AddProduct(kopi, 0)
	cart.AddProduct(teh, -4)

	lines := cart.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, 1, lines[1].Quantity)
}

func TestCart_RemoveAbsentIDIsNoOp(t *testing.T) {
	cart := newTestCart(nil, nil)
	cart.AddProduct(kopi, 2)
	before := cart.Total()

	cart.Remove(999)

	assert.Len(t, cart.Lines(), 1)
	assert.Equal(t, before, cart.Total())
}

func TestCart_RemoveDropsLine(t *testing.T) {
	cart := newTestCart(nil, nil)
	cart.AddProduct(kopi, 2)
	cart.AddProduct(teh, 1)

	cart.Remove(kopi.ID)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, teh.ID, lines[0].Product.ID)
	assert.Equal(t, teh.Price, cart.Total())
}

func TestCart_AddResolvesProductFromBackend(t *testing.T) {
	products := &fakeProductAPI{products: map[int64]entity.Product{kopi.ID: kopi}}
	cart := newTestCart(nil, products)

	err := cart.Add(context.Background(), kopi.ID, 2)
	require.NoError(t, err)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, kopi.Name, lines[0].Product.Name)
	assert.Equal(t, kopi.Price, lines[0].Product.Price)
}

func TestCart_AddUnknownProductFails(t *testing.T) {
	cart := newTestCart(nil, &fakeProductAPI{products: map[int64]entity.Product{}})

	err := cart.Add(context.Background(), 42, 1)
	require.Error(t, err)
	assert.Empty(t, cart.Lines())
}

func TestCart_CheckoutSuccessClearsCart(t *testing.T) {
	orders := &fakeOrderAPI{}
	cart := newTestCart(orders, nil)
	cart.AddProduct(kopi, 2)
	cart.AddProduct(teh, 1)

	total, err := cart.Checkout(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2*kopi.Price+teh.Price, total)

	assert.Empty(t, cart.Lines())
	assert.Zero(t, cart.Total())

	require.Len(t, orders.created, 1)
	submission := orders.created[0]
	assert.Equal(t, "Kopi Susu 2x, Es Teh 1x", submission.Menu)
	assert.Equal(t, string(entity.StatusOnProgress), submission.Status)
	assert.Equal(t, total, submission.TotalPrice)
	require.Len(t, submission.Items, 2)
	assert.Equal(t, "Kopi Susu", submission.Items[0].ProductName)
	assert.Equal(t, 2, submission.Items[0].Quantity)
	assert.Equal(t, 2*kopi.Price, submission.Items[0].TotalPrice)
}

func TestCart_CheckoutKeepsLinesAddedWhileOrderInFlight(t *testing.T) {
	orders := &fakeOrderAPI{}
	cart := newTestCart(orders, nil)
	cart.AddProduct(kopi, 2)

	// The next customer's items land while the order is being submitted
	orders.onCreate = func() {
		cart.AddProduct(kopi, 1)
		cart.AddProduct(nasi, 1)
	}

	total, err := cart.Checkout(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2*kopi.Price, total)

	// Only the submitted quantities left the cart
	lines := cart.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, kopi.ID, lines[0].Product.ID)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, nasi.ID, lines[1].Product.ID)
	assert.Equal(t, 1, lines[1].Quantity)

	require.Len(t, orders.created, 1)
	assert.Equal(t, "Kopi Susu 2x", orders.created[0].Menu)
}

func TestCart_CheckoutFailureKeepsCart(t *testing.T) {
	orders := &fakeOrderAPI{createErr: errors.New("backend down")}
	cart := newTestCart(orders, nil)
	cart.AddProduct(kopi, 2)
	wantTotal := cart.Total()

	_, err := cart.Checkout(context.Background())
	require.Error(t, err)

	assert.Len(t, cart.Lines(), 1)
	assert.Equal(t, wantTotal, cart.Total())
}

func TestCart_CheckoutEmptyCartRejected(t *testing.T) {
	orders := &fakeOrderAPI{}
	cart := newTestCart(orders, nil)

	_, err := cart.Checkout(context.Background())
	require.Error(t, err)
	assert.Empty(t, orders.created)
}

package response

import "pos-terminal/internal/data/entity"

// Page is the data every rendered view receives: the navbar reads the
// session and the active path, the body reads the page-specific fields.
type Page struct {
	Title      string
	ActivePath string
	Session    *entity.Session
	Error      string
	Message    string
}

type LoginPage struct {
	Page
}

type CashierPage struct {
	Page
	Products []entity.Product
	Cart     []entity.CartLine
	Total    float64
}

type OrdersPage struct {
	Page
	Orders  []entity.Order
	Count   int
	History bool
}

type ProductsPage struct {
	Page
	Products []entity.Product
	Form     ProductForm
}

type EditProductPage struct {
	Page
	Product *entity.Product
}

// ProductForm echoes submitted values back into the add-product form
// when validation fails.
type ProductForm struct {
	Name  string
	Price string
}

type DashboardPage struct {
	Page
	TopSellers   []entity.TopSeller
	TotalRevenue float64
	ProductCount int
}

type AdminPage struct {
	Page
	AdminCount   int
	CashierCount int
	Form         AccountForm
}

type AccountForm struct {
	Username string
	Role     string
}

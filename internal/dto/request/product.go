package request

// ProductRequest is the add/edit product form. Price arrives as a form
// string and is parsed before validation; a non-positive price never
// reaches the backend.
type ProductRequest struct {
	Name  string  `validate:"required,max=100"`
	Price float64 `validate:"required,gt=0"`
}

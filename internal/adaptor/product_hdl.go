package adaptor

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"pos-terminal/internal/data/backend"
	"pos-terminal/internal/dto/request"
	"pos-terminal/internal/dto/response"
	"pos-terminal/internal/usecase"
	"pos-terminal/pkg/utils"
	"pos-terminal/web"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxUploadSize = 10 << 20 // 10 MB

// ProductHandler is the admin-only catalog view. The admin check lives
// in the route wiring; by the time these run the role is confirmed, so
// no privileged fetch ever happens for a non-admin session.
type ProductHandler struct {
	service  usecase.ProductService
	renderer *web.Renderer
	log      *zap.Logger
}

func NewProductHandler(service usecase.ProductService, renderer *web.Renderer, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service:  service,
		renderer: renderer,
		log:      log,
	}
}

// ListPage handles GET /products.
func (h *ProductHandler) ListPage(w http.ResponseWriter, r *http.Request) {
	page := response.ProductsPage{Page: newPage(r, "Product List")}

	products, err := h.service.List(r.Context())
	if err != nil {
		h.log.Error("Failed to fetch products", zap.Error(err))
		page.Error = "Error fetching products"
	}
	page.Products = products

	h.renderer.Render(w, "products", page)
}

// Create handles POST /products (the add-product form). Validation
// failures re-render the form with the submitted values and never
// reach the backend.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, upload, cleanup, formErr := h.parseProductForm(r)
	if cleanup != nil {
		defer cleanup()
	}
	if formErr != "" {
		h.renderListWithForm(w, r, formErr, r.FormValue("name"), r.FormValue("price"))
		return
	}

	if upload == nil {
		h.renderListWithForm(w, r, "Please choose an image.", req.Name, r.FormValue("price"))
		return
	}

	if err := h.service.Create(r.Context(), req, upload); err != nil {
		h.log.Error("Failed to create product", zap.Error(err))
		h.renderListWithForm(w, r, "Error adding product", req.Name, r.FormValue("price"))
		return
	}

	redirectWithMessage(w, r, "/products", "Product added successfully")
}

// EditPage handles GET /edit-product/{id}.
func (h *ProductHandler) EditPage(w http.ResponseWriter, r *http.Request) {
	page := response.EditProductPage{Page: newPage(r, "Edit Product")}

	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		http.Redirect(w, r, "/products", http.StatusSeeOther)
		return
	}

	product, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.log.Error("Failed to fetch product", zap.Int64("id", id), zap.Error(err))
		page.Error = "Error fetching product"
	}
	page.Product = product

	h.renderer.Render(w, "edit_product", page)
}

// Update handles POST /edit-product/{id}. The image is optional here;
// the backend keeps the old one when none is sent.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		http.Redirect(w, r, "/products", http.StatusSeeOther)
		return
	}

	editPath := fmt.Sprintf("/edit-product/%d", id)

	req, upload, cleanup, formErr := h.parseProductForm(r)
	if cleanup != nil {
		defer cleanup()
	}
	if formErr != "" {
		redirectWithError(w, r, editPath, "Make sure all fields are filled in correctly")
		return
	}

	if err := h.service.Update(r.Context(), id, req, upload); err != nil {
		h.log.Error("Failed to update product", zap.Int64("id", id), zap.Error(err))
		redirectWithError(w, r, editPath, "Make sure all fields are filled in correctly")
		return
	}

	redirectWithMessage(w, r, "/products", "Product updated successfully")
}

// Delete handles POST /products/{id}/delete, confirmation-gated. On a
// confirmed success the row is dropped from the cached list and the
// page renders from that cache — the one place a mutation does not
// trigger a re-fetch.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !confirmed(r) {
		http.Redirect(w, r, "/products", http.StatusSeeOther)
		return
	}

	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		http.Redirect(w, r, "/products", http.StatusSeeOther)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.log.Error("Failed to delete product", zap.Int64("id", id), zap.Error(err))
		redirectWithError(w, r, "/products", "Error deleting product")
		return
	}

	page := response.ProductsPage{Page: newPage(r, "Product List")}
	page.Message = "Product deleted successfully"
	page.Products = h.service.Cached()

	h.renderer.Render(w, "products", page)
}

// parseProductForm reads the multipart add/edit form. It returns a
// non-empty formErr for anything that must not reach the backend: a
// missing name or a price that is not a positive number.
func (h *ProductHandler) parseProductForm(r *http.Request) (*request.ProductRequest, *backend.Upload, func(), string) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, nil, nil, "Invalid form submission"
	}

	name := strings.TrimSpace(r.FormValue("name"))
	priceRaw := strings.TrimSpace(r.FormValue("price"))

	if name == "" || priceRaw == "" {
		return nil, nil, nil, "Please fill in all fields."
	}

	price, err := strconv.ParseFloat(priceRaw, 64)
	if err != nil || price <= 0 {
		return nil, nil, nil, "Please enter a valid positive price."
	}

	req := &request.ProductRequest{
		Name:  name,
		Price: price,
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		// no image attached; valid for edit, rejected for create
		return req, nil, nil, ""
	}

	upload := &backend.Upload{
		Filename: header.Filename,
		Content:  file,
	}
	cleanup := func() { file.Close() }

	return req, upload, cleanup, ""
}

func (h *ProductHandler) renderListWithForm(w http.ResponseWriter, r *http.Request, errMsg, name, price string) {
	page := response.ProductsPage{Page: newPage(r, "Product List")}
	page.Error = errMsg
	page.Form = response.ProductForm{Name: name, Price: price}
	page.Products = h.service.Cached()

	h.renderer.Render(w, "products", page)
}

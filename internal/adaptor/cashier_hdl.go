package adaptor

import (
	"fmt"
	"net/http"
	"net/url"

	"pos-terminal/internal/dto/response"
	"pos-terminal/internal/usecase"
	"pos-terminal/pkg/utils"
	"pos-terminal/web"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CashierHandler struct {
	cart     usecase.CartService
	products usecase.ProductService
	renderer *web.Renderer
	log      *zap.Logger
}

func NewCashierHandler(cart usecase.CartService, products usecase.ProductService, renderer *web.Renderer, log *zap.Logger) *CashierHandler {
	return &CashierHandler{
		cart:     cart,
		products: products,
		renderer: renderer,
		log:      log,
	}
}

// Page handles GET /. The menu is fetched fresh on every activation;
// a failed fetch degrades to an empty menu with an inline message, the
// cart column stays usable.
func (h *CashierHandler) Page(w http.ResponseWriter, r *http.Request) {
	page := response.CashierPage{Page: newPage(r, "Cashier")}

	products, err := h.products.List(r.Context())
	if err != nil {
		h.log.Error("Failed to fetch menu", zap.Error(err))
		page.Error = "Failed to fetch products. Please try again later."
	}
	page.Products = products
	page.Cart = h.cart.Lines()
	page.Total = h.cart.Total()

	h.renderer.Render(w, "cashier", page)
}

// AddToCart handles POST /cart/add. Whatever arrives in the quantity
// field is coerced to a positive integer, defaulting to 1.
func (h *CashierHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, "/", "Invalid form submission")
		return
	}

	productID, err := utils.ParseID(r.FormValue("product_id"))
	if err != nil {
		redirectWithError(w, r, "/", "Unknown product")
		return
	}

	quantity := utils.ParseInt(r.FormValue("quantity"), 1)

	if err := h.cart.Add(r.Context(), productID, quantity); err != nil {
		h.log.Error("Failed to add to cart", zap.Int64("product_id", productID), zap.Error(err))
		redirectWithError(w, r, "/", "Failed to add product to cart")
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// RemoveFromCart handles POST /cart/remove/{id}. Removing something
// that is not in the cart just redirects back.
func (h *CashierHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	productID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err == nil {
		h.cart.Remove(productID)
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Checkout handles POST /checkout. On success the cart is already
// empty when the page re-renders; on failure it is untouched and the
// cashier can retry.
func (h *CashierHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	orderTotal, err := h.cart.Checkout(r.Context())
	if err != nil {
		redirectWithError(w, r, "/", "Checkout failed. Please try again.")
		return
	}

	msg := fmt.Sprintf("Checkout successful! Total: %s", utils.FormatRupiah(orderTotal))
	http.Redirect(w, r, "/?message="+url.QueryEscape(msg), http.StatusSeeOther)
}

func redirectWithError(w http.ResponseWriter, r *http.Request, path, msg string) {
	http.Redirect(w, r, path+"?error="+url.QueryEscape(msg), http.StatusSeeOther)
}

func redirectWithMessage(w http.ResponseWriter, r *http.Request, path, msg string) {
	http.Redirect(w, r, path+"?message="+url.QueryEscape(msg), http.StatusSeeOther)
}

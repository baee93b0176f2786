package adaptor

import (
	"net/http"
	"strings"

	"pos-terminal/internal/dto/request"
	"pos-terminal/internal/dto/response"
	"pos-terminal/internal/usecase"
	"pos-terminal/web"

	"go.uber.org/zap"
)

type AdminHandler struct {
	service  usecase.AccountService
	renderer *web.Renderer
	log      *zap.Logger
}

func NewAdminHandler(service usecase.AccountService, renderer *web.Renderer, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service:  service,
		renderer: renderer,
		log:      log,
	}
}

// Page handles GET /admincontrol.
func (h *AdminHandler) Page(w http.ResponseWriter, r *http.Request) {
	page := response.AdminPage{Page: newPage(r, "Admin Control")}
	page.AdminCount, page.CashierCount = h.service.Counts(r.Context())
	page.Form.Role = "cashier"

	h.renderer.Render(w, "admincontrol", page)
}

// CreateAccount handles POST /admincontrol/create-account. A password
// mismatch or an empty field is caught here and never leaves the
// process.
func (h *AdminHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, "/admincontrol", "Invalid form submission")
		return
	}

	req := &request.CreateAccountRequest{
		Username:        strings.TrimSpace(r.FormValue("username")),
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("confirm_password"),
		Role:            r.FormValue("role"),
	}

	message, err := h.service.Create(r.Context(), req)
	if err != nil {
		page := response.AdminPage{Page: newPage(r, "Admin Control")}
		page.AdminCount, page.CashierCount = h.service.Counts(r.Context())
		page.Error = err.Error()
		page.Form = response.AccountForm{Username: req.Username, Role: req.Role}

		h.renderer.Render(w, "admincontrol", page)
		return
	}

	redirectWithMessage(w, r, "/admincontrol", message)
}

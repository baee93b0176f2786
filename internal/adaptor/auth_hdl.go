package adaptor

import (
	"net/http"
	"strings"

	"pos-terminal/internal/data/entity"
	"pos-terminal/internal/dto/request"
	"pos-terminal/internal/dto/response"
	"pos-terminal/internal/usecase"
	"pos-terminal/web"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service  usecase.AuthService
	renderer *web.Renderer
	log      *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, renderer *web.Renderer, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service:  service,
		renderer: renderer,
		log:      log,
	}
}

// LoginPage handles GET /login. Always reachable, logged in or not;
// the navbar stays hidden here because the page carries no session.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	page := response.LoginPage{}
	page.Title = "POS Login"
	page.Error = r.URL.Query().Get("error")

	h.renderer.Render(w, "login", page)
}

// Login handles POST /login. The backend decides; this side only
// records the asserted identity and routes the operator to their
// landing page.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLoginError(w, "Invalid form submission")
		return
	}

	req := &request.LoginRequest{
		Username: strings.TrimSpace(r.FormValue("username")),
		Password: r.FormValue("password"),
	}

	sess, err := h.service.Login(r.Context(), req)
	if err != nil {
		h.renderLoginError(w, "Invalid credentials")
		return
	}

	// Admin lands on the catalog, cashier on the register
	if sess.Role == entity.RoleAdmin {
		http.Redirect(w, r, "/products", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout handles POST /logout. The store is cleared before the
// redirect so the login page's guard never sees the old session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(); err != nil {
		h.log.Error("Logout failed", zap.Error(err))
	}

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) renderLoginError(w http.ResponseWriter, msg string) {
	page := response.LoginPage{}
	page.Title = "POS Login"
	page.Error = msg

	h.renderer.Render(w, "login", page)
}

package middleware

import (
	"net/http"

	"pos-terminal/internal/data/entity"
	"pos-terminal/pkg/utils"

	"go.uber.org/zap"
)

// SessionReader is the synchronous, side-effect-free view of the
// session store the guards run against on every request.
type SessionReader interface {
	Get() *entity.Session
}

// RequireSession gates every route except the login page: no session
// means a redirect to /login, never an error page. The store is
// re-read per request, so a session cleared underneath a logged-in tab
// takes effect on the very next navigation.
func RequireSession(store SessionReader, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := store.Get()
			if !sess.Valid() {
				logger.Debug("No session, redirecting to login",
					zap.String("path", r.URL.Path))
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			ctx := utils.SetSessionContext(r.Context(), sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin layers the stricter role check on top of
// RequireSession. A non-admin session is bounced to the cashier page
// before the handler runs, so the privileged fetch never happens.
func RequireAdmin(store SessionReader, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := store.Get()
			if !sess.Valid() {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			if !sess.IsAdmin() {
				logger.Warn("Non-admin access attempt",
					zap.String("username", sess.Username),
					zap.String("path", r.URL.Path))
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

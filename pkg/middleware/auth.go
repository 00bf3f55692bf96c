package middleware

import (
	"net/http"
	"strings"

	"github.com/atelierhq/atelier/pkg/auth"
	"github.com/atelierhq/atelier/pkg/response"
	"github.com/atelierhq/atelier/pkg/session"
)

// RequireSession guards the admin pages. Requests without an authenticated
// session are redirected to the storefront root rather than shown an
// error page.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.FromCtx(r)
		if _, ok := sess.GetUint("user_id"); !ok {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireToken guards JSON API routes with a Bearer JWT.
func RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" {
			response.Unauthorized(w)
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Unauthorized(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithClaims(r.Context(), claims)))
	})
}

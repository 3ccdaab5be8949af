package storefront

import (
	"net/http"
	"strings"

	"TechStore/internal/admin"
	"TechStore/pkg/kit"
)

// RequireAdmin gates the catalog-mutating routes behind the live
// admin session token.
func RequireAdmin(g *admin.Guard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := r.Header.Get("Authorization")
			if !strings.HasPrefix(authz, "Bearer ") {
				kit.WriteError(w, r, http.StatusUnauthorized, "missing token", nil)
				return
			}

			if !g.Check(strings.TrimPrefix(authz, "Bearer ")) {
				kit.WriteError(w, r, http.StatusUnauthorized, "invalid session", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

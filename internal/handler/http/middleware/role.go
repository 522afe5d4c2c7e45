package middleware

import (
	"net/http"

	"github.com/opsdesk/workforce-backend-go/internal/handler/http/response"
)

// RequireApprover requires manager or admin role
func RequireApprover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, ok := CallerIdentity(r.Context())
		if !ok {
			response.Forbidden(w, "Approver access required")
			return
		}

		if !ident.CanApprove() {
			response.Forbidden(w, "Approver access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// AdminOnly requires admin role
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, ok := CallerIdentity(r.Context())
		if !ok {
			response.Forbidden(w, "Admin access required")
			return
		}

		if !ident.IsAdmin() {
			response.Forbidden(w, "Admin access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

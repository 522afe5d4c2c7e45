package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/opsdesk/workforce-backend-go/internal/domain/identity"
	"github.com/opsdesk/workforce-backend-go/internal/handler/http/response"
)

type contextKey string

const identityKey contextKey = "caller_identity"

// WithIdentity stores the resolved caller on the request context.
func WithIdentity(ctx context.Context, ident identity.Identity) context.Context {
	return context.WithValue(ctx, identityKey, ident)
}

// CallerIdentity returns the resolved caller, or false when the
// request never passed AuthRequired.
func CallerIdentity(ctx context.Context) (identity.Identity, bool) {
	ident, ok := ctx.Value(identityKey).(identity.Identity)
	return ident, ok
}

// AuthRequired verifies the identity token and resolves its claims
// into an identity.Identity on the request context. Run it after
// jwtauth.Verifier.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, identity.ErrInvalidToken)
				return
			}

			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "identity" {
				response.HandleError(w, identity.ErrInvalidToken)
				return
			}

			ident := identity.Identity{
				ID:       stringClaim(claims, "identity_id"),
				Name:     stringClaim(claims, "name"),
				Username: stringClaim(claims, "username"),
				Role:     identity.Role(stringClaim(claims, "role")),
			}
			if ident.ID == "" {
				response.HandleError(w, identity.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), ident)))
		}
		return http.HandlerFunc(hfn)
	}
}

func stringClaim(claims map[string]interface{}, key string) string {
	value, _ := claims[key].(string)
	return value
}

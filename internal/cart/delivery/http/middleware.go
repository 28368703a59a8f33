package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/kemasindo/storefront/internal/identity"
	"github.com/kemasindo/storefront/pkg/auth"
)

// AuthMiddleware validates the JWT and stores the identity in the
// request context. Anonymous requests pass through with no identity;
// the usecases reject unauthenticated mutations themselves so the
// handler can answer with the sign-in redirect hint.
func AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			respondError(w, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		claims, err := auth.ValidateToken(parts[1])
		if err != nil {
			respondError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := identity.WithIdentity(r.Context(), &identity.Identity{
			UserID:   claims.UserID,
			Username: claims.Username,
		})
		ctx = identity.WithSessionToken(ctx, parts[1])

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/strandvakten/ansokan/authenticator"
	"github.com/strandvakten/ansokan/userctx"
)

// RequireAuth rejects requests without a valid bearer token and stores
// the authenticated admin username in the request context.
func RequireAuth(auth *authenticator.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				unauthorized(w, "Saknar token.")
				return
			}

			claims, err := auth.Verify(token)
			if err != nil {
				unauthorized(w, "Ogiltig eller utgången token.")
				return
			}

			ctx := userctx.SetAdminName(r.Context(), claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(r *http.Request) string {
	hdr := r.Header.Get("Authorization")
	if !strings.HasPrefix(hdr, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(hdr, "Bearer "))
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

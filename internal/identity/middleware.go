package identity

import (
	"encoding/json"
	"net/http"
	"strings"
)

// RequireAuth rejects requests without a verifiable bearer token and
// stores the resolved Identity in the request context. Handlers derive
// the acting user exclusively from that identity, never from request
// bodies.
func RequireAuth(v Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if h == "" || !strings.HasPrefix(h, "Bearer ") {
				writeAuthError(w, "unauthorized")
				return
			}
			token := strings.TrimPrefix(h, "Bearer ")

			id, err := v.Verify(r.Context(), token)
			if err != nil {
				writeAuthError(w, "invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), id)))
		})
	}
}

func writeAuthError(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

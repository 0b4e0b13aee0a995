package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"afairytale/internal/delivery/http/helpers"
	"afairytale/internal/domain"
)

type contextKey string

const identityKey contextKey = "identity"

// SetIdentity returns a context with the caller identity set. Used by auth middleware.
func SetIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext returns the authenticated identity from the context, if present.
func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(domain.Identity)
	return identity, ok
}

// RequireAdmin returns a wrapper that resolves the Bearer token to an
// identity and only calls next if that identity carries the admin role.
// Every failure mode responds 403 with no side effects; the response does
// not distinguish a missing session from an insufficient role.
func RequireAdmin(verifier domain.TokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				helpers.WriteJSONError(w, http.StatusForbidden, "Forbidden")
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				helpers.WriteJSONError(w, http.StatusForbidden, "Forbidden")
				return
			}
			identity, err := verifier.Verify(token)
			if err != nil {
				logger.DebugContext(r.Context(), "token rejected", "path", r.URL.Path, "err", err)
				helpers.WriteJSONError(w, http.StatusForbidden, "Forbidden")
				return
			}
			if !identity.IsAdmin() {
				helpers.WriteJSONError(w, http.StatusForbidden, "Forbidden")
				return
			}
			r = r.WithContext(SetIdentity(r.Context(), identity))
			next(w, r)
		}
	}
}

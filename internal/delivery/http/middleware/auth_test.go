package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"afairytale/internal/delivery/http/helpers"
	"afairytale/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTokenVerifier implements domain.TokenVerifier for tests.
type fakeTokenVerifier struct {
	identity domain.Identity
	err      error
}

func (f *fakeTokenVerifier) Verify(_ string) (domain.Identity, error) {
	if f.err != nil {
		return domain.Identity{}, f.err
	}
	return f.identity, nil
}

func TestRequireAdmin(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

	tests := []struct {
		name          string
		authHeader    string
		verifier      domain.TokenVerifier
		wantStatus    int
		nextCalled    bool
		wantContextID string
	}{
		{
			name:          "admin token sets identity and calls next",
			authHeader:    "Bearer valid-token",
			verifier:      &fakeTokenVerifier{identity: domain.Identity{UserID: "user-123", Role: domain.RoleAdmin}},
			wantStatus:    http.StatusOK,
			nextCalled:    true,
			wantContextID: "user-123",
		},
		{
			name:       "missing authorization header",
			authHeader: "",
			verifier:   &fakeTokenVerifier{identity: domain.Identity{UserID: "user-123", Role: domain.RoleAdmin}},
			wantStatus: http.StatusForbidden,
			nextCalled: false,
		},
		{
			name:       "no Bearer prefix",
			authHeader: "Basic abc",
			verifier:   &fakeTokenVerifier{identity: domain.Identity{UserID: "user-123", Role: domain.RoleAdmin}},
			wantStatus: http.StatusForbidden,
			nextCalled: false,
		},
		{
			name:       "empty token after Bearer",
			authHeader: "Bearer ",
			verifier:   &fakeTokenVerifier{identity: domain.Identity{UserID: "user-123", Role: domain.RoleAdmin}},
			wantStatus: http.StatusForbidden,
			nextCalled: false,
		},
		{
			name:       "invalid token",
			authHeader: "Bearer expired",
			verifier:   &fakeTokenVerifier{err: errors.New("token expired")},
			wantStatus: http.StatusForbidden,
			nextCalled: false,
		},
		{
			name:       "valid token without admin role",
			authHeader: "Bearer valid-token",
			verifier:   &fakeTokenVerifier{identity: domain.Identity{UserID: "user-456", Role: "VISITOR"}},
			wantStatus: http.StatusForbidden,
			nextCalled: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			var gotIdentity domain.Identity
			next := func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotIdentity, _ = IdentityFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}

			handler := RequireAdmin(tt.verifier, logger)(next)
			req := httptest.NewRequest(http.MethodPost, "/events", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)
			if tt.nextCalled {
				assert.Equal(t, tt.wantContextID, gotIdentity.UserID)
				return
			}
			var body helpers.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, "Forbidden", body.Message)
		})
	}
}

package auth_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ferdiebergado/autokit/internal/auth"
	"github.com/ferdiebergado/autokit/internal/platform/jwt"
)

func TestMiddleware_RequireRole(t *testing.T) {
	t.Parallel()

	verifyWithRoles := func(roles ...string) func(string) (*jwt.Claims, error) {
		return func(tokenString string) (*jwt.Claims, error) {
			return &jwt.Claims{Subject: "1", Roles: roles}, nil
		}
	}

	tests := []struct {
		name     string
		header   string
		verify   func(string) (*jwt.Claims, error)
		required []auth.Role
		code     int
	}{
		{
			name:     "Valid token with matching role",
			header:   "Bearer access_token",
			verify:   verifyWithRoles("USER"),
			required: []auth.Role{auth.RoleUser},
			code:     http.StatusOK,
		},
		{
			name:     "Admin satisfies admin-or-person",
			header:   "Bearer access_token",
			verify:   verifyWithRoles("ADMIN"),
			required: []auth.Role{auth.RoleAdmin, auth.RolePerson},
			code:     http.StatusOK,
		},
		{
			name:     "Person satisfies admin-or-person",
			header:   "Bearer access_token",
			verify:   verifyWithRoles("PERSON"),
			required: []auth.Role{auth.RoleAdmin, auth.RolePerson},
			code:     http.StatusOK,
		},
		{
			name:     "User role on admin route",
			header:   "Bearer access_token",
			verify:   verifyWithRoles("USER"),
			required: []auth.Role{auth.RoleAdmin},
			code:     http.StatusForbidden,
		},
		{
			name:     "Unknown role claim",
			header:   "Bearer access_token",
			verify:   verifyWithRoles("SUPERVISOR"),
			required: []auth.Role{auth.RoleUser},
			code:     http.StatusForbidden,
		},
		{
			name:     "Missing Authorization header",
			header:   "",
			verify:   verifyWithRoles("USER"),
			required: []auth.Role{auth.RoleUser},
			code:     http.StatusUnauthorized,
		},
		{
			name:   "Invalid token",
			header: "Bearer bad_token",
			verify: func(tokenString string) (*jwt.Claims, error) {
				return nil, errors.New("token is expired")
			},
			required: []auth.Role{auth.RoleUser},
			code:     http.StatusUnauthorized,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if _, err := auth.SubjectFromContext(r.Context()); err != nil {
					http.Error(w, err.Error(), http.StatusInternalServerError)
					return
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/automobiles", http.NoBody)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()

			signer := &jwt.StubSigner{VerifyFunc: tc.verify}
			mw := auth.RequireRole(signer, tc.required...)
			mw(handler).ServeHTTP(rec, req)

			gotCode, wantCode := rec.Code, tc.code
			if gotCode != wantCode {
				t.Errorf("rec.Code = %d, want: %d", gotCode, wantCode)
			}
		})
	}
}

package auth

import (
	"fmt"
	"net/http"

	"github.com/ferdiebergado/autokit/internal/pkg/message"
	"github.com/ferdiebergado/autokit/internal/pkg/security"
	"github.com/ferdiebergado/autokit/internal/pkg/web"
	"github.com/ferdiebergado/autokit/internal/platform/jwt"
)

// RequireRole verifies the bearer token and checks that its role claim
// satisfies at least one of the required roles. Missing or invalid
// credentials get 401, an insufficient role set gets 403.
func RequireRole(signer jwt.Signer, required ...Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := security.ExtractBearerToken(r)
			if err != nil || token == "" {
				web.RespondUnauthorized(w, err, message.InvalidToken, nil)
				return
			}

			claims, err := signer.Verify(token)
			if err != nil {
				web.RespondUnauthorized(w, err, message.InvalidToken, nil)
				return
			}

			roles := ParseRoles(claims.Roles)
			if !HasAnyRole(roles, required...) {
				web.RespondForbidden(w, fmt.Errorf("roles %v do not satisfy %v", roles, required), message.InsufficientRole, nil)
				return
			}

			ctx := ContextWithSubject(r.Context(), Subject{ID: claims.Subject, Roles: roles})
			r = r.WithContext(ctx)
			next.ServeHTTP(w, r)
		})
	}
}

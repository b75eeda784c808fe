package auth

import (
	"net/http"

	"github.com/hmondejar/notekit/internal/pkg/message"
	"github.com/hmondejar/notekit/internal/pkg/security"
	"github.com/hmondejar/notekit/internal/pkg/web"
	"github.com/hmondejar/notekit/internal/platform/jwt"
)

// RequireToken guards a route with a bearer identity token. On success the
// authenticated user's ID is stored in the request context.
func RequireToken(signer jwt.Signer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := security.ExtractBearerToken(r)
			if err != nil {
				web.RespondUnauthorized(w, err, message.InvalidToken, nil)
				return
			}

			claims, err := signer.Verify(token)
			if err != nil {
				web.RespondUnauthorized(w, err, message.InvalidToken, nil)
				return
			}

			ctx := ContextWithUser(r.Context(), claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

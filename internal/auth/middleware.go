package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	apierrors "metzenhof/internal/errors"
)

type contextKey struct{}

// TokenParser validates a bearer token and returns the admin it belongs to.
type TokenParser interface {
	ParseToken(token string) (string, error)
}

// AdminAuthMiddleware rejects requests without a valid bearer JWT.
func AdminAuthMiddleware(parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				apierrors.Write(w, apierrors.ErrUnauthorized("Unauthorized"))
				return
			}
			email, err := parser.ParseToken(token)
			if err != nil {
				log.Debug().Err(err).Msg("rejected admin token")
				apierrors.Write(w, apierrors.ErrUnauthorized("Unauthorized"))
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), contextKey{}, email)))
		})
	}
}

// AdminEmail returns the authenticated admin stored by AdminAuthMiddleware.
func AdminEmail(ctx context.Context) string {
	email, _ := ctx.Value(contextKey{}).(string)
	return email
}

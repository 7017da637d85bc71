package middleware

import (
	"net/http"

	"github.com/fournilsoft/backoffice-go/internal/domain/auth"
	"github.com/fournilsoft/backoffice-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired rejects requests whose bearer token is missing, invalid or
// not an access token. Refresh tokens travel in a cookie and are never
// accepted on protected routes.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}
			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			if tokenType, ok := claims["type"].(string); !ok || tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

package middleware

import (
	"net/http"

	"github.com/fournilsoft/backoffice-go/internal/domain/auth"
	"github.com/fournilsoft/backoffice-go/internal/domain/user"
	"github.com/fournilsoft/backoffice-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// AdminOnly guards the endpoints that change money: period closing, the chart
// of accounts, credit adjustments.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(user.RoleAdmin) {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

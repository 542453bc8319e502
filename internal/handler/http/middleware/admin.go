package middleware

import (
	"net/http"

	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/domain/auth"
	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/domain/user"
	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// AdminOnly restricts a route to users with the admin flag in their
// access token.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		admin, ok := claims["is_admin"].(bool)
		if !ok || !admin {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/innovyx-tech/hrms-backend-go/internal/domain/user"
	"github.com/innovyx-tech/hrms-backend-go/internal/handler/http/response"
)

// RequireAdmin requires admin or master role
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}

		if role != string(user.RoleAdmin) && role != string(user.RoleMaster) {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

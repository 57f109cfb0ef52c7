package middleware

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SlotBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SlotBooking/internal/domain"
	"github.com/m04kA/SMC-SlotBooking/internal/service/access"
)

const (
	msgMissingCaller = "требуется заголовок " + HeaderUserEmail
	msgForbidden     = "доступ запрещен"
)

// RequireRoles пропускает запрос, только если роль вызывающего входит в roles
func RequireRoles(logger Logger, roles ...domain.Role) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, _ := GetCaller(r.Context())

			if err := access.Authorize(caller, roles...); err != nil {
				if errors.Is(err, access.ErrNoCaller) {
					logger.Warn("%s %s - Missing caller", r.Method, r.URL.Path)
					handlers.RespondUnauthorized(w, msgMissingCaller)
					return
				}
				logger.Warn("%s %s - Access denied: email=%s, role=%s", r.Method, r.URL.Path, caller.Email, caller.Role)
				handlers.RespondForbidden(w, msgForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

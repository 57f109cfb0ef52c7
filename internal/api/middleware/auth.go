package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SlotBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SlotBooking/internal/domain"
	"github.com/m04kA/SMC-SlotBooking/internal/infra/storage/account"
)

// HeaderUserEmail заголовок, которым шлюз передаёт email аутентифицированного пользователя
const HeaderUserEmail = "X-User-Email"

const msgUnknownUser = "пользователь не найден"

type callerKey struct{}

// WithCaller кладёт вызывающего в контекст
func WithCaller(ctx context.Context, caller domain.Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

// GetCaller достаёт вызывающего из контекста
// Для анонимного запроса возвращает пустого Caller и false
func GetCaller(ctx context.Context) (domain.Caller, bool) {
	caller, ok := ctx.Value(callerKey{}).(domain.Caller)
	return caller, ok
}

// Auth определяет вызывающего по заголовку X-User-Email
// Пароли и сессии не проверяются: аутентификацию выполняет шлюз перед сервисом.
// Запрос без заголовка проходит дальше анонимным, неизвестный email - 401.
func Auth(accounts AccountResolver, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := strings.TrimSpace(r.Header.Get(HeaderUserEmail))
			if email == "" {
				next.ServeHTTP(w, r)
				return
			}

			acc, err := accounts.GetByEmail(r.Context(), email)
			if err != nil {
				if errors.Is(err, account.ErrAccountNotFound) {
					logger.Warn("Auth - Unknown account: email=%s", email)
					handlers.RespondUnauthorized(w, msgUnknownUser)
					return
				}
				logger.Error("Auth - Failed to resolve account: email=%s, error=%v", email, err)
				handlers.RespondInternalError(w)
				return
			}

			ctx := WithCaller(r.Context(), domain.CallerFromAccount(acc))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

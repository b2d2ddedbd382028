package middleware

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/callassist/CallAssist-BookingService/internal/api/handlers"
)

const bearerPrefix = "Bearer "

// Auth проверяет Bearer токен в заголовке Authorization.
// Пустой настроенный токен отключает проверку (для локальной разработки).
func Auth(apiToken string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiToken == "" {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				handlers.RespondUnauthorized(w, "missing bearer token")
				return
			}

			if strings.TrimPrefix(header, bearerPrefix) != apiToken {
				handlers.RespondUnauthorized(w, "invalid api token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

package middleware

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net/http"
)

// StaffKeyHeader заголовок с ключом доступа персонала
const StaffKeyHeader = "X-Staff-Key"

type contextKey string

const staffContextKey contextKey = "staff"

// StaffAuth проверяет ключ персонала для защищённых маршрутов дашборда.
// Ключ сравнивается в константное время, при несовпадении возвращается 401.
func StaffAuth(staffKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(StaffKeyHeader)
			if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(staffKey)) != 1 {
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "требуется ключ персонала"})
				return
			}

			ctx := context.WithValue(r.Context(), staffContextKey, true)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IsStaff возвращает true, если запрос прошёл проверку ключа персонала
func IsStaff(ctx context.Context) bool {
	v, ok := ctx.Value(staffContextKey).(bool)
	return ok && v
}

package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/facilitae/FAC-AmenityService/internal/api/handlers"
)

const msgMissingUserID = "falta el encabezado X-User-ID"

// userIDKey ключ контекста для ID пользователя
type userIDKey struct{}

// Auth проверяет наличие заголовка X-User-ID и кладет его значение в контекст.
// Аутентификацию выполняет внешний gateway; здесь только pass-through.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("X-User-ID")
		userID, err := strconv.ParseInt(raw, 10, 64)
		if raw == "" || err != nil {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey{}).(int64)
	return userID, ok
}

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-OvenBooking/internal/api/handlers"
	"github.com/m04kA/SMC-OvenBooking/internal/service/users/models"
)

// Заголовки, выставляемые шлюзом аутентификации
const (
	HeaderUserID    = "X-User-ID"
	HeaderUserName  = "X-User-Name"
	HeaderUserEmail = "X-User-Email"
)

const (
	msgMissingUserID = "отсутствует заголовок X-User-ID"
	msgUserSync      = "не удалось зарегистрировать пользователя"
)

type contextKey string

const userIDKey contextKey = "userID"

// UserEnsurer регистрирует пользователя при первом обращении
type UserEnsurer interface {
	EnsureUser(ctx context.Context, req *models.EnsureUserRequest) (*models.UserResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth извлекает ID пользователя из X-User-ID и кладет его в контекст
// Аутентификацию выполняет шлюз, сервис доверяет заголовку
func Auth(users UserEnsurer, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := strings.TrimSpace(r.Header.Get(HeaderUserID))
			if userID == "" {
				handlers.RespondUnauthorized(w, msgMissingUserID)
				return
			}

			if _, err := users.EnsureUser(r.Context(), &models.EnsureUserRequest{
				UserID: userID,
				Name:   r.Header.Get(HeaderUserName),
				Email:  r.Header.Get(HeaderUserEmail),
			}); err != nil {
				logger.Error("Auth: failed to ensure user=%s: %v", userID, err)
				handlers.RespondError(w, http.StatusInternalServerError, msgUserSync)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// WithUserID кладет ID пользователя в контекст
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}

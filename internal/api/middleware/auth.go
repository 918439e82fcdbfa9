package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/EduManager-BookingService/internal/api/handlers"
	"github.com/m04kA/EduManager-BookingService/internal/domain"
	sessionStore "github.com/m04kA/EduManager-BookingService/internal/infra/cache/session"
	userRepo "github.com/m04kA/EduManager-BookingService/internal/infra/storage/user"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	// UserKey is the context key for the authenticated user
	UserKey contextKey = "user"
)

const (
	MsgNotLoggedIn = "Chưa đăng nhập!"
	MsgAdminOnly   = "Chỉ Admin mới có quyền này."
	MsgStaffOnly   = "Chỉ Giáo viên hoặc Admin mới có quyền này."
)

// Auth определяет пользователя по cookie сессии и кладёт его в контекст
// Запрос без сессии пропускается дальше анонимным
type Auth struct {
	cookieName string
	sessions   SessionStore
	users      UserRepository
	logger     Logger
}

// NewAuth создает middleware аутентификации
func NewAuth(cookieName string, sessions SessionStore, users UserRepository, logger Logger) *Auth {
	return &Auth{
		cookieName: cookieName,
		sessions:   sessions,
		users:      users,
		logger:     logger,
	}
}

// Middleware возвращает http middleware
func (a *Auth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(a.cookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		userID, err := a.sessions.Get(r.Context(), cookie.Value)
		if err != nil {
			if !errors.Is(err, sessionStore.ErrSessionNotFound) {
				a.logger.Error("Auth: failed to read session: %v", err)
			}
			next.ServeHTTP(w, r)
			return
		}

		user, err := a.users.GetByID(r.Context(), userID)
		if err != nil {
			if !errors.Is(err, userRepo.ErrUserNotFound) {
				a.logger.Error("Auth: failed to load user id=%d: %v", userID, err)
			}
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

// WithUser кладёт пользователя в контекст
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, UserKey, user)
}

// GetUser retrieves the authenticated user from request context
func GetUser(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(UserKey).(*domain.User)
	return user, ok && user != nil
}

// RequireSession пропускает только запросы с сессией
// Без сессии отвечает бизнес-ошибкой с кодом 200
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUser(r.Context()); !ok {
			handlers.RespondBusinessError(w, MsgNotLoggedIn)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole пропускает пользователей с одной из ролей
// Без сессии 401, с чужой ролью 403 с текстом detail
func RequireRole(detail string, roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := GetUser(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, MsgNotLoggedIn)
				return
			}
			if !domain.Allow(user, roles...) {
				handlers.RespondForbidden(w, detail)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin только администраторы
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(MsgAdminOnly, domain.AdminRoles...)(next)
}

// RequireStaff администраторы и преподаватели
func RequireStaff(next http.Handler) http.Handler {
	return RequireRole(MsgStaffOnly, domain.StaffRoles...)(next)
}

// Chain applies middleware in reverse order (last middleware executes first)
func Chain(h http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

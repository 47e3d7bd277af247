package middleware

import (
	"context"
	"game_roulette/internal/model"
	"game_roulette/internal/service"
	"game_roulette/pkg/resp"
	"net/http"
	"strings"
)

type ctxKey struct{}

// RequireHost - пропускает только запросы с токеном ведущего в заголовке Authorization.
// Если пароль ведущего не настроен, пропускает всех
func RequireHost(auth service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !auth.Enabled() {
				next.ServeHTTP(w, r)
				return
			}

			// Достаем токен из заголовка
			header := r.Header.Get("Authorization")
			tokenStr, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenStr == "" {
				resp.WriteError(w, http.StatusUnauthorized, "missing host token")
				return
			}

			claims, err := auth.Verify(tokenStr)
			if err != nil {
				resp.WriteError(w, http.StatusUnauthorized, "invalid host token")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// HostFromContext - claims ведущего, если запрос прошел RequireHost с включенной проверкой
func HostFromContext(ctx context.Context) (*model.HostClaims, bool) {
	claims, ok := ctx.Value(ctxKey{}).(*model.HostClaims)
	return claims, ok
}

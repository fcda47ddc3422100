package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/SergeyBogomolovv/shop-order-service/internal/auth"
	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-service/pkg/utils"
)

// имя cookie совпадает с тем, что выставляет обработчик входа
const accessCookie = "token"

type TokenParser interface {
	Parse(token string, kind auth.Kind) (auth.Claims, error)
}

// Authenticate достает access токен из заголовка Authorization или cookie
// и кладет claims в контекст запроса.
func Authenticate(parser TokenParser) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := parser.Parse(token, auth.KindAccess)
			if err != nil {
				utils.WriteError(w, entities.ErrInvalidToken.Error(), http.StatusUnauthorized)
				return
			}

			markUser(r.Context(), claims.UserID)
			next.ServeHTTP(w, r.WithContext(auth.WithClaims(r.Context(), claims)))
		})
	}
}

// RequireRole пропускает только пользователей с одной из ролей.
// Должен стоять после Authenticate.
func RequireRole(roles ...entities.Role) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := auth.FromContext(r.Context())
			if !ok {
				utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			if !slices.Contains(roles, claims.Role) {
				utils.WriteError(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}
	if c, err := r.Cookie(accessCookie); err == nil {
		return c.Value
	}
	return ""
}

package middleware

import (
	"context"
	"net/http"
	"strings"

	"clockinout/internal/http/api"
	"github.com/go-chi/render"
	"github.com/golang-jwt/jwt/v5"
)

type key int

const UserIDKey key = 1

// Auth verifies the bearer token and stores the subject claim in the
// request context.
func Auth(secret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := r.Header.Get("Authorization")

			if tokenString == "" {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, api.Error(api.ErrCodeUnauthorized, "missing token"))
				return
			}

			tokenString, _ = strings.CutPrefix(tokenString, "Bearer ")

			subject, ok := validateToken(tokenString, secret)
			if !ok {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, api.Error(api.ErrCodeUnauthorized, "invalid token"))
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func validateToken(tokenString, secret string) (string, bool) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	})

	if err != nil || !token.Valid {
		return "", false
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", false
	}

	return subject, true
}

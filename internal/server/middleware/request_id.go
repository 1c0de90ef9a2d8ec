// Присвоение каждому запросу request id для трассировки в логах
package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// requestIDKey — ключ контекста, под которым хранится идентификатор запроса.
const requestIDKey ctxKey = "request_id"

// HeaderRequestID — заголовок, через который request id попадает в ответ
// (и может прийти от reverse proxy во входящем запросе).
const HeaderRequestID = "X-Request-Id"

// RequestIDFromContext извлекает идентификатор запроса из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(requestIDKey)
	s, ok := v.(string)
	return s, ok
}

// RequestIDMiddleware помечает каждый запрос уникальным идентификатором.
//
// Если клиент (или proxy) уже прислал X-Request-Id — используем его,
// иначе генерируем новый UUID. Идентификатор кладётся в контекст
// и возвращается в заголовке ответа.
func RequestIDMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(HeaderRequestID)
			if id == "" {
				id = uuid.NewString()
			}

			w.Header().Set(HeaderRequestID, id)

			ctx := context.WithValue(r.Context(), requestIDKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

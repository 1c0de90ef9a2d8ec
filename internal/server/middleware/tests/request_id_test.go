package tests

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-todo-service/internal/server/middleware"
)

// Сгенерированный id попадает в контекст и в заголовок ответа
func TestRequestIDMiddleware_Generated(t *testing.T) {
	mw := middleware.RequestIDMiddleware()

	var got string
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := middleware.RequestIDFromContext(r.Context())
		require.True(t, ok)
		got = id
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	require.NotEmpty(t, got)
	// это должен быть валидный uuid
	_, err := uuid.Parse(got)
	require.NoError(t, err)

	require.Equal(t, got, rr.Header().Get(middleware.HeaderRequestID))
}

// Пришедший от proxy id переиспользуется
func TestRequestIDMiddleware_FromHeader(t *testing.T) {
	mw := middleware.RequestIDMiddleware()

	var got string
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = middleware.RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.HeaderRequestID, "req-123")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	require.Equal(t, "req-123", got)
	require.Equal(t, "req-123", rr.Header().Get(middleware.HeaderRequestID))
}

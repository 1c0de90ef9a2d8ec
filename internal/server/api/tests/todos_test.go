package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/go-todo-service/internal/server/api"
	crypt "github.com/IvanChernomyrdin/go-todo-service/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-todo-service/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-todo-service/internal/shared/errors"
)

// protectedTodos оборачивает хендлеры задач в JWT middleware —
// так тесты проходят тот же путь, что и реальный запрос.
func protectedTodos(h *api.Handler) http.Handler {
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(h.Verifier.AuthMiddleware())
		r.Post("/todos", h.CreateTodo)
		r.Get("/todos", h.ListTodos)
	})
	return r
}

func issueTestToken(t *testing.T, subject string) string {
	t.Helper()

	token, err := crypt.NewAccessToken(subject, crypt.JWTConfig{
		Issuer:     "issuer",
		Audience:   "audience",
		SigningKey: testSigningKey,
		AccessTTL:  time.Minute,
	})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

func TestHandler_CreateTodo_Success(t *testing.T) {
	t.Parallel()

	h, _, todos := NewTestHandler(t)

	created := time.Now().UTC()

	todos.EXPECT().
		Create(gomock.Any(), int64(42), "Buy milk").
		Return(models.Todo{ID: 10, Title: "Buy milk", UserID: 42, CreatedAt: created}, nil)

	body, _ := json.Marshal(api.CreateTodoRequest{Title: "Buy milk"})
	req := httptest.NewRequest(http.MethodPost, "/todos", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+issueTestToken(t, "42"))
	rec := httptest.NewRecorder()

	protectedTodos(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusCreated, rec.Code, rec.Body.String())
	}

	var resp api.TodoResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != 10 || resp.Title != "Buy milk" || resp.UserID != 42 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Completed {
		t.Fatal("expected new todo to be not completed")
	}
}

func TestHandler_CreateTodo_NoToken(t *testing.T) {
	t.Parallel()

	h, _, _ := NewTestHandler(t)

	body, _ := json.Marshal(api.CreateTodoRequest{Title: "Buy milk"})
	req := httptest.NewRequest(http.MethodPost, "/todos", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	protectedTodos(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestHandler_CreateTodo_BadToken(t *testing.T) {
	t.Parallel()

	h, _, _ := NewTestHandler(t)

	body, _ := json.Marshal(api.CreateTodoRequest{Title: "Buy milk"})
	req := httptest.NewRequest(http.MethodPost, "/todos", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()

	protectedTodos(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestHandler_CreateTodo_EmptyTitle(t *testing.T) {
	t.Parallel()

	h, _, _ := NewTestHandler(t)

	body, _ := json.Marshal(api.CreateTodoRequest{Title: "   "})
	req := httptest.NewRequest(http.MethodPost, "/todos", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+issueTestToken(t, "42"))
	rec := httptest.NewRecorder()

	protectedTodos(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestHandler_CreateTodo_BadJSON(t *testing.T) {
	t.Parallel()

	h, _, _ := NewTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/todos", bytes.NewBufferString("{bad json"))
	req.Header.Set("Authorization", "Bearer "+issueTestToken(t, "42"))
	rec := httptest.NewRecorder()

	protectedTodos(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestHandler_ListTodos_Success(t *testing.T) {
	t.Parallel()

	h, _, todos := NewTestHandler(t)

	now := time.Now().UTC()

	todos.EXPECT().
		List(gomock.Any(), int64(42)).
		Return([]models.Todo{
			{ID: 2, Title: "newer", UserID: 42, CreatedAt: now},
			{ID: 1, Title: "older", UserID: 42, Completed: true, CreatedAt: now.Add(-time.Hour)},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	req.Header.Set("Authorization", "Bearer "+issueTestToken(t, "42"))
	rec := httptest.NewRecorder()

	protectedTodos(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusOK, rec.Code, rec.Body.String())
	}

	var resp []api.TodoResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 todos, got %d", len(resp))
	}
	if resp[0].ID != 2 || resp[1].ID != 1 {
		t.Fatalf("unexpected order: %+v", resp)
	}
}

// Пустой список сериализуется как [], а не null
func TestHandler_ListTodos_Empty(t *testing.T) {
	t.Parallel()

	h, _, todos := NewTestHandler(t)

	todos.EXPECT().
		List(gomock.Any(), int64(42)).
		Return([]models.Todo{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	req.Header.Set("Authorization", "Bearer "+issueTestToken(t, "42"))
	rec := httptest.NewRecorder()

	protectedTodos(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
	if got := bytes.TrimSpace(rec.Body.Bytes()); string(got) != "[]" {
		t.Fatalf("expected empty json array, got %q", got)
	}
}

func TestHandler_ListTodos_RepoError(t *testing.T) {
	t.Parallel()

	h, _, todos := NewTestHandler(t)

	todos.EXPECT().
		List(gomock.Any(), int64(42)).
		Return(nil, serr.ErrInternal)

	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	req.Header.Set("Authorization", "Bearer "+issueTestToken(t, "42"))
	rec := httptest.NewRecorder()

	protectedTodos(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d, got %d", http.StatusInternalServerError, rec.Code)
	}
}

// Каждый видит только своё: subject токена определяет выборку
func TestHandler_ListTodos_ScopedToSubject(t *testing.T) {
	t.Parallel()

	h, _, todos := NewTestHandler(t)

	todos.EXPECT().
		List(gomock.Any(), int64(7)).
		Return([]models.Todo{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	req.Header.Set("Authorization", "Bearer "+issueTestToken(t, "7"))
	rec := httptest.NewRecorder()

	protectedTodos(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
}

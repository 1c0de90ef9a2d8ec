package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/IvanChernomyrdin/go-todo-service/internal/agent/api"
)

func TestClient_CreateTodo_OK(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/todos", func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Bearer token-1" {
			t.Fatalf("expected Authorization Bearer token-1, got %q", auth)
		}

		var req api.CreateTodoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Title != "Buy milk" {
			t.Fatalf("unexpected title: %q", req.Title)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(api.Todo{
			ID:        10,
			Title:     req.Title,
			UserID:    42,
			CreatedAt: time.Now().UTC(),
		})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	todo, err := c.CreateTodo("Buy milk", "token-1")
	if err != nil {
		t.Fatalf("CreateTodo returned error: %v", err)
	}
	if todo.ID != 10 || todo.Title != "Buy milk" || todo.UserID != 42 {
		t.Fatalf("unexpected todo: %+v", todo)
	}
}

func TestClient_ListTodos_OK(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/todos", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Fatalf("expected GET, got %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]api.Todo{
			{ID: 2, Title: "newer"},
			{ID: 1, Title: "older", Completed: true},
		})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	todos, err := c.ListTodos("token-1")
	if err != nil {
		t.Fatalf("ListTodos returned error: %v", err)
	}
	if len(todos) != 2 {
		t.Fatalf("expected 2 todos, got %d", len(todos))
	}
	if todos[0].ID != 2 || todos[1].ID != 1 {
		t.Fatalf("unexpected order: %+v", todos)
	}
}

func TestClient_ListTodos_Empty(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/todos", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]api.Todo{})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	todos, err := c.ListTodos("token-1")
	if err != nil {
		t.Fatalf("ListTodos returned error: %v", err)
	}
	if len(todos) != 0 {
		t.Fatalf("expected empty list, got %+v", todos)
	}
}

func TestClient_Health_OK(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "" {
			t.Fatalf("health must not send Authorization, got %q", auth)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(api.HealthResponse{
			Status:    "ok",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	h, err := c.Health()
	if err != nil {
		t.Fatalf("Health returned error: %v", err)
	}
	if h.Status != "ok" {
		t.Fatalf("expected ok, got %q", h.Status)
	}
}

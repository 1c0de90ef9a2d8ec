// HTTP-хендлеры задач (todos)
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/IvanChernomyrdin/go-todo-service/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-todo-service/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-todo-service/internal/shared/errors"
)

// CreateTodoRequest тело запроса создания задачи.
type CreateTodoRequest struct {
	Title string `json:"title"`
}

// TodoResponse — задача в ответах API.
type TodoResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func todoToResponse(t models.Todo) TodoResponse {
	return TodoResponse{
		ID:        t.ID,
		Title:     t.Title,
		Completed: t.Completed,
		UserID:    t.UserID,
		CreatedAt: t.CreatedAt,
	}
}

// userIDFromRequest достаёт аутентифицированный subject из контекста
// и приводит его к числовому id пользователя.
func userIDFromRequest(r *http.Request) (int64, error) {
	subject, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		return 0, serr.ErrUnauthorized
	}
	id, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, serr.ErrUnauthorized
	}
	return id, nil
}

// CreateTodo создаёт новую задачу для аутентифицированного пользователя.
//
// Владелец задачи берётся из subject проверенного токена —
// никаких дефолтных user_id.
//
// Требует JWT-аутентификацию.
//
// Ответы:
//   - 201 Created: задача создана, в теле созданная запись;
//   - 400 Bad Request: неверный JSON или пустой title;
//   - 401 Unauthorized: нет или не прошёл токен;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Create todo
// @Description  Creates a new todo owned by the authenticated user.
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateTodoRequest true "Create todo request"
// @Success      201 {object} TodoResponse
// @Failure      400 {object} ErrorResponse "Invalid input or bad JSON"
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /todos [post]
func (h *Handler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	var req CreateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	userID, err := userIDFromRequest(r)
	if err != nil {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	todo, err := h.Svc.Todos.Create(r.Context(), userID, req.Title)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, err)
		default:
			h.Log.Logger.Sugar().Errorw(
				"create todo failed",
				"error", err,
				"user_id", userID,
			)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(todoToResponse(todo))
}

// ListTodos возвращает все задачи текущего пользователя, новые первыми.
//
// Пользователь определяется по JWT-токену (middleware).
//
// Ответы:
//   - 200 OK: массив задач (может быть пустым);
//   - 401 Unauthorized: нет или не прошёл токен;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      List todos
// @Description  Returns the authenticated user's todos ordered by creation time descending.
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} TodoResponse
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /todos [get]
func (h *Handler) ListTodos(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	todos, err := h.Svc.Todos.List(r.Context(), userID)
	if err != nil {
		h.Log.Logger.Sugar().Errorw(
			"list todos failed",
			"error", err,
			"user_id", userID,
		)
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		return
	}

	resp := make([]TodoResponse, 0, len(todos))
	for _, t := range todos {
		resp = append(resp, todoToResponse(t))
	}

	w.Header().Set(ContentType, JsonContentType)
	json.NewEncoder(w).Encode(resp)
}

// Package http реализует маршрутизацию HTTP-слоя todo-сервиса.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - логирование выполнения HTTP-запросов;
//   - CORS и request-id;
//   - проверку JWT access-токенов на защищённых путях.
package http

import (
	"net/http"

	"github.com/IvanChernomyrdin/go-todo-service/internal/server/api"
	"github.com/IvanChernomyrdin/go-todo-service/internal/server/config"
	"github.com/IvanChernomyrdin/go-todo-service/internal/server/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - публичные эндпоинты /health и аутентификацию под префиксом /auth;
//   - middleware request-id, логирования и CORS для всех запросов;
//   - группу защищённых JWT эндпоинтов /todos.
func NewRouter(h *api.Handler, cors config.CORSConfig) http.Handler {
	r := chi.NewRouter()
	// каждый запрос получает request id и попадает в лог
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	if cors.Enabled {
		r.Use(middleware.CORSMiddleware(cors.AllowedOrigins))
	}

	// добавляем swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Публичные пути
	r.Get("/health", h.Health)
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.Signup)
		r.Post("/login", h.Login)
	})

	// защищённые пути
	r.Group(func(r chi.Router) {
		// проверка access токена
		r.Use(h.Verifier.AuthMiddleware())
		r.Route("/todos", func(r chi.Router) {
			r.Post("/", h.CreateTodo) // Создание задачи
			r.Get("/", h.ListTodos)   // Получение всех задач пользователя
		})
	})

	return r
}

// Package service содержит бизнес-логику приложения (todo-сервис).
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
package service

import (
	"context"

	"github.com/IvanChernomyrdin/go-todo-service/internal/server/config"
	"github.com/IvanChernomyrdin/go-todo-service/internal/server/models"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users UsersRepo
	Todos TodosRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Auth  *AuthService
	Todos *TodosService
}

// NewServices собирает все сервисы приложения.
// cfg нужен AuthService (параметры хэширования пароля и JWT).
func NewServices(repos Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:  NewAuthService(repos.Users, cfg),
		Todos: NewTodosService(repos.Todos),
	}
}

// UsersRepo — репозиторий пользователей (нужен для auth/signup/login).
type UsersRepo interface {
	Create(ctx context.Context, email, passwordHash string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, id int64) (models.User, error)
}

// TodosRepo — репозиторий задач.
type TodosRepo interface {
	Create(ctx context.Context, userID int64, title string) (models.Todo, error)
	List(ctx context.Context, userID int64) ([]models.Todo, error)
}

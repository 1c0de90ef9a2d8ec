package service

import (
	"context"
	"strings"

	"github.com/IvanChernomyrdin/go-todo-service/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-todo-service/internal/shared/errors"
)

// TodosService реализует бизнес-логику работы с задачами пользователя.
// Сервис:
//   - валидирует входные данные;
//   - не знает о HTTP и БД напрямую.
type TodosService struct {
	repo TodosRepo
}

// NewTodosService создаёт новый TodosService.
func NewTodosService(repo TodosRepo) *TodosService {
	return &TodosService{repo: repo}
}

// Create создаёт новую задачу пользователя.
//
// Владелец задачи — аутентифицированный subject из access токена,
// никаких захардкоженных user_id.
//
// Ошибки:
//   - ErrInvalidInput — пустой title;
//   - ErrInternal — ошибка хранилища.
func (s *TodosService) Create(ctx context.Context, userID int64, title string) (models.Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Todo{}, serr.ErrInvalidInput
	}

	return s.repo.Create(ctx, userID, title)
}

// List возвращает все задачи пользователя, новые первыми.
func (s *TodosService) List(ctx context.Context, userID int64) ([]models.Todo, error) {
	return s.repo.List(ctx, userID)
}

package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/IvanChernomyrdin/go-todo-service/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-todo-service/internal/shared/errors"
)

// TodosRepository реализует доступ к таблице todos.
type TodosRepository struct {
	db *sql.DB

	insertQuery string
	listQuery   string
}

func NewTodosRepository(db *sql.DB, driver Driver) *TodosRepository {
	r := &TodosRepository{db: db}

	switch driver {
	case DriverPostgres:
		r.insertQuery = `INSERT INTO todos (title, completed, user_id, created_at)
		 VALUES ($1,$2,$3,$4)
		 RETURNING id`
		r.listQuery = `SELECT id, title, completed, user_id, created_at
		 FROM todos
		 WHERE user_id=$1
		 ORDER BY created_at DESC, id DESC`
	default:
		r.insertQuery = `INSERT INTO todos (title, completed, user_id, created_at)
		 VALUES (?,?,?,?)
		 RETURNING id`
		r.listQuery = `SELECT id, title, completed, user_id, created_at
		 FROM todos
		 WHERE user_id=?
		 ORDER BY created_at DESC, id DESC`
	}

	return r
}

// Create сохраняет новую задачу пользователя.
//
// completed всегда false при создании, created_at — серверное время.
func (r *TodosRepository) Create(ctx context.Context, userID int64, title string) (models.Todo, error) {
	t := models.Todo{
		Title:     title,
		Completed: false,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}

	err := r.db.QueryRowContext(ctx, r.insertQuery,
		title, t.Completed, userID, t.CreatedAt,
	).Scan(&t.ID)

	if err != nil {
		return models.Todo{}, serr.ErrInternal
	}

	return t, nil
}

// List возвращает задачи пользователя, новые первыми.
//
// Сортировка: created_at DESC, id DESC — id решает ничью, когда несколько
// задач создано в одну и ту же секунду.
func (r *TodosRepository) List(ctx context.Context, userID int64) ([]models.Todo, error) {
	rows, err := r.db.QueryContext(ctx, r.listQuery, userID)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	todos := []models.Todo{}
	for rows.Next() {
		var t models.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Completed, &t.UserID, &t.CreatedAt); err != nil {
			return nil, serr.ErrInternal
		}
		todos = append(todos, t)
	}

	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}

	return todos, nil
}

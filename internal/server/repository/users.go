package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/IvanChernomyrdin/go-todo-service/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-todo-service/internal/shared/errors"
)

type UsersRepository struct {
	db *sql.DB

	insertQuery  string
	byEmailQuery string
	byIDQuery    string
}

func NewUsersRepository(db *sql.DB, driver Driver) *UsersRepository {
	r := &UsersRepository{db: db}

	switch driver {
	case DriverPostgres:
		r.insertQuery = `INSERT INTO users (email, password_hash, created_at)
		 VALUES ($1,$2,$3)
		 RETURNING id`
		r.byEmailQuery = `SELECT id, email, password_hash, created_at FROM users WHERE email=$1`
		r.byIDQuery = `SELECT id, email, password_hash, created_at FROM users WHERE id=$1`
	default:
		r.insertQuery = `INSERT INTO users (email, password_hash, created_at)
		 VALUES (?,?,?)
		 RETURNING id`
		r.byEmailQuery = `SELECT id, email, password_hash, created_at FROM users WHERE email=?`
		r.byIDQuery = `SELECT id, email, password_hash, created_at FROM users WHERE id=?`
	}

	return r
}

// Create атомарно вставляет нового пользователя.
//
// Уникальность email обеспечивает ограничение в базе, а не предварительный
// SELECT — два одновременных signup с одним email дадут ровно один успех
// и один ErrAlreadyExists, без TOCTOU-окна.
func (r *UsersRepository) Create(ctx context.Context, email, passwordHash string) (models.User, error) {
	u := models.User{
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}

	err := r.db.QueryRowContext(ctx, r.insertQuery,
		email, passwordHash, u.CreatedAt,
	).Scan(&u.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, serr.ErrAlreadyExists
		}
		return models.User{}, serr.ErrInternal
	}

	return u, nil
}

func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User

	err := r.db.QueryRowContext(ctx, r.byEmailQuery, email).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, serr.ErrNotFound
		}
		return models.User{}, serr.ErrInternal
	}

	return u, nil
}

// GetByID нужен для выборки "текущего пользователя" по subject из токена.
func (r *UsersRepository) GetByID(ctx context.Context, id int64) (models.User, error) {
	var u models.User

	err := r.db.QueryRowContext(ctx, r.byIDQuery, id).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, serr.ErrNotFound
		}
		return models.User{}, serr.ErrInternal
	}

	return u, nil
}

package tests

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/IvanChernomyrdin/go-todo-service/internal/server/repository"
	serr "github.com/IvanChernomyrdin/go-todo-service/internal/shared/errors"
)

// newSQLiteDB поднимает sqlite в памяти со схемой из миграций.
// Одно соединение — иначе каждый коннект пула получит свою пустую базу.
func newSQLiteDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	schema := `
	CREATE TABLE users (
	    id INTEGER PRIMARY KEY AUTOINCREMENT,
	    email TEXT NOT NULL UNIQUE,
	    password_hash TEXT NOT NULL,
	    created_at TIMESTAMP NOT NULL
	);
	CREATE TABLE todos (
	    id INTEGER PRIMARY KEY AUTOINCREMENT,
	    title TEXT NOT NULL,
	    completed BOOLEAN NOT NULL DEFAULT 0,
	    user_id INTEGER NOT NULL REFERENCES users (id),
	    created_at TIMESTAMP NOT NULL
	);
	CREATE INDEX idx_todos_user_id ON todos (user_id);`

	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("create schema: %v", err)
	}

	return db
}

// Повторная регистрация того же email упирается в уникальный индекс базы,
// а не в предварительную проверку.
func TestUsersRepository_SQLite_DuplicateEmail(t *testing.T) {
	db := newSQLiteDB(t)
	repo := repository.NewUsersRepository(db, repository.DriverSQLite)

	first, err := repo.Create(context.Background(), "a@x.com", "hash1")
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	if first.ID == 0 {
		t.Fatal("expected assigned id")
	}

	_, err = repo.Create(context.Background(), "a@x.com", "hash2")
	if err != serr.ErrAlreadyExists {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	// первый пользователь остался нетронутым
	got, err := repo.GetByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if got.ID != first.ID || got.PasswordHash != "hash1" {
		t.Fatalf("unexpected user after duplicate insert: %+v", got)
	}
}

func TestTodosRepository_SQLite_ListNewestFirst(t *testing.T) {
	db := newSQLiteDB(t)

	users := repository.NewUsersRepository(db, repository.DriverSQLite)
	todos := repository.NewTodosRepository(db, repository.DriverSQLite)

	owner, err := users.Create(context.Background(), "a@x.com", "hash")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	if _, err := todos.Create(context.Background(), owner.ID, "older"); err != nil {
		t.Fatalf("create older: %v", err)
	}
	newer, err := todos.Create(context.Background(), owner.ID, "Buy milk")
	if err != nil {
		t.Fatalf("create newer: %v", err)
	}
	if newer.Completed {
		t.Fatal("expected completed=false on create")
	}

	got, err := todos.List(context.Background(), owner.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 todos, got %d", len(got))
	}
	if got[0].Title != "Buy milk" || got[1].Title != "older" {
		t.Fatalf("expected newest first, got %q then %q", got[0].Title, got[1].Title)
	}
	if got[0].Completed {
		t.Fatal("expected completed=false in list")
	}
}

// Список отдаёт только задачи владельца.
func TestTodosRepository_SQLite_ListScopedToUser(t *testing.T) {
	db := newSQLiteDB(t)

	users := repository.NewUsersRepository(db, repository.DriverSQLite)
	todos := repository.NewTodosRepository(db, repository.DriverSQLite)

	alice, err := users.Create(context.Background(), "a@x.com", "hash")
	if err != nil {
		t.Fatalf("create alice: %v", err)
	}
	bob, err := users.Create(context.Background(), "b@x.com", "hash")
	if err != nil {
		t.Fatalf("create bob: %v", err)
	}

	if _, err := todos.Create(context.Background(), alice.ID, "mine"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := todos.Create(context.Background(), bob.ID, "not mine"); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := todos.List(context.Background(), alice.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Title != "mine" {
		t.Fatalf("expected only alice's todo, got %+v", got)
	}
}

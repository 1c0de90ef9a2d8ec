// Package repository реализует доступ к хранилищу данных (SQLite или PostgreSQL).
// Слой отвечает исключительно за сохранение и извлечение данных без бизнес-логики.
//
// Репозитории работают через database/sql и поддерживают два диалекта:
// плейсхолдеры $1 для pgx и ? для sqlite. Диалект выбирается при создании
// репозитория по имени драйвера (config.GetDriverName()).
package repository

import (
	"errors"

	"github.com/jackc/pgconn"
	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Driver — имя sql-драйвера, определяет диалект запросов.
type Driver string

const (
	DriverPostgres Driver = "pgx"
	DriverSQLite   Driver = "sqlite"
)

// isUniqueViolation определяет, является ли ошибка нарушением
// уникального ограничения (у каждого бэкенда свой код).
//
// PostgreSQL: 23505 (unique_violation).
// SQLite: SQLITE_CONSTRAINT_UNIQUE / SQLITE_CONSTRAINT_PRIMARYKEY.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		}
	}

	return false
}

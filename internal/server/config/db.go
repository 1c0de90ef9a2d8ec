// Package config содержит инициализацию подключения к базе данных сервера
// и доступ к глобальному экземпляру *sql.DB.
//
// Пакет выполняет:
//   - выбор бэкенда по DSN: postgres://... → PostgreSQL (pgx),
//     всё остальное → однофайловый SQLite (modernc, без cgo);
//   - открытие соединения и проверку доступности базы (Ping);
//   - запуск миграций (golang-migrate) при старте сервера —
//     схема создаётся идемпотентно, повторный старт ничего не ломает.
//
// Примечание: пакет использует глобальную переменную DB. Инициализация должна
// выполняться один раз при запуске сервера.
package config

import (
	"database/sql"
	"strings"

	"github.com/IvanChernomyrdin/go-todo-service/internal/shared/logger"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	migratelite "github.com/golang-migrate/migrate/v4/database/sqlite"

	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v4/stdlib"
	_ "modernc.org/sqlite"
)

// DB — глобальный экземпляр подключения к базе данных.
//
// Инициализируется функцией Init и используется другими пакетами через GetDB.
var DB *sql.DB

// driverName — имя sql-драйвера, выбранное по DSN ("pgx" или "sqlite").
var driverName string

// DriverFor возвращает имя sql-драйвера для данного DSN.
//
// postgres:// и postgresql:// → "pgx", всё остальное → "sqlite".
func DriverFor(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return "pgx"
	}
	return "sqlite"
}

// Init открывает подключение к базе данных по DSN, проверяет его доступность
// и применяет миграции.
//
// Миграции запускаются из каталога file://migrations/<бэкенд>.
// Если миграции уже применены, ошибка migrate.ErrNoChange не считается ошибкой.
func Init(databaseDSN string) error {
	customLog := logger.NewHTTPLogger().Logger.Sugar()

	driverName = DriverFor(databaseDSN)

	var err error
	DB, err = sql.Open(driverName, databaseDSN)

	if err != nil {
		customLog.Errorf("error to connect db: %v", err)
		return err
	}

	if err = DB.Ping(); err != nil {
		customLog.Errorf("error check db connection: %v", err)
		return err
	}

	// SQLite: один writer, иначе ловим SQLITE_BUSY под конкурентными запросами
	if driverName == "sqlite" {
		DB.SetMaxOpenConns(1)
	}

	// Запуск миграций
	var (
		driver     database.Driver
		migrateDir string
		dbName     string
	)
	switch driverName {
	case "pgx":
		driver, err = migratepg.WithInstance(DB, &migratepg.Config{})
		migrateDir = "file://migrations/postgres"
		dbName = "postgres"
	default:
		driver, err = migratelite.WithInstance(DB, &migratelite.Config{})
		migrateDir = "file://migrations/sqlite"
		dbName = "sqlite"
	}
	if err != nil {
		customLog.Errorf("error creating migration driver: %v", err)
		return err
	}

	// создаём миграции с выбранным драйвером
	m, err := migrate.NewWithDatabaseInstance(migrateDir, dbName, driver)
	if err != nil {
		customLog.Errorf("error creating migrations: %v", err)
		return err
	}

	// запускаем создание миграций
	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		customLog.Errorf("error applying migrations: %v", err)
		return err
	}

	customLog.Info("migrations applied successfully")
	return nil
}

// GetDB возвращает текущий глобальный экземпляр *sql.DB.
//
// Возвращаемое значение может быть nil, если Init ещё не вызывался
// или завершился ошибкой.
func GetDB() *sql.DB {
	return DB
}

// GetDriverName возвращает имя драйвера, выбранное при Init.
func GetDriverName() string {
	return driverName
}

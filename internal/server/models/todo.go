// Серверная модель задачи (todo)
package models

import "time"

// Todo — запись списка дел.
//
// Поля:
//   - ID: идентификатор, назначается базой при вставке
//   - Title: текст задачи
//   - Completed: выполнена ли задача (по умолчанию false)
//   - UserID: владелец задачи (subject из access токена)
//   - CreatedAt: серверное время создания
type Todo struct {
	ID        int64
	Title     string
	Completed bool
	UserID    int64
	CreatedAt time.Time
}

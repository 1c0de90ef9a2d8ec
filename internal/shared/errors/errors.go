// Package errors содержит общие доменные ошибки приложения.
//
// Эти ошибки используются в service и repository слоях
// и маппятся на HTTP-статусы в api слое.
package errors

import "errors"

var (
	// Входные данные невалидны (пустые поля, неправильный формат и т.п.)
	ErrInvalidInput = errors.New("invalid input")
	// Неверные учётные данные (неизвестный email или неправильный пароль — специально неотличимо)
	ErrInvalidCredentials = errors.New("invalid credentials")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Неавторизован
	ErrUnauthorized = errors.New("unauthorized")
	// Ресурс уже существует (например email уже занят)
	ErrAlreadyExists = errors.New("already exists")
	// Ресурс не найден
	ErrNotFound = errors.New("not found")
	// Используется в тестах: ожидали ошибку, а её нет
	ErrExpectedError = errors.New("expected error")
)

// ошибки разбора access токена
var (
	// Срок жизни токена истёк
	ErrTokenExpired = errors.New("token expired")
	// Подпись не сошлась или токен битый/не наш
	ErrTokenInvalid = errors.New("invalid token")
)

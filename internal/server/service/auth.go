package service

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/IvanChernomyrdin/go-todo-service/internal/server/config"
	"github.com/IvanChernomyrdin/go-todo-service/internal/server/crypto"
	serr "github.com/IvanChernomyrdin/go-todo-service/internal/shared/errors"
)

// AuthService реализует бизнес-логику аутентификации.
//
// Ответственность:
//   - регистрация пользователей (signup)
//   - аутентификация (login)
//   - выпуск access токенов
//
// Сервер не хранит выданные токены — bearer токен полностью stateless,
// истекает сам по embedded exp.
type AuthService struct {
	users UsersRepo

	hasher crypto.Hasher
	jwt    crypto.JWTConfig
}

// NewAuthService создаёт AuthService с зависимостями и настройками из конфига.
func NewAuthService(users UsersRepo, cfg *config.Config) *AuthService {
	return &AuthService{
		users: users,

		hasher: crypto.Hasher{
			Scheme: cfg.Password.Hasher,
			Argon2: crypto.Argon2Params{
				Time:      cfg.Password.Argon2.Time,
				MemoryKiB: cfg.Password.Argon2.MemoryKiB,
				Threads:   cfg.Password.Argon2.Threads,
				KeyLen:    cfg.Password.Argon2.KeyLen,
				SaltLen:   cfg.Password.Argon2.SaltLen,
			},
		},
		jwt: crypto.JWTConfig{
			Issuer:     cfg.Auth.Issuer,
			Audience:   cfg.Auth.Audience,
			SigningKey: cfg.Auth.JWT.SigningKey,
			AccessTTL:  cfg.Auth.AccessTTL,
		},
	}
}

// Signup регистрирует нового пользователя и сразу выдаёт access токен.
//
// Валидация:
//   - email обязателен и должен быть валидным
//   - пароль обязателен (правил сложности нет — демо)
//
// Email хранится как передан (case-sensitive), только обрезаются пробелы.
//
// Уникальность email обеспечивается атомарной вставкой: никакого
// предварительного SELECT, дубликат ловим по ограничению базы.
//
// Возвращает:
//   - подписанный access токен с subject = id нового пользователя
//   - ErrInvalidInput при некорректных данных или ErrAlreadyExists если email уже зарегистрирован
func (s *AuthService) Signup(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)

	if email == "" || password == "" || !regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`).MatchString(email) {
		return "", serr.ErrInvalidInput
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", serr.ErrInternal
	}

	u, err := s.users.Create(ctx, email, hash)
	if err != nil {
		return "", err
	}

	token, err := crypto.NewAccessToken(strconv.FormatInt(u.ID, 10), s.jwt)
	if err != nil {
		return "", serr.ErrInternal
	}

	return token, nil
}

// Login аутентифицирует пользователя и выдаёт access токен.
//
// Поведение:
//   - не раскрывает факт существования email: "нет такого пользователя"
//     и "неверный пароль" дают одинаковый ErrInvalidCredentials
//
// Ошибки:
//   - ErrInvalidInput
//   - ErrInvalidCredentials
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return "", serr.ErrInvalidInput
	}
	// получаем юзера по email
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// не палим существование email
		if errors.Is(err, serr.ErrNotFound) {
			return "", serr.ErrInvalidCredentials
		}
		return "", err
	}
	// проверяем пароль
	ok, err := s.hasher.Verify(password, u.PasswordHash)
	if err != nil {
		return "", serr.ErrInternal
	}
	if !ok {
		return "", serr.ErrInvalidCredentials
	}
	// создаём новый access токен
	token, err := crypto.NewAccessToken(strconv.FormatInt(u.ID, 10), s.jwt)
	if err != nil {
		return "", serr.ErrInternal
	}

	return token, nil
}

// Package crypto содержит криптографические примитивы,
// используемые сервером todo-сервиса.
//
// В частности, пакет отвечает за:
//   - генерацию и подпись JWT access-токенов;
//   - разбор и проверку access-токенов (подпись, срок жизни, issuer/audience);
//   - хэширование и проверку паролей пользователей.
package crypto

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	serr "github.com/IvanChernomyrdin/go-todo-service/internal/shared/errors"
)

// JWTConfig описывает параметры генерации и проверки JWT access-токена.
//
// Конфиг передаётся явно при создании сервисов — никаких констант уровня
// модуля, чтобы в тестах можно было подставить короткий TTL.
type JWTConfig struct {
	// Issuer — значение поля iss (кто выдал токен).
	Issuer string
	// Audience — значение поля aud (для кого предназначен токен).
	Audience string
	// SigningKey — секретный ключ для подписи токена (HS256).
	// Должен быть достаточно длинным и случайным.
	SigningKey string
	// AccessTTL — срок жизни access-токена.
	AccessTTL time.Duration
}

// NewAccessToken создаёт и подписывает JWT access-токен для пользователя.
//
// Токен содержит стандартные RegisteredClaims:
//   - iss (Issuer)
//   - aud (Audience)
//   - sub (subject — id пользователя строкой)
//   - iat (IssuedAt)
//   - exp (ExpiresAt = now + AccessTTL)
//
// Используется алгоритм подписи HS256.
// В случае ошибки подписи возвращается непустая ошибка.
func NewAccessToken(subject string, cfg JWTConfig) (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Issuer:    cfg.Issuer,
		Audience:  []string{cfg.Audience},
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(cfg.AccessTTL)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(cfg.SigningKey))
}

// ParseAccessToken проверяет подпись и срок жизни токена и возвращает subject.
//
// Ошибки:
//   - ErrTokenExpired — срок жизни токена истёк;
//   - ErrTokenInvalid — подпись не сошлась, токен битый,
//     либо не совпали issuer/audience, либо пустой subject.
func ParseAccessToken(tokenStr string, cfg JWTConfig) (string, error) {
	claims := &jwt.RegisteredClaims{}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	_, err := parser.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return []byte(cfg.SigningKey), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", serr.ErrTokenExpired
		}
		return "", serr.ErrTokenInvalid
	}

	if cfg.Issuer != "" && claims.Issuer != cfg.Issuer {
		return "", serr.ErrTokenInvalid
	}

	if cfg.Audience != "" {
		ok := false
		for _, aud := range claims.Audience {
			if aud == cfg.Audience {
				ok = true
				break
			}
		}
		if !ok {
			return "", serr.ErrTokenInvalid
		}
	}

	subject := strings.TrimSpace(claims.Subject)
	if subject == "" {
		return "", serr.ErrTokenInvalid
	}

	return subject, nil
}

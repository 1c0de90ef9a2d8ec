package tests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/go-todo-service/internal/server/config"
	crypt "github.com/IvanChernomyrdin/go-todo-service/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-todo-service/internal/server/models"
	"github.com/IvanChernomyrdin/go-todo-service/internal/server/service"
	"github.com/IvanChernomyrdin/go-todo-service/internal/server/service/mocks"
	serr "github.com/IvanChernomyrdin/go-todo-service/internal/shared/errors"
)

// создаём сервис
func newAuthService(t *testing.T) (*service.AuthService, *mocks.MockUsersRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	users := mocks.NewMockUsersRepo(ctrl)

	svc := service.NewAuthService(users, testConfig())
	return svc, users
}

func testHasher() crypt.Hasher {
	return crypt.Hasher{Scheme: crypt.SchemeSHA256}
}

// Успешная регистрация: атомарная вставка, токен с subject = id
func TestAuthService_Signup_OK(t *testing.T) {
	ctx := context.Background()
	svc, users := newAuthService(t)

	users.EXPECT().
		Create(ctx, "test@mail.com", gomock.Any()).
		Return(models.User{ID: 42, Email: "test@mail.com"}, nil)

	token, err := svc.Signup(ctx, "test@mail.com", "strongpassword")

	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := crypt.ParseAccessToken(token, testJWT())
	require.NoError(t, err)
	require.Equal(t, "42", subject)
}

// Email уже занят — ошибка репозитория пробрасывается как есть
func TestAuthService_Signup_AlreadyExists(t *testing.T) {
	ctx := context.Background()
	svc, users := newAuthService(t)

	users.EXPECT().
		Create(ctx, "test@mail.com", gomock.Any()).
		Return(models.User{}, serr.ErrAlreadyExists)

	_, err := svc.Signup(ctx, "test@mail.com", "strongpassword")

	require.ErrorIs(t, err, serr.ErrAlreadyExists)
}

// Невалидный email
func TestAuthService_Signup_InvalidEmail(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	for _, email := range []string{"", "not-an-email", "a@b", "a b@mail.com"} {
		_, err := svc.Signup(ctx, email, "password")
		require.ErrorIs(t, err, serr.ErrInvalidInput, "email %q", email)
	}
}

// Пустой пароль
func TestAuthService_Signup_EmptyPassword(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	_, err := svc.Signup(ctx, "test@mail.com", "   ")
	require.ErrorIs(t, err, serr.ErrInvalidInput)
}

// Успешный логин
func TestAuthService_Login_OK(t *testing.T) {
	ctx := context.Background()
	svc, users := newAuthService(t)

	password := "strongpassword"
	hash, err := testHasher().Hash(password)
	require.NoError(t, err)

	users.EXPECT().
		GetByEmail(ctx, "test@mail.com").
		Return(models.User{ID: 7, Email: "test@mail.com", PasswordHash: hash}, nil)

	token, err := svc.Login(ctx, "test@mail.com", password)

	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := crypt.ParseAccessToken(token, testJWT())
	require.NoError(t, err)
	require.Equal(t, "7", subject)
}

// Неверный пароль
func TestAuthService_Login_InvalidPassword(t *testing.T) {
	ctx := context.Background()
	svc, users := newAuthService(t)

	// хешируем ПРАВИЛЬНЫЙ пароль
	hash, err := testHasher().Hash("correct-password")
	require.NoError(t, err)

	users.EXPECT().
		GetByEmail(ctx, "test@mail.com").
		Return(models.User{ID: 7, PasswordHash: hash}, nil)

	// пробуем войти с НЕПРАВИЛЬНЫМ паролем
	_, err = svc.Login(ctx, "test@mail.com", "wrong-password")

	require.ErrorIs(t, err, serr.ErrInvalidCredentials)
}

// Email не существует — та же ошибка, что и при неверном пароле
func TestAuthService_Login_EmailNotFound(t *testing.T) {
	ctx := context.Background()
	svc, users := newAuthService(t)

	users.EXPECT().
		GetByEmail(ctx, "test@mail.com").
		Return(models.User{}, serr.ErrNotFound)

	_, err := svc.Login(ctx, "test@mail.com", "password")

	require.ErrorIs(t, err, serr.ErrInvalidCredentials)
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			Issuer:    "test",
			Audience:  "test",
			AccessTTL: time.Minute,
			JWT: config.JWTConfig{
				SigningKey: "secret",
			},
		},
		Password: config.PasswordConfig{
			Hasher: "sha256",
		},
	}
}

func testJWT() crypt.JWTConfig {
	cfg := testConfig()
	return crypt.JWTConfig{
		Issuer:     cfg.Auth.Issuer,
		Audience:   cfg.Auth.Audience,
		SigningKey: cfg.Auth.JWT.SigningKey,
		AccessTTL:  cfg.Auth.AccessTTL,
	}
}

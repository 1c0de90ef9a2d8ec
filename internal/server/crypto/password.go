// Хэширование паролей
package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// SchemeSHA256 — детерминированный sha256 без соли.
// Одинаковые пароли дают одинаковый хэш — известная слабость демо-режима.
const SchemeSHA256 = "sha256"

// SchemeArgon2id — солёный argon2id, включается конфигом для тех,
// кому нужна настоящая стойкость.
const SchemeArgon2id = "argon2id"

type Argon2Params struct {
	Time      uint32
	MemoryKiB uint32
	Threads   uint8
	KeyLen    uint32
	SaltLen   uint32
}

// Hasher хэширует и проверяет пароли по выбранной схеме.
type Hasher struct {
	Scheme string
	Argon2 Argon2Params
}

// Hash возвращает хэш пароля.
//
// sha256: hex-строка digest'а, всегда успешно для любой строки.
// argon2id: строка формата argon2id$v=19$m=65536,t=3,p=2$<salt_b64>$<hash_b64>.
func (h Hasher) Hash(password string) (string, error) {
	if h.Scheme == SchemeArgon2id {
		return hashArgon2id(password, h.Argon2)
	}
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:]), nil
}

// Verify сравнивает пароль с сохранённым хэшем.
//
// Схема определяется по самому хэшу (префикс argon2id$),
// так что смена password.hasher в конфиге не ломает старые записи.
func (h Hasher) Verify(password, encoded string) (bool, error) {
	if strings.HasPrefix(encoded, "argon2id$") {
		return verifyArgon2id(password, encoded)
	}
	sum := sha256.Sum256([]byte(password))
	got := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(got), []byte(encoded)) == 1, nil
}

func hashArgon2id(password string, p Argon2Params) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("empty password")
	}

	salt := make([]byte, p.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("read salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, p.Time, p.MemoryKiB, p.Threads, p.KeyLen)

	b64Salt := base64.RawStdEncoding.EncodeToString(salt)
	b64Hash := base64.RawStdEncoding.EncodeToString(hash)

	encoded := fmt.Sprintf(
		"argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		p.MemoryKiB, p.Time, p.Threads,
		b64Salt, b64Hash,
	)
	return encoded, nil
}

func verifyArgon2id(password, encoded string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 5 {
		return false, errors.New("invalid hash format")
	}

	// parts[0] = argon2id
	// parts[1] = v=19
	// parts[2] = m=...,t=...,p=...
	// parts[3] = salt
	// parts[4] = hash

	var memory uint32
	var time uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[2], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return false, errors.New("invalid params format")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[3])
	if err != nil {
		return false, errors.New("invalid salt")
	}

	wantHash, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, errors.New("invalid hash")
	}

	got := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(wantHash)))
	return subtle.ConstantTimeCompare(got, wantHash) == 1, nil
}

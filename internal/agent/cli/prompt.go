package cli

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	serr "github.com/IvanChernomyrdin/go-todo-service/internal/shared/errors"
)

// readPasswordInteractive запрашивает пароль у пользователя без эха.
//
// Если stdin не является терминалом (например, запуск в pipe), возвращается ошибка:
// в таком режиме пароль должен передаваться флагом --password.
func readPasswordInteractive(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("stdin не терминал, передайте пароль флагом --password: %w", serr.ErrInvalidInput)
	}

	fmt.Fprint(os.Stderr, prompt)
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("не удалось прочитать пароль: %w", err)
	}

	pass := strings.TrimSpace(string(raw))
	if pass == "" {
		return "", fmt.Errorf("пустой пароль: %w", serr.ErrInvalidInput)
	}
	return pass, nil
}

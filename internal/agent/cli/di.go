package cli

// для тестов
var (
	ReadPassword = readPasswordInteractive
)

package storage

import "errors"

// Коллекции хранилища. Каждая коллекция это отдельная директория в DATA_DIR.
const (
	CollectionUsers  = "users"
	CollectionTokens = "tokens"
	CollectionChecks = "checks"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
	ErrInvalidKey    = errors.New("invalid collection or key")
)

// Collections возвращает все коллекции, которые нужны сервису.
func Collections() []string {
	return []string{CollectionUsers, CollectionTokens, CollectionChecks}
}

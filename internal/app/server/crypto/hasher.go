package crypto

import (
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

var (
	ErrEmptySecret = errors.New("hashing secret is empty")
	ErrEmptyValue  = errors.New("value to hash is empty")
)

// Hasher строит детерминированный односторонний хэш секрета на ключе сервера.
// Одинаковые (secret, value) всегда дают одинаковый результат, что позволяет
// сравнивать пароли простым равенством.
type Hasher struct {
	key []byte
}

// NewHasher создает хэшер. Секреты длиннее ключа BLAKE2b сворачиваются через Sum512.
func NewHasher(secret string) (*Hasher, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	key := []byte(secret)
	if len(key) > blake2b.Size {
		sum := blake2b.Sum512(key)
		key = sum[:]
	}

	return &Hasher{key: key}, nil
}

// Hash возвращает hex BLAKE2b-256 MAC от value.
func (h *Hasher) Hash(value string) (string, error) {
	if value == "" {
		return "", ErrEmptyValue
	}

	mac, err := blake2b.New256(h.key)
	if err != nil {
		return "", fmt.Errorf("init blake2b: %w", err)
	}
	mac.Write([]byte(value))

	return hex.EncodeToString(mac.Sum(nil)), nil
}

// Equal reports whether value hashes to hash.
func (h *Hasher) Equal(hash, value string) bool {
	computed, err := h.Hash(value)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1
}

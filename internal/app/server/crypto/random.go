package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

const Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var ErrInvalidLength = errors.New("random string length must be positive")

// RandomString returns n characters drawn uniformly from Alphabet.
func RandomString(n int) (string, error) {
	if n <= 0 {
		return "", ErrInvalidLength
	}

	limit := big.NewInt(int64(len(Alphabet)))
	buf := make([]byte, n)
	for i := range buf {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("read random: %w", err)
		}
		buf[i] = Alphabet[idx.Int64()]
	}

	return string(buf), nil
}

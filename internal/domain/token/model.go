package token

import "time"

// IDLength длина идентификатора токена.
const IDLength = 20

// Token bearer-токен, привязанный к телефону пользователя.
// Expires хранится в unix миллисекундах.
type Token struct {
	ID      string `json:"id"`
	Phone   string `json:"phone"`
	Expires int64  `json:"expires"`
}

func (t Token) ExpiresAt() time.Time {
	return time.UnixMilli(t.Expires)
}

// Valid reports whether now is strictly before the expiration instant.
func (t Token) Valid(now time.Time) bool {
	return now.UnixMilli() < t.Expires
}

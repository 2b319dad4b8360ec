// Package validate содержит общие проверки полей входящих запросов.
// Поле принимается только если оно присутствует, имеет нужный тип и
// (для строк) не пустое после обрезки пробелов.
package validate

import (
	"slices"
	"strings"
)

// String returns the trimmed value when p is present and non-empty.
func String(p *string) (string, bool) {
	if p == nil {
		return "", false
	}

	s := strings.TrimSpace(*p)
	if s == "" {
		return "", false
	}

	return s, true
}

// Exact returns the trimmed value when it is exactly n characters long.
func Exact(p *string, n int) (string, bool) {
	s, ok := String(p)
	if !ok || len(s) != n {
		return "", false
	}

	return s, true
}

// ExactValue is Exact for values taken from a query string.
func ExactValue(s string, n int) (string, bool) {
	return Exact(&s, n)
}

// OneOf returns the trimmed value when it is one of allowed.
func OneOf(p *string, allowed ...string) (string, bool) {
	s, ok := String(p)
	if !ok || !slices.Contains(allowed, s) {
		return "", false
	}

	return s, true
}

// True reports whether p is present and set to true.
func True(p *bool) bool {
	return p != nil && *p
}

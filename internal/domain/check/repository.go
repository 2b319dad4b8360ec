package check

import (
	"context"

	"uptime/internal/domain/user"
)

type Repository interface {
	Create(ctx context.Context, c Check) error
	Find(ctx context.Context, id string) (Check, error)
	Update(ctx context.Context, c Check) error
	Delete(ctx context.Context, id string) error
}

// UserStore читает и сохраняет владельца проверки.
type UserStore interface {
	FindByPhone(ctx context.Context, phone string) (user.User, error)
	Update(ctx context.Context, u user.User) error
}

// TokenVerifier проверяет токен из заголовка запроса.
type TokenVerifier interface {
	Verify(ctx context.Context, id, phone string) bool
	Resolve(ctx context.Context, id string) (string, error)
}

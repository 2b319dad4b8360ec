package token

import (
	"context"

	"uptime/internal/domain/user"
)

type Repository interface {
	Create(ctx context.Context, t Token) error
	Find(ctx context.Context, id string) (Token, error)
	Update(ctx context.Context, t Token) error
	Delete(ctx context.Context, id string) error
}

// UserFinder читает пользователя, которому выдается токен.
type UserFinder interface {
	FindByPhone(ctx context.Context, phone string) (user.User, error)
}

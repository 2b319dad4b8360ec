package user

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, u User) error
	FindByPhone(ctx context.Context, phone string) (User, error)
	Update(ctx context.Context, u User) error
	Delete(ctx context.Context, phone string) error
}

package file

import (
	"context"
	"errors"

	"uptime/internal/domain/user"
	"uptime/internal/infrastructure/storage"

	"golang.org/x/exp/slog"
)

type UserRepository struct {
	users *Collection[user.User]
	log   *slog.Logger
}

func NewUserRepository(store *Store, log *slog.Logger) *UserRepository {
	return &UserRepository{
		users: NewCollection[user.User](store, storage.CollectionUsers),
		log:   log,
	}
}

func (r *UserRepository) Create(ctx context.Context, u user.User) error {
	err := r.users.Create(ctx, u.Phone, u)
	switch {
	case errors.Is(err, storage.ErrAlreadyExists):
		return user.ErrAlreadyExists
	case errors.Is(err, storage.ErrInvalidKey):
		return user.ErrInvalidInput
	}
	return err
}

// FindByPhone читает пользователя. Нечитаемая запись считается отсутствующей.
func (r *UserRepository) FindByPhone(ctx context.Context, phone string) (user.User, error) {
	u, err := r.users.Read(ctx, phone)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrInvalidKey) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}

	if u.Phone == "" {
		return user.User{}, user.ErrNotFound
	}

	return u, nil
}

func (r *UserRepository) Update(ctx context.Context, u user.User) error {
	err := r.users.Update(ctx, u.Phone, u)
	if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrInvalidKey) {
		return user.ErrNotFound
	}
	return err
}

func (r *UserRepository) Delete(ctx context.Context, phone string) error {
	err := r.users.Delete(ctx, phone)
	if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrInvalidKey) {
		return user.ErrNotFound
	}
	return err
}

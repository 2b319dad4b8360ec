package file

import (
	"context"
	"errors"

	"uptime/internal/domain/token"
	"uptime/internal/infrastructure/storage"

	"golang.org/x/exp/slog"
)

type TokenRepository struct {
	tokens *Collection[token.Token]
	log    *slog.Logger
}

func NewTokenRepository(store *Store, log *slog.Logger) *TokenRepository {
	return &TokenRepository{
		tokens: NewCollection[token.Token](store, storage.CollectionTokens),
		log:    log,
	}
}

func (r *TokenRepository) Create(ctx context.Context, t token.Token) error {
	return r.tokens.Create(ctx, t.ID, t)
}

func (r *TokenRepository) Find(ctx context.Context, id string) (token.Token, error) {
	t, err := r.tokens.Read(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrInvalidKey) {
			return token.Token{}, token.ErrNotFound
		}
		return token.Token{}, err
	}

	if t.ID == "" {
		return token.Token{}, token.ErrNotFound
	}

	return t, nil
}

func (r *TokenRepository) Update(ctx context.Context, t token.Token) error {
	err := r.tokens.Update(ctx, t.ID, t)
	if errors.Is(err, storage.ErrNotFound) {
		return token.ErrNotFound
	}
	return err
}

func (r *TokenRepository) Delete(ctx context.Context, id string) error {
	err := r.tokens.Delete(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return token.ErrNotFound
	}
	return err
}

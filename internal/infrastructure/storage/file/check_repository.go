package file

import (
	"context"
	"errors"

	"uptime/internal/domain/check"
	"uptime/internal/infrastructure/storage"

	"golang.org/x/exp/slog"
)

type CheckRepository struct {
	checks *Collection[check.Check]
	log    *slog.Logger
}

func NewCheckRepository(store *Store, log *slog.Logger) *CheckRepository {
	return &CheckRepository{
		checks: NewCollection[check.Check](store, storage.CollectionChecks),
		log:    log,
	}
}

func (r *CheckRepository) Create(ctx context.Context, c check.Check) error {
	return r.checks.Create(ctx, c.ID, c)
}

func (r *CheckRepository) Find(ctx context.Context, id string) (check.Check, error) {
	c, err := r.checks.Read(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrInvalidKey) {
			return check.Check{}, check.ErrNotFound
		}
		return check.Check{}, err
	}

	if c.ID == "" {
		return check.Check{}, check.ErrNotFound
	}

	return c, nil
}

func (r *CheckRepository) Update(ctx context.Context, c check.Check) error {
	err := r.checks.Update(ctx, c.ID, c)
	if errors.Is(err, storage.ErrNotFound) {
		return check.ErrNotFound
	}
	return err
}

func (r *CheckRepository) Delete(ctx context.Context, id string) error {
	err := r.checks.Delete(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return check.ErrNotFound
	}
	return err
}

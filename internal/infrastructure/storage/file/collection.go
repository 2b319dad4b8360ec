package file

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/exp/slog"
)

// Collection типизированная обертка над одной коллекцией Store.
type Collection[T any] struct {
	store *Store
	name  string
}

func NewCollection[T any](store *Store, name string) *Collection[T] {
	return &Collection[T]{store: store, name: name}
}

func (c *Collection[T]) Create(ctx context.Context, key string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s/%s: %w", c.name, key, err)
	}

	return c.store.Create(ctx, c.name, key, data)
}

// Read decodes the record. A file that does not parse yields the zero value of T
// with a nil error, so callers see it the same way as an empty record.
func (c *Collection[T]) Read(ctx context.Context, key string) (T, error) {
	var v T

	data, err := c.store.Read(ctx, c.name, key)
	if err != nil {
		return v, err
	}

	if err := json.Unmarshal(data, &v); err != nil {
		c.store.log.Warn("malformed record",
			slog.String("collection", c.name),
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		var zero T
		return zero, nil
	}

	return v, nil
}

func (c *Collection[T]) Update(ctx context.Context, key string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s/%s: %w", c.name, key, err)
	}

	return c.store.Update(ctx, c.name, key, data)
}

func (c *Collection[T]) Delete(ctx context.Context, key string) error {
	return c.store.Delete(ctx, c.name, key)
}

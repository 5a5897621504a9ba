package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// Collection is a typed view of one screen's records. Bodies are stored as
// JSON.
type Collection[T any] struct {
	store  *Store
	screen string
	key    func(T) string
}

// NewCollection binds T to screen. key extracts the record id.
func NewCollection[T any](s *Store, screen string, key func(T) string) *Collection[T] {
	return &Collection[T]{store: s, screen: screen, key: key}
}

// Screen returns the screen id the collection is bound to.
func (c *Collection[T]) Screen() string { return c.screen }

func (c *Collection[T]) decode(r Record) (T, error) {
	var v T
	if err := json.Unmarshal(r.Body, &v); err != nil {
		return v, fmt.Errorf("decode %s/%s: %w", c.screen, r.ID, err)
	}
	return v, nil
}

// List decodes every record in insertion order.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	recs, err := c.store.List(ctx, c.screen)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(recs))
	for _, r := range recs {
		v, err := c.decode(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Get decodes one record.
func (c *Collection[T]) Get(ctx context.Context, id string) (T, error) {
	r, err := c.store.Get(ctx, c.screen, id)
	if err != nil {
		var zero T
		return zero, err
	}
	return c.decode(r)
}

// Insert stores v under its key.
func (c *Collection[T]) Insert(ctx context.Context, v T) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.screen, err)
	}
	return c.store.Insert(ctx, c.screen, c.key(v), body)
}

// Update overwrites the record stored under id.
func (c *Collection[T]) Update(ctx context.Context, id string, v T) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.screen, err)
	}
	return c.store.Update(ctx, c.screen, id, body)
}

// Delete removes the record stored under id.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	return c.store.Delete(ctx, c.screen, id)
}

// Replace swaps the whole collection for vs.
func (c *Collection[T]) Replace(ctx context.Context, vs []T) error {
	recs := make([]Record, 0, len(vs))
	for _, v := range vs {
		body, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode %s: %w", c.screen, err)
		}
		recs = append(recs, Record{ID: c.key(v), Body: body})
	}
	return c.store.ReplaceAll(ctx, c.screen, recs)
}

package store_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"erp/internal/store"
)

type unit struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func openStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(context.Background(), store.MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCollectionCRUD(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	units := store.NewCollection(s, "WMS0606", func(u unit) string { return u.Code })

	require.NoError(t, units.Replace(ctx, []unit{{"EA", "개"}, {"BOX", "박스"}}))

	got, err := units.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []unit{{"EA", "개"}, {"BOX", "박스"}}, got)

	require.NoError(t, units.Insert(ctx, unit{"CASE", "케이스"}))
	err = units.Insert(ctx, unit{"EA", "again"})
	assert.ErrorIs(t, err, store.ErrDuplicate)

	require.NoError(t, units.Update(ctx, "BOX", unit{"BOX", "상자"}))
	box, err := units.Get(ctx, "BOX")
	require.NoError(t, err)
	assert.Equal(t, "상자", box.Name)

	require.NoError(t, units.Delete(ctx, "EA"))
	_, err = units.Get(ctx, "EA")
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, units.Delete(ctx, "EA"), store.ErrNotFound)
	assert.ErrorIs(t, units.Update(ctx, "PALLET", unit{"PALLET", "팔레트"}), store.ErrNotFound)

	got, err = units.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []unit{{"BOX", "상자"}, {"CASE", "케이스"}}, got, "insertion order survives updates")
}

func TestScreensAreIsolated(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	a := store.NewCollection(s, "A", func(u unit) string { return u.Code })
	b := store.NewCollection(s, "B", func(u unit) string { return u.Code })

	require.NoError(t, a.Insert(ctx, unit{"EA", "a"}))
	require.NoError(t, b.Insert(ctx, unit{"EA", "b"}))

	n, err := s.Count(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, a.Replace(ctx, nil))
	n, _ = s.Count(ctx, "A")
	assert.Equal(t, 0, n)
	n, _ = s.Count(ctx, "B")
	assert.Equal(t, 1, n)
}

func TestReplaceRejectsDuplicateKeys(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	c := store.NewCollection(s, "A", func(u unit) string { return u.Code })
	require.NoError(t, c.Insert(ctx, unit{"KEEP", "k"}))

	err := c.Replace(ctx, []unit{{"X", "1"}, {"X", "2"}})
	assert.ErrorIs(t, err, store.ErrDuplicate)

	got, err := c.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []unit{{"KEEP", "k"}}, got, "failed replace rolls back")
}

func TestConcurrentInserts(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	c := store.NewCollection(s, "A", func(u unit) string { return u.Code })

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, c.Insert(ctx, unit{Code: string(rune('a' + i)), Name: "x"}))
		}(i)
	}
	wg.Wait()

	n, err := s.Count(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, 20, n)
}

package catalog

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/shoecard/internal/domain/models"
)

type stubSource struct {
	shoes []models.Shoe
	err   error
}

func (s *stubSource) ListShoes(context.Context) ([]models.Shoe, error) {
	return s.shoes, s.err
}

func TestServiceRefreshAndLookup(t *testing.T) {
	src := &stubSource{shoes: []models.Shoe{
		{Slug: "old", Price: 9000, ReleaseDate: now.Add(-400 * day)},
		{Slug: "new", Price: 15000, ReleaseDate: now.Add(-2 * day)},
		{Slug: "cheap", Price: 20000, SalePrice: models.Cents(5000), ReleaseDate: now.Add(-90 * day)},
		{Slug: "", Name: "missing slug"},
		{Slug: "old", Name: "duplicate"},
	}}

	svc := NewService(src, nil)
	require.NoError(t, svc.Refresh(context.Background()))

	count, loadedAt, lastErr := svc.Status()
	assert.Equal(t, 3, count)
	assert.False(t, loadedAt.IsZero())
	assert.NoError(t, lastErr)

	shoe, err := svc.Get("old")
	require.NoError(t, err)
	assert.Empty(t, shoe.Name)

	_, err = svc.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, []string{"new", "cheap", "old"}, slugs(svc.List(SortNewest)))
	assert.Equal(t, []string{"cheap", "old", "new"}, slugs(svc.List(SortPrice)))
}

func TestServiceRefreshFailureKeepsSnapshot(t *testing.T) {
	src := &stubSource{shoes: []models.Shoe{{Slug: "a"}}}
	svc := NewService(src, nil)
	require.NoError(t, svc.Refresh(context.Background()))

	src.err = errors.New("boom")
	err := svc.Refresh(context.Background())
	require.Error(t, err)

	count, _, lastErr := svc.Status()
	assert.Equal(t, 1, count)
	assert.EqualError(t, lastErr, "boom")
}

func TestParseSortOrder(t *testing.T) {
	assert.Equal(t, SortPrice, ParseSortOrder("price"))
	assert.Equal(t, SortNewest, ParseSortOrder("newest"))
	assert.Equal(t, SortNewest, ParseSortOrder("bogus"))
}

func slugs(shoes []models.Shoe) []string {
	out := make([]string, 0, len(shoes))
	for _, s := range shoes {
		out = append(out, s.Slug)
	}
	return out
}

// gatedSource blocks its first load until release is closed and returns an
// older catalog from it than from later loads.
type gatedSource struct {
	entered chan struct{}
	release chan struct{}
	calls   atomic.Int32
}

func (g *gatedSource) ListShoes(context.Context) ([]models.Shoe, error) {
	if g.calls.Add(1) == 1 {
		close(g.entered)
		<-g.release
		return []models.Shoe{{Slug: "stale"}}, nil
	}
	return []models.Shoe{{Slug: "fresh"}}, nil
}

func TestServiceRefreshesAreSerialized(t *testing.T) {
	src := &gatedSource{entered: make(chan struct{}), release: make(chan struct{})}
	svc := NewService(src, nil)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		assert.NoError(t, svc.Refresh(context.Background()))
	}()
	<-src.entered

	go func() {
		defer wg.Done()
		assert.NoError(t, svc.Refresh(context.Background()))
	}()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), src.calls.Load(), "second refresh must wait for the first")

	close(src.release)
	wg.Wait()

	_, err := svc.Get("fresh")
	assert.NoError(t, err)
	_, err = svc.Get("stale")
	assert.ErrorIs(t, err, ErrNotFound)
}

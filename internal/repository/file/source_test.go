package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/shoecard/internal/domain/models"
)

const sample = `
shoes:
  - slug: tempo-next
    name: Tempo Next
    imageSrc: /assets/tempo.jpg
    price: 9000
    salePrice: 5999
    releaseDate: 2024-03-01
    numOfColors: 3
  - slug: free-sale
    name: Free
    price: 4000
    salePrice: 0
    releaseDate: "1709251200000"
    numOfColors: 1
  - slug: mystery
    name: Mystery
    price: 12000
    releaseDate: sometime soon
    numOfColors: -2
`

func TestParse(t *testing.T) {
	shoes, err := Parse([]byte(sample), nil)
	require.NoError(t, err)
	require.Len(t, shoes, 3)

	tempo := shoes[0]
	assert.Equal(t, "tempo-next", tempo.Slug)
	assert.Equal(t, models.Money(9000), tempo.Price)
	require.NotNil(t, tempo.SalePrice)
	assert.Equal(t, models.Money(5999), *tempo.SalePrice)
	assert.Equal(t, 2024, tempo.ReleaseDate.Year())

	free := shoes[1]
	require.NotNil(t, free.SalePrice, "zero sale price must stay present")
	assert.Equal(t, models.Money(0), *free.SalePrice)
	assert.True(t, free.ReleaseDate.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))

	mystery := shoes[2]
	assert.Nil(t, mystery.SalePrice)
	assert.True(t, mystery.ReleaseDate.IsZero())
	assert.Equal(t, 0, mystery.NumOfColors)
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("shoes: [unterminated"), nil)
	assert.Error(t, err)
}

func TestSourceListShoes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shoes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	shoes, err := NewSource(path, nil).ListShoes(context.Background())
	require.NoError(t, err)
	assert.Len(t, shoes, 3)

	_, err = NewSource(filepath.Join(t.TempDir(), "missing.yaml"), nil).ListShoes(context.Background())
	assert.Error(t, err)
}

func TestSourceWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shoes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() {
		done <- NewSource(path, nil).Watch(ctx, 20*time.Millisecond, func() {
			select {
			case changed <- struct{}{}:
			default:
			}
		})
	}()

	// give the watcher time to register
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(sample+"\n"), 0o600))

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("expected change notification")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

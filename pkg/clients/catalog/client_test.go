package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/shoecard/internal/config"
	"github.com/mamadbah2/shoecard/internal/domain/models"
)

func TestListShoes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/shoes", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"shoes":[
			{"slug":"tempo","name":"Tempo","imageSrc":"/img/t.jpg","price":9000,"salePrice":5999,"releaseDate":"2024-03-01","numOfColors":3},
			{"slug":"fly","name":"Fly","price":12000,"salePrice":null,"releaseDate":1709251200000,"numOfColors":1}
		]}`))
	}))
	defer srv.Close()

	client := NewClient(config.RemoteConfig{BaseURL: srv.URL + "/", Token: "secret"})
	shoes, err := client.ListShoes(context.Background())
	require.NoError(t, err)
	require.Len(t, shoes, 2)

	require.NotNil(t, shoes[0].SalePrice)
	assert.Equal(t, models.Money(5999), *shoes[0].SalePrice)
	assert.Equal(t, 2024, shoes[0].ReleaseDate.Year())

	assert.Nil(t, shoes[1].SalePrice)
	assert.Equal(t, 2024, shoes[1].ReleaseDate.Year())
}

func TestListShoesError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"bad token"}`))
	}))
	defer srv.Close()

	_, err := NewClient(config.RemoteConfig{BaseURL: srv.URL}).ListShoes(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad token")
	assert.Contains(t, err.Error(), "403")
}

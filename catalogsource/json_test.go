package catalogsource

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shopJSON = `[
	{"id": 1, "name": "A", "description": "first", "category": "x", "price": 10},
	{"id": 2, "name": "B", "description": "second", "category": "y", "price": 5, "image": "b.png"}
]`

func TestFromJSON(t *testing.T) {
	t.Run("decodes products", func(t *testing.T) {
		products, err := FromJSON(strings.NewReader(shopJSON))
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "A", products[0].Name)
		assert.Equal(t, "b.png", products[1].Image)
	})

	t.Run("parse failure wraps ErrLoadFailed", func(t *testing.T) {
		_, err := FromJSON(strings.NewReader("{not an array"))
		assert.ErrorIs(t, err, ErrLoadFailed)
	})
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shop.json")
	require.NoError(t, os.WriteFile(path, []byte(shopJSON), 0o644))

	products, err := FromFile(path)
	require.NoError(t, err)
	assert.Len(t, products, 2)

	_, err = FromFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, ErrLoadFailed)
}

func TestFetch(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(shopJSON))
		}))
		defer srv.Close()

		products, err := Fetch(context.Background(), srv.URL+"/shop.json")
		require.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("non-2xx status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := Fetch(context.Background(), srv.URL+"/shop.json")
		assert.ErrorIs(t, err, ErrLoadFailed)
	})

	t.Run("transport failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		_, err := Fetch(context.Background(), srv.URL+"/shop.json")
		assert.ErrorIs(t, err, ErrLoadFailed)
	})
}

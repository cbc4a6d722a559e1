package metadata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupPrefersISBN13AndRewritesCover(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.RawQuery, "intitle")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"items": [{
				"volumeInfo": {
					"industryIdentifiers": [
						{"type": "ISBN_10", "identifier": "0743273565"},
						{"type": "ISBN_13", "identifier": "9780743273565"}
					],
					"imageLinks": {"thumbnail": "http://books.example/cover.jpg"}
				}
			}]
		}`))
	}))
	defer srv.Close()

	c := NewClient()
	c.BaseURL = srv.URL
	res, err := c.Lookup(context.Background(), "The Great Gatsby", "Fitzgerald")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "9780743273565", res.ISBN)
	assert.Equal(t, "https://books.example/cover.jpg", res.CoverURL)
}

func TestLookupNoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient()
	c.BaseURL = srv.URL
	res, err := c.Lookup(context.Background(), "nope", "nobody")
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestLookupUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient()
	c.BaseURL = srv.URL
	_, err := c.Lookup(context.Background(), "anything", "anyone")
	assert.Error(t, err)
}

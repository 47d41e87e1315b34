package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-item-service/internal/config"
	"github.com/MKhiriev/go-item-service/internal/logger"
	"github.com/MKhiriev/go-item-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, baseURL string) ServerAdapter {
	t.Helper()

	serverAdapter, err := NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    baseURL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return serverAdapter
}

// ─────────────────────────────────────────────
// NewHTTPServerAdapter / normalizeBaseURL
// ─────────────────────────────────────────────

func TestNewHTTPServerAdapter_EmptyAddressFails(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())

	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "bare host:port", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "full url", raw: "http://localhost:8080", want: "http://localhost:8080"},
		{name: "trailing slash trimmed", raw: "http://localhost:8080/", want: "http://localhost:8080"},
		{name: "https kept", raw: "https://example.com", want: "https://example.com"},
		{name: "empty", raw: "", wantErr: true},
		{name: "blank", raw: "   ", wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tc.raw)

			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// ─────────────────────────────────────────────
// Greet
// ─────────────────────────────────────────────

func TestGreet_DecodesGreeting(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.Greeting{Message: "Welcome to the item service!"})
	}))
	defer srv.Close()

	greeting, err := newTestAdapter(t, srv.URL).Greet(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Welcome to the item service!", greeting.Message)
}

func TestGreet_ServerErrorIsReported(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Greet(context.Background())

	assert.Error(t, err)
}

// ─────────────────────────────────────────────
// CreateItem
// ─────────────────────────────────────────────

func TestCreateItem_PostsItemAndDecodesResponse(t *testing.T) {
	name := "Teapot"
	price := 9.99

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/items/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var item models.Item
		require.NoError(t, json.NewDecoder(r.Body).Decode(&item))
		require.NotNil(t, item.Name)
		assert.Equal(t, "Teapot", *item.Name)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.CreateItemResponse{
			Message: "Item Teapot created successfully!",
			Item:    item,
		})
	}))
	defer srv.Close()

	resp, err := newTestAdapter(t, srv.URL).CreateItem(context.Background(), models.Item{Name: &name, Price: &price})

	require.NoError(t, err)
	assert.Equal(t, "Item Teapot created successfully!", resp.Message)
	require.NotNil(t, resp.Item.Price)
	assert.Equal(t, price, *resp.Item.Price)
}

func TestCreateItem_BadRequestMapsToErrInvalidItem(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid data provided: price: required", http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).CreateItem(context.Background(), models.Item{})

	assert.ErrorIs(t, err, ErrInvalidItem)
}

// ─────────────────────────────────────────────
// GetItemByID
// ─────────────────────────────────────────────

func TestGetItemByID_BuildsPathAndDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/items/4", r.URL.Path)
		assert.Equal(t, "", r.URL.Query().Get("q"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.ItemDetails{ItemID: 4, Square: 16})
	}))
	defer srv.Close()

	details, err := newTestAdapter(t, srv.URL).GetItemByID(context.Background(), 4, "")

	require.NoError(t, err)
	assert.Equal(t, int64(4), details.ItemID)
	assert.Equal(t, int64(16), details.Square)
}

func TestGetItemByID_AttachesQueryParam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "hello", r.URL.Query().Get("q"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.ItemDetails{ItemID: 2, Square: 4})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetItemByID(context.Background(), 2, "hello")

	assert.NoError(t, err)
}

func TestGetItemByID_BadRequestMapsToErrInvalidItem(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "item id must be an integer", http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetItemByID(context.Background(), 1, "")

	assert.ErrorIs(t, err, ErrInvalidItem)
}

func TestGetItemByID_TransportFailureIsReported(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // closed before use: connection refused

	_, err := newTestAdapter(t, srv.URL).GetItemByID(context.Background(), 1, "")

	assert.Error(t, err)
}

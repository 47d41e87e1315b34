package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-item-service/internal/config"
	"github.com/MKhiriev/go-item-service/internal/logger"
	"github.com/MKhiriev/go-item-service/internal/utils"
	"github.com/MKhiriev/go-item-service/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with
// the resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be
// parsed as a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Greet implements [ServerAdapter]. It GETs the root route and decodes
// the fixed greeting payload.
func (h *httpServerAdapter) Greet(ctx context.Context) (models.Greeting, error) {
	var greeting models.Greeting

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&greeting).
		Get("/")
	if err != nil {
		return models.Greeting{}, fmt.Errorf("greet request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Greeting{}, err
	}

	return greeting, nil
}

// CreateItem implements [ServerAdapter]. It POSTs the item payload to
// POST /items/ and decodes the confirmation response. Returns
// [ErrInvalidItem] (wrapped) on HTTP 400.
func (h *httpServerAdapter) CreateItem(ctx context.Context, item models.Item) (models.CreateItemResponse, error) {
	var created models.CreateItemResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(item).
		SetResult(&created).
		Post("/items/")
	if err != nil {
		return models.CreateItemResponse{}, fmt.Errorf("create item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CreateItemResponse{}, err
	}

	return created, nil
}

// GetItemByID implements [ServerAdapter]. It GETs /items/{itemID},
// attaching q as a query parameter when non-empty, and decodes the
// id/square payload. Returns [ErrInvalidItem] (wrapped) on HTTP 400.
func (h *httpServerAdapter) GetItemByID(ctx context.Context, itemID int64, q string) (models.ItemDetails, error) {
	var details models.ItemDetails

	req := h.client.R().
		SetContext(ctx).
		SetResult(&details)
	if q != "" {
		req.SetQueryParam("q", q)
	}

	resp, err := req.Get("/items/" + strconv.FormatInt(itemID, 10))
	if err != nil {
		return models.ItemDetails{}, fmt.Errorf("get item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ItemDetails{}, err
	}

	return details, nil
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	if resp.StatusCode() == http.StatusBadRequest {
		return fmt.Errorf("%w: %s", ErrInvalidItem, body)
	}

	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}

// Package api is the client for the remote catalog-and-order service. It
// owns the wire types, JSON transport, and failure normalization; the state
// layer above it only sees typed results and *Error values.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const defaultTimeout = 30 * time.Second

// maxBodySize caps response bodies so a misbehaving server cannot make the
// client buffer unbounded data.
const maxBodySize = 8 << 20

// Client talks to the remote order service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// Config holds client configuration.
type Config struct {
	// BaseURL is the service root including any path prefix,
	// e.g. "http://localhost:8000/api". Required.
	BaseURL string
	// HTTPClient overrides the default client (30s timeout) when set.
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

// New creates a new order service client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("BaseURL is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: httpClient,
		log:        cfg.Logger,
	}, nil
}

// BaseURL returns the configured service root.
func (c *Client) BaseURL() string { return c.baseURL }

// ListOrders fetches all orders.
func (c *Client) ListOrders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &orders, "failed to fetch orders"); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder fetches a single order by id.
func (c *Client) GetOrder(ctx context.Context, id int64) (*Order, error) {
	var order Order
	path := fmt.Sprintf("/orders/%d", id)
	if err := c.do(ctx, http.MethodGet, path, nil, &order, "failed to fetch order"); err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateOrder creates a new order and returns the created record.
func (c *Client) CreateOrder(ctx context.Context, payload OrderPayload) (*Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodPost, "/orders", payload, &order, "failed to create order"); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrder replaces the order with the given id and returns the updated record.
func (c *Client) UpdateOrder(ctx context.Context, id int64, payload OrderPayload) (*Order, error) {
	var order Order
	path := fmt.Sprintf("/orders/%d", id)
	if err := c.do(ctx, http.MethodPut, path, payload, &order, "failed to update order"); err != nil {
		return nil, err
	}
	return &order, nil
}

// DeleteOrder deletes the order with the given id.
func (c *Client) DeleteOrder(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/orders/%d", id)
	return c.do(ctx, http.MethodDelete, path, nil, nil, "failed to delete order")
}

// ListProducts fetches the full catalog.
func (c *Client) ListProducts(ctx context.Context) ([]CatalogItem, error) {
	var items []CatalogItem
	if err := c.do(ctx, http.MethodGet, "/products", nil, &items, "failed to fetch products"); err != nil {
		return nil, err
	}
	return items, nil
}

// errorBody is the failure shape the service returns.
type errorBody struct {
	Detail string `json:"detail"`
}

// do executes one JSON exchange. Any failure comes back as *Error carrying
// the operation's fallback message and, for HTTP-level failures, whatever
// detail the service put in the body.
func (c *Client) do(ctx context.Context, method, path string, body, target interface{}, fallback string) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return &Error{Message: fallback, cause: err}
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return &Error{Message: fallback, cause: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("method", method).Str("url", url).Msg("transport failure")
		return &Error{Message: fallback, cause: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return &Error{Status: resp.StatusCode, Message: fallback, cause: err}
	}

	if resp.StatusCode >= 400 {
		var eb errorBody
		// A non-JSON error body is fine; the fallback message covers it.
		_ = json.Unmarshal(respBody, &eb)
		c.log.Debug().Int("status", resp.StatusCode).Str("method", method).
			Str("url", url).Str("detail", eb.Detail).Msg("request failed")
		return &Error{Status: resp.StatusCode, Message: fallback, Detail: eb.Detail}
	}

	if target == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, target); err != nil {
		return &Error{Status: resp.StatusCode, Message: fallback, cause: err}
	}
	return nil
}

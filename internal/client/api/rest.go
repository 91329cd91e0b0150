package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/lyade28/shopsync/internal/common"
	"github.com/lyade28/shopsync/internal/client/models"
)

const defaultRequestTimeout = 15 * time.Second

// RESTClient implements Client over the backend's JSON REST API.
type RESTClient struct {
	baseURL string
	http    *http.Client
}

// NewRESTClient returns a client rooted at baseURL (e.g.
// "http://localhost:8000/api"). Per-request timeouts are owned by the
// underlying transport; callers pass contexts for cancellation.
func NewRESTClient(baseURL string) *RESTClient {
	return &RESTClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultRequestTimeout},
	}
}

func (c *RESTClient) endpoint(path string, params map[string]string) string {
	u := c.baseURL + "/" + path
	if len(params) == 0 {
		return u
	}
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	return u + "?" + q.Encode()
}

// mapStatus converts a non-2xx response into a sentinel-wrapped error so
// callers can match with errors.Is.
func mapStatus(status int) error {
	switch {
	case status >= 500:
		return fmt.Errorf("%w: status %d", common.ErrServerError, status)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: status %d", common.ErrNotFound, status)
	case status >= 400:
		return fmt.Errorf("%w: status %d", common.ErrBadRequest, status)
	default:
		return nil
	}
}

func (c *RESTClient) getRaw(ctx context.Context, path string, params map[string]string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path, params), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := mapStatus(resp.StatusCode); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	return body, nil
}

func (c *RESTClient) postJSON(ctx context.Context, path string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path, nil), bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	return mapStatus(resp.StatusCode)
}

func (c *RESTClient) Ping(ctx context.Context) error {
	_, err := c.getRaw(ctx, "health/", nil)
	return err
}

func (c *RESTClient) CreateSale(ctx context.Context, sale models.SaleCreate) error {
	return c.postJSON(ctx, "sales/sales/", sale)
}

func (c *RESTClient) ListProducts(ctx context.Context, params map[string]string) (json.RawMessage, error) {
	return c.getRaw(ctx, "products/", params)
}

func (c *RESTClient) ListInventory(ctx context.Context, params map[string]string) (json.RawMessage, error) {
	return c.getRaw(ctx, "inventory/", params)
}

func (c *RESTClient) ListSessions(ctx context.Context, params map[string]string) (json.RawMessage, error) {
	return c.getRaw(ctx, "sales/sessions/", params)
}

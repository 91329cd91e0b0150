// Package api talks to the shop backend's REST API. The transport returns
// raw JSON for list endpoints because their shape varies by endpoint and by
// whether filters are applied; callers normalize through the pagination
// package.
package api

import (
	"context"
	"encoding/json"

	"github.com/lyade28/shopsync/internal/client/models"
)

// Client is the backend surface used by the client services.
type Client interface {
	// Ping probes backend reachability. Used by the connectivity watcher.
	Ping(ctx context.Context) error

	// CreateSale submits a sale in the backend's write schema.
	CreateSale(ctx context.Context, sale models.SaleCreate) error

	// List endpoints hand back the raw response body.
	ListProducts(ctx context.Context, params map[string]string) (json.RawMessage, error)
	ListInventory(ctx context.Context, params map[string]string) (json.RawMessage, error)
	ListSessions(ctx context.Context, params map[string]string) (json.RawMessage, error)
}

package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/lyade28/shopsync/internal/client/api"
	"github.com/lyade28/shopsync/internal/client/cache"
	"github.com/lyade28/shopsync/internal/client/models"
	"github.com/lyade28/shopsync/internal/client/pagination"
	"github.com/lyade28/shopsync/internal/client/repositories/snapshots"
	"github.com/lyade28/shopsync/internal/logging"
)

// Snapshot keys in the local store.
const (
	snapshotProductsKey  = "offline_products"
	snapshotInventoryKey = "offline_inventory"
)

// SessionCacheTTL is shorter than the list TTL because session data changes
// while a shop is open.
const SessionCacheTTL = 2 * time.Minute

// CatalogService serves the reference data the point-of-sale flow needs:
// products, inventory and sale sessions. Every list fetch goes through the
// TTL cache and the pagination normalizer, so cached values always have the
// envelope shape. Product and inventory reads fall back to the local
// snapshot when the backend cannot be reached.
type CatalogService struct {
	api        api.Client
	cache      *cache.Store
	snapshots  snapshots.Repository
	log        logging.Logger
	listTTL    time.Duration
	sessionTTL time.Duration
}

// NewCatalogService builds a catalog service. Non-positive TTLs fall back to
// the cache default (lists) and SessionCacheTTL (sessions).
func NewCatalogService(apiClient api.Client, store *cache.Store, snaps snapshots.Repository, log logging.Logger, listTTL, sessionTTL time.Duration) *CatalogService {
	if sessionTTL <= 0 {
		sessionTTL = SessionCacheTTL
	}
	return &CatalogService{
		api:        apiClient,
		cache:      store,
		snapshots:  snaps,
		log:        log.With("component", "catalog"),
		listTTL:    listTTL,
		sessionTTL: sessionTTL,
	}
}

// ListProducts returns one normalized page of products. On a cache miss the
// backend is fetched and the normalized envelope cached; if the fetch fails,
// the local snapshot is served as a single page instead.
func (c *CatalogService) ListProducts(ctx context.Context, page, pageSize int) (pagination.Page[models.Product], error) {
	params := pagination.BuildParams(page, pageSize)
	key := cache.Key("products", params)

	result, err := cache.WrapFetch(ctx, c.cache, key, func(ctx context.Context) (pagination.Page[models.Product], error) {
		raw, err := c.api.ListProducts(ctx, params)
		if err != nil {
			return pagination.Page[models.Product]{}, err
		}
		return pagination.Normalize[models.Product](raw), nil
	}, c.listTTL)

	if err != nil {
		if cached := c.CachedProducts(ctx); len(cached) > 0 {
			c.log.Warn(ctx, "serving products from snapshot", "error", err)
			return pagination.Page[models.Product]{Count: len(cached), Results: cached}, nil
		}
		return pagination.Page[models.Product]{Results: []models.Product{}}, err
	}
	return result, nil
}

// ListInventory mirrors ListProducts for per-shop stock levels.
func (c *CatalogService) ListInventory(ctx context.Context, page, pageSize int) (pagination.Page[models.InventoryItem], error) {
	params := pagination.BuildParams(page, pageSize)
	key := cache.Key("inventory", params)

	result, err := cache.WrapFetch(ctx, c.cache, key, func(ctx context.Context) (pagination.Page[models.InventoryItem], error) {
		raw, err := c.api.ListInventory(ctx, params)
		if err != nil {
			return pagination.Page[models.InventoryItem]{}, err
		}
		return pagination.Normalize[models.InventoryItem](raw), nil
	}, c.listTTL)

	if err != nil {
		if cached := c.CachedInventory(ctx); len(cached) > 0 {
			c.log.Warn(ctx, "serving inventory from snapshot", "error", err)
			return pagination.Page[models.InventoryItem]{Count: len(cached), Results: cached}, nil
		}
		return pagination.Page[models.InventoryItem]{Results: []models.InventoryItem{}}, err
	}
	return result, nil
}

// ListSessions returns one page of sale sessions, cached briefly. There is no
// snapshot fallback; stale session data is worse than none.
func (c *CatalogService) ListSessions(ctx context.Context, page, pageSize int) (pagination.Page[models.SaleSession], error) {
	params := pagination.BuildParams(page, pageSize)
	key := cache.Key("sessions", params)

	return cache.WrapFetch(ctx, c.cache, key, func(ctx context.Context) (pagination.Page[models.SaleSession], error) {
		raw, err := c.api.ListSessions(ctx, params)
		if err != nil {
			return pagination.Page[models.SaleSession]{}, err
		}
		return pagination.Normalize[models.SaleSession](raw), nil
	}, c.sessionTTL)
}

// SnapshotProducts overwrites the local product snapshot wholesale.
func (c *CatalogService) SnapshotProducts(ctx context.Context, products []models.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return c.snapshots.Set(ctx, snapshotProductsKey, data)
}

// CachedProducts returns the snapshot, or an empty slice when it is absent or
// unreadable. Storage problems degrade to "no data", never an error.
func (c *CatalogService) CachedProducts(ctx context.Context) []models.Product {
	data, err := c.snapshots.Get(ctx, snapshotProductsKey)
	if err != nil || len(data) == 0 {
		return []models.Product{}
	}
	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		c.log.Warn(ctx, "product snapshot unreadable, ignoring", "error", err)
		return []models.Product{}
	}
	return products
}

// SnapshotInventory overwrites the local inventory snapshot wholesale.
func (c *CatalogService) SnapshotInventory(ctx context.Context, items []models.InventoryItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.snapshots.Set(ctx, snapshotInventoryKey, data)
}

// CachedInventory mirrors CachedProducts for inventory.
func (c *CatalogService) CachedInventory(ctx context.Context) []models.InventoryItem {
	data, err := c.snapshots.Get(ctx, snapshotInventoryKey)
	if err != nil || len(data) == 0 {
		return []models.InventoryItem{}
	}
	var items []models.InventoryItem
	if err := json.Unmarshal(data, &items); err != nil {
		c.log.Warn(ctx, "inventory snapshot unreadable, ignoring", "error", err)
		return []models.InventoryItem{}
	}
	return items
}

// HasSnapshot reports whether any reference data is available for offline use.
func (c *CatalogService) HasSnapshot(ctx context.Context) bool {
	return len(c.CachedProducts(ctx)) > 0 || len(c.CachedInventory(ctx)) > 0
}

// ClearSnapshots removes all locally stored reference data.
func (c *CatalogService) ClearSnapshots(ctx context.Context) error {
	return c.snapshots.Clear(ctx)
}

// InvalidateLists empties the list cache, e.g. on logout or after a write
// that changes catalog data.
func (c *CatalogService) InvalidateLists() {
	c.cache.Clear()
}

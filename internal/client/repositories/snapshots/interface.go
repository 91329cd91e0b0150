// Package snapshots stores catalog reference data (products, inventory) as
// whole JSON blobs so the point-of-sale flow can keep working offline. Each
// write overwrites the previous blob for its key; there are no partial
// updates.
package snapshots

import "context"

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

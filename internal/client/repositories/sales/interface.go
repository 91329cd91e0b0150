// Package sales persists the offline-sale collection in the local database.
// The repository is the sole writer of that collection.
package sales

import (
	"context"
	"time"

	"github.com/lyade28/shopsync/internal/client/models"
)

// Repository describes the persisted offline-sale queue.
//
// Records come back in insertion order so replay preserves the causal order
// of sales within a session.
type Repository interface {
	// Append adds a new sale to the end of the queue.
	Append(ctx context.Context, sale *models.OfflineSale) error

	// GetAll returns every persisted sale, synced or not.
	GetAll(ctx context.Context) ([]models.OfflineSale, error)

	// GetUnsynced returns the sales still awaiting replay.
	GetUnsynced(ctx context.Context) ([]models.OfflineSale, error)

	// MarkSynced flags a sale as confirmed by the backend. No-op for an
	// unknown id.
	MarkSynced(ctx context.Context, id string) error

	// RemoveSynced deletes a sale only if it has been synced; a pending
	// record is left untouched.
	RemoveSynced(ctx context.Context, id string) error

	// SweepSynced deletes synced sales created before the cutoff. Unsynced
	// sales are never swept regardless of age.
	SweepSynced(ctx context.Context, olderThan time.Time) error
}

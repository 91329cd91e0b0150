package sales

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lyade28/shopsync/internal/client/models"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE offline_sales (
  id         TEXT PRIMARY KEY,
  payload    BLOB NOT NULL,
  created_at TIMESTAMP NOT NULL,
  synced     INTEGER NOT NULL DEFAULT 0
);
`)
	require.NoError(t, err)

	return db
}

func sampleSale(id string, createdAt time.Time) *models.OfflineSale {
	return &models.OfflineSale{
		ID:           id,
		SessionID:    1,
		CustomerName: "Awa",
		Items: []models.SaleItem{
			{ProductID: 3, ProductName: "Soap", Quantity: 2, UnitPrice: 500, LineTotal: 1000},
		},
		Subtotal:      1000,
		Total:         1000,
		PaymentMethod: "cash",
		PaymentStatus: "paid",
		Status:        "completed",
		CreatedAt:     createdAt,
	}
}

func TestAppendAndGetAll_InsertionOrder(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, r.Append(ctx, sampleSale("offline_a", now)))
	require.NoError(t, r.Append(ctx, sampleSale("offline_b", now)))
	require.NoError(t, r.Append(ctx, sampleSale("offline_c", now)))

	got, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "offline_a", got[0].ID)
	assert.Equal(t, "offline_b", got[1].ID)
	assert.Equal(t, "offline_c", got[2].ID)
	assert.False(t, got[0].Synced)
	assert.Equal(t, "Awa", got[0].CustomerName)
	require.Len(t, got[0].Items, 1)
	assert.Equal(t, float64(1000), got[0].Items[0].LineTotal)
}

func TestMarkSynced_AndGetUnsynced(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, r.Append(ctx, sampleSale("offline_a", now)))
	require.NoError(t, r.Append(ctx, sampleSale("offline_b", now)))

	require.NoError(t, r.MarkSynced(ctx, "offline_a"))
	require.NoError(t, r.MarkSynced(ctx, "offline_a")) // idempotent
	require.NoError(t, r.MarkSynced(ctx, "unknown"))   // no-op

	unsynced, err := r.GetUnsynced(ctx)
	require.NoError(t, err)
	require.Len(t, unsynced, 1)
	assert.Equal(t, "offline_b", unsynced[0].ID)

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	assert.True(t, all[0].Synced)
	assert.False(t, all[1].Synced)
}

func TestRemoveSynced_LeavesPendingRecords(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, r.Append(ctx, sampleSale("offline_a", now)))

	// pending: guarded against deletion
	require.NoError(t, r.RemoveSynced(ctx, "offline_a"))
	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	require.NoError(t, r.MarkSynced(ctx, "offline_a"))
	require.NoError(t, r.RemoveSynced(ctx, "offline_a"))
	all, err = r.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSweepSynced_OnlyOldSyncedRecords(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	eightDaysAgo := now.Add(-8 * 24 * time.Hour)

	require.NoError(t, r.Append(ctx, sampleSale("offline_old_synced", eightDaysAgo)))
	require.NoError(t, r.Append(ctx, sampleSale("offline_old_pending", eightDaysAgo)))
	require.NoError(t, r.Append(ctx, sampleSale("offline_new_synced", now)))
	require.NoError(t, r.MarkSynced(ctx, "offline_old_synced"))
	require.NoError(t, r.MarkSynced(ctx, "offline_new_synced"))

	cutoff := now.Add(-7 * 24 * time.Hour)
	require.NoError(t, r.SweepSynced(ctx, cutoff))

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	ids := []string{all[0].ID, all[1].ID}
	assert.Contains(t, ids, "offline_old_pending", "unsynced records are never swept")
	assert.Contains(t, ids, "offline_new_synced")
}

func TestSelectSales_SkipsCorruptedPayload(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, r.Append(ctx, sampleSale("offline_ok", now)))
	_, err := db.Exec(`INSERT INTO offline_sales (id, payload, created_at, synced) VALUES ('broken', x'DEADBEEF', ?, 0)`, now)
	require.NoError(t, err)

	got, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "offline_ok", got[0].ID)
}

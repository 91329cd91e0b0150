package sales

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lyade28/shopsync/internal/client/models"
	"github.com/lyade28/shopsync/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or
// *sql.Tx). Each sale is stored as a JSON payload; created_at and synced are
// mirrored into columns for filtering and the retention sweep.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Append(ctx context.Context, sale *models.OfflineSale) error {
	payload, err := json.Marshal(sale)
	if err != nil {
		return fmt.Errorf("failed to encode sale: %w", err)
	}

	query := `INSERT INTO offline_sales (id, payload, created_at, synced) VALUES (?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query, sale.ID, payload, sale.CreatedAt.UTC(), boolToInt(sale.Synced))
	if err != nil {
		return fmt.Errorf("failed to insert sale: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.OfflineSale, error) {
	return r.selectSales(ctx, `SELECT payload, created_at, synced FROM offline_sales ORDER BY rowid`)
}

func (r *SQLiteRepository) GetUnsynced(ctx context.Context) ([]models.OfflineSale, error) {
	return r.selectSales(ctx, `SELECT payload, created_at, synced FROM offline_sales WHERE synced=0 ORDER BY rowid`)
}

func (r *SQLiteRepository) selectSales(ctx context.Context, query string, args ...any) ([]models.OfflineSale, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select sales: %w", err)
	}
	defer rows.Close()

	var result []models.OfflineSale
	for rows.Next() {
		var payload []byte
		var createdAt time.Time
		var synced int
		if err := rows.Scan(&payload, &createdAt, &synced); err != nil {
			return nil, err
		}

		var sale models.OfflineSale
		if err := json.Unmarshal(payload, &sale); err != nil {
			// corrupted payload reads as "no data" for this record
			continue
		}
		// the columns are authoritative for sync state and age
		sale.CreatedAt = createdAt
		sale.Synced = synced != 0
		result = append(result, sale)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) MarkSynced(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE offline_sales SET synced=1 WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("failed to mark sale synced: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) RemoveSynced(ctx context.Context, id string) error {
	// the synced guard protects unflushed data from deletion
	_, err := r.db.ExecContext(ctx, `DELETE FROM offline_sales WHERE id=? AND synced=1`, id)
	if err != nil {
		return fmt.Errorf("failed to remove sale: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) SweepSynced(ctx context.Context, olderThan time.Time) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM offline_sales WHERE synced=1 AND created_at < ?`, olderThan.UTC())
	if err != nil {
		return fmt.Errorf("failed to sweep synced sales: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

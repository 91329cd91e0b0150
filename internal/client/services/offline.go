// Package services implements the client-side use cases: the offline sale
// queue and the cached catalog reads.
package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lyade28/shopsync/internal/client/api"
	"github.com/lyade28/shopsync/internal/client/models"
	"github.com/lyade28/shopsync/internal/client/repositories/sales"
	"github.com/lyade28/shopsync/internal/logging"
)

// DefaultRetention is how long synced sales are kept before the retention
// sweep removes them. Unsynced sales are never swept.
const DefaultRetention = 7 * 24 * time.Hour

// probeTimeout bounds a single connectivity probe.
const probeTimeout = 3 * time.Second

// SyncResult reports the outcome of one drain pass for UI reporting.
type SyncResult struct {
	SuccessCount int
	FailedCount  int
}

// OfflineService guarantees that a point-of-sale transaction recorded while
// disconnected is never lost and eventually reaches the backend. Records move
// pending -> synced only after a confirmed replay; a failed replay leaves the
// record pending for the next drain.
type OfflineService struct {
	api       api.Client
	repo      sales.Repository
	log       logging.Logger
	retention time.Duration

	// test seams
	now   func() time.Time
	newID func() string

	mu     sync.Mutex
	online bool
	subs   []chan bool

	// serializes drain passes; a pass runs to completion once started
	syncMu sync.Mutex
}

// NewOfflineService wires the queue to its backend client and repository.
// A non-positive retention falls back to DefaultRetention. The service starts
// in the offline state until the watcher (or a caller) reports otherwise.
func NewOfflineService(apiClient api.Client, repo sales.Repository, log logging.Logger, retention time.Duration) *OfflineService {
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &OfflineService{
		api:       apiClient,
		repo:      repo,
		log:       log.With("component", "offline"),
		retention: retention,
		now:       time.Now,
		newID:     func() string { return models.OfflineIDPrefix + uuid.NewString() },
	}
}

// IsOnline reports the current connectivity flag.
func (s *OfflineService) IsOnline() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.online
}

// Subscribe returns a channel that receives every connectivity transition in
// order, at most once per transition. The subscriber must keep draining the
// channel.
func (s *OfflineService) Subscribe() <-chan bool {
	ch := make(chan bool, 16)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()
	return ch
}

// SetOnline records a connectivity change. The offline-to-online edge
// triggers one drain pass before returning; the reverse edge only flips the
// flag. Repeated reports of the same state are ignored.
func (s *OfflineService) SetOnline(ctx context.Context, online bool) {
	s.mu.Lock()
	if s.online == online {
		s.mu.Unlock()
		return
	}
	s.online = online
	subs := make([]chan bool, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	if online {
		s.log.Info(ctx, "connectivity restored, draining queue")
	} else {
		s.log.Info(ctx, "connectivity lost")
	}

	for _, ch := range subs {
		ch <- online
	}

	if online {
		if _, err := s.SyncOfflineSales(ctx); err != nil {
			s.log.Error(ctx, "automatic sync failed", "error", err)
		}
	}
}

// StartWatcher probes backend reachability on a ticker and feeds SetOnline
// until ctx is cancelled. Run it in its own goroutine.
func (s *OfflineService) StartWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(context.Background(), probeTimeout)
			err := s.api.Ping(probeCtx)
			cancel()
			s.SetOnline(ctx, err == nil)

		case <-ctx.Done():
			return
		}
	}
}

// SaveOfflineSale coerces the draft into an OfflineSale, assigns a fresh
// namespaced id, stamps the current time, and appends it to the persisted
// queue. No network is involved; missing line totals are derived as
// quantity*unit price and empty enum fields fall back to the defaults.
func (s *OfflineService) SaveOfflineSale(ctx context.Context, draft models.SaleDraft) (string, error) {
	items := make([]models.SaleItem, len(draft.Items))
	for i, it := range draft.Items {
		lineTotal := it.LineTotal
		if lineTotal == 0 {
			lineTotal = float64(it.Quantity) * it.UnitPrice
		}
		name := it.ProductName
		if name == "" {
			name = "Product"
		}
		items[i] = models.SaleItem{
			ProductID:   it.ProductID,
			ProductName: name,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			LineTotal:   lineTotal,
		}
	}

	sale := &models.OfflineSale{
		ID:              s.newID(),
		SessionID:       draft.SessionID,
		CustomerName:    draft.CustomerName,
		CustomerContact: draft.CustomerContact,
		Items:           items,
		Subtotal:        draft.Subtotal,
		Discount:        draft.Discount,
		Tax:             draft.Tax,
		Total:           draft.Total,
		PaymentMethod:   orDefault(draft.PaymentMethod, models.DefaultPaymentMethod),
		PaymentStatus:   orDefault(draft.PaymentStatus, models.DefaultPaymentStatus),
		Status:          orDefault(draft.Status, models.DefaultSaleStatus),
		CreatedAt:       s.now().UTC(),
		Synced:          false,
	}

	if err := s.repo.Append(ctx, sale); err != nil {
		return "", err
	}

	s.log.Info(ctx, "sale queued", "id", sale.ID, "total", sale.Total)
	return sale.ID, nil
}

// GetOfflineSales returns every persisted sale in insertion order.
func (s *OfflineService) GetOfflineSales(ctx context.Context) ([]models.OfflineSale, error) {
	return s.repo.GetAll(ctx)
}

// GetUnsyncedSales returns the sales still awaiting replay.
func (s *OfflineService) GetUnsyncedSales(ctx context.Context) ([]models.OfflineSale, error) {
	return s.repo.GetUnsynced(ctx)
}

// MarkSynced flags a sale as confirmed. No-op for an unknown id.
func (s *OfflineService) MarkSynced(ctx context.Context, id string) error {
	return s.repo.MarkSynced(ctx, id)
}

// RemoveSynced deletes a sale only if it has already been synced.
func (s *OfflineService) RemoveSynced(ctx context.Context, id string) error {
	return s.repo.RemoveSynced(ctx, id)
}

// SyncOfflineSales replays every unsynced sale, in insertion order, through
// the backend write path. A failed replay is counted and skipped so one bad
// record never blocks the rest of the batch; the record stays pending for the
// next drain. The retention sweep runs after the pass. Returns {0,0}
// immediately when offline.
func (s *OfflineService) SyncOfflineSales(ctx context.Context) (SyncResult, error) {
	if !s.IsOnline() {
		return SyncResult{}, nil
	}

	s.syncMu.Lock()
	defer s.syncMu.Unlock()

	unsynced, err := s.repo.GetUnsynced(ctx)
	if err != nil {
		return SyncResult{}, err
	}

	var result SyncResult
	for _, sale := range unsynced {
		if err := s.api.CreateSale(ctx, sale.CreatePayload()); err != nil {
			s.log.Warn(ctx, "sale replay failed", "id", sale.ID, "error", err)
			result.FailedCount++
			continue
		}
		if err := s.repo.MarkSynced(ctx, sale.ID); err != nil {
			// the backend accepted the sale; losing the flag means a
			// duplicate replay next pass, so surface it loudly
			s.log.Error(ctx, "failed to mark sale synced", "id", sale.ID, "error", err)
		}
		result.SuccessCount++
	}

	cutoff := s.now().UTC().Add(-s.retention)
	if err := s.repo.SweepSynced(ctx, cutoff); err != nil {
		s.log.Error(ctx, "retention sweep failed", "error", err)
	}

	if result.SuccessCount > 0 || result.FailedCount > 0 {
		s.log.Info(ctx, "sync pass finished",
			"synced", result.SuccessCount, "failed", result.FailedCount)
	}

	return result, nil
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

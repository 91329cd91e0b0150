package cli

import (
	"context"
	"fmt"
)

func (a *App) Pending(ctx context.Context) error {
	items, err := a.offline.GetUnsyncedSales(ctx)
	if err != nil {
		a.log.Error(ctx, "error reading offline queue", "error", err)
		return err
	}

	if len(items) == 0 {
		fmt.Println("No pending sales")
		return nil
	}

	for _, s := range items {
		fmt.Printf("%s  %s  %.2f  %s\n", s.ID, s.CreatedAt.Format("2006-01-02 15:04:05"), s.Total, s.PaymentMethod)
	}
	return nil
}

func (a *App) Sync(ctx context.Context) error {
	res, err := a.offline.SyncOfflineSales(ctx)
	if err != nil {
		a.log.Error(ctx, "error syncing sales", "error", err)
		return err
	}
	fmt.Printf("Sync finished: %d ok, %d failed\n", res.SuccessCount, res.FailedCount)
	return nil
}

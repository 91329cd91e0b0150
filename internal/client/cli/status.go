package cli

import (
	"context"
	"fmt"
)

func (a *App) Status(ctx context.Context) error {
	pending, err := a.offline.GetUnsyncedSales(ctx)
	if err != nil {
		a.log.Error(ctx, "error reading offline queue", "error", err)
		return err
	}

	mode := "offline"
	if a.offline.IsOnline() {
		mode = "online"
	}
	fmt.Printf("Backend: %s\n", mode)
	fmt.Printf("Pending offline sales: %d\n", len(pending))
	if a.catalog.HasSnapshot(ctx) {
		fmt.Println("Catalog snapshot: present")
	} else {
		fmt.Println("Catalog snapshot: none")
	}
	return nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/lyade28/shopsync/internal/client/pagination"
)

func (a *App) Products(ctx context.Context, page int) error {
	res, err := a.catalog.ListProducts(ctx, page, a.config.PageSize)
	if err != nil {
		a.log.Error(ctx, "error listing products", "error", err)
		return err
	}

	for _, p := range res.Results {
		fmt.Printf("%-6d %-30s %10.2f %s\n", p.ID, p.Name, p.SellingPrice, p.Unit)
	}
	printPageFooter(page, res.Count, a.config.PageSize)
	return nil
}

func (a *App) Inventory(ctx context.Context, page int) error {
	res, err := a.catalog.ListInventory(ctx, page, a.config.PageSize)
	if err != nil {
		a.log.Error(ctx, "error listing inventory", "error", err)
		return err
	}

	for _, it := range res.Results {
		low := ""
		if it.IsLowStock {
			low = "LOW"
		}
		fmt.Printf("%-6d %-30s %6d %s\n", it.ProductID, it.ProductName, it.Quantity, low)
	}
	printPageFooter(page, res.Count, a.config.PageSize)
	return nil
}

func (a *App) Sessions(ctx context.Context) error {
	res, err := a.catalog.ListSessions(ctx, 1, a.config.PageSize)
	if err != nil {
		a.log.Error(ctx, "error listing sessions", "error", err)
		return err
	}

	for _, s := range res.Results {
		fmt.Printf("%-6d %-16s %-10s %10.2f\n", s.ID, s.SessionNumber, s.Status, s.TotalSales)
	}
	return nil
}

func (a *App) ClearCache(ctx context.Context) error {
	a.catalog.InvalidateLists()
	if err := a.catalog.ClearSnapshots(ctx); err != nil {
		a.log.Error(ctx, "error clearing snapshots", "error", err)
		return err
	}
	fmt.Println("Cache and snapshots cleared")
	return nil
}

func printPageFooter(page, count, pageSize int) {
	fmt.Printf("page %d of %d (%d items)\n", page, pagination.TotalPages(count, pageSize), count)
}

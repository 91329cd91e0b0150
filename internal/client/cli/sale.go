package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/lyade28/shopsync/internal/client/models"
)

// readSaleDraft walks the cashier through a sale: header fields, then line
// items until an empty product id is entered. Line and sale totals are
// derived from the entered quantities and prices.
func readSaleDraft(reader *bufio.Reader, w io.Writer) (models.SaleDraft, error) {
	var draft models.SaleDraft

	sessionID, err := GetInt(reader, "Session id (empty for none)", 0, w)
	if err != nil {
		return draft, err
	}
	draft.SessionID = sessionID

	customer, err := GetSimpleText(reader, "Customer name (empty for walk-in)", w)
	if err != nil {
		return draft, err
	}
	draft.CustomerName = customer

	for {
		productID, err := GetInt(reader, "Product id (empty line to finish)", 0, w)
		if err != nil {
			return draft, err
		}
		if productID == 0 {
			break
		}

		name, err := GetSimpleText(reader, "Product name", w)
		if err != nil {
			return draft, err
		}
		qty, err := GetInt(reader, "Quantity", 1, w)
		if err != nil {
			return draft, err
		}
		price, err := GetFloat(reader, "Unit price", 0, w)
		if err != nil {
			return draft, err
		}

		draft.Items = append(draft.Items, models.SaleDraftItem{
			ProductID:   productID,
			ProductName: name,
			Quantity:    int(qty),
			UnitPrice:   price,
		})
	}

	if len(draft.Items) == 0 {
		return draft, fmt.Errorf("a sale needs at least one item")
	}

	var subtotal float64
	for _, it := range draft.Items {
		subtotal += float64(it.Quantity) * it.UnitPrice
	}

	discount, err := GetFloat(reader, "Discount (empty for 0)", 0, w)
	if err != nil {
		return draft, err
	}
	method, err := GetSimpleText(reader, "Payment method (empty for cash)", w)
	if err != nil {
		return draft, err
	}

	draft.Subtotal = subtotal
	draft.Discount = discount
	draft.Total = subtotal - discount
	draft.PaymentMethod = method

	return draft, nil
}

func (a *App) Sale(ctx context.Context) error {
	draft, err := readSaleDraft(a.reader, outW)
	if err != nil {
		a.log.Error(ctx, "error reading sale", "error", err)
		return err
	}

	id, err := a.offline.SaveOfflineSale(ctx, draft)
	if err != nil {
		a.log.Error(ctx, "error saving sale", "error", err)
		return err
	}

	fmt.Printf("Sale recorded: %s (total %.2f)\n", id, draft.Total)
	if a.offline.IsOnline() {
		res, err := a.offline.SyncOfflineSales(ctx)
		if err != nil {
			a.log.Error(ctx, "error syncing sales", "error", err)
			return err
		}
		fmt.Printf("Synced immediately: %d ok, %d failed\n", res.SuccessCount, res.FailedCount)
	} else {
		fmt.Println("Backend unreachable, sale queued for sync")
	}
	return nil
}

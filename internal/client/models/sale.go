// Package models defines client-side data models used by the shopsync CLI.
package models

import "time"

// OfflineIDPrefix namespaces client-generated sale ids so they can never be
// mistaken for server-assigned ones.
const OfflineIDPrefix = "offline_"

// Defaults applied to sale drafts that omit the corresponding field.
const (
	DefaultPaymentMethod = "cash"
	DefaultPaymentStatus = "paid"
	DefaultSaleStatus    = "completed"
)

// SaleItem is one line of a locally recorded sale.
type SaleItem struct {
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	LineTotal   float64 `json:"line_total"`
}

// OfflineSale is a point-of-sale transaction persisted locally until it has
// been confirmed by the backend. Synced flips to true only after a successful
// replay; a failed replay leaves the record pending for the next drain.
type OfflineSale struct {
	ID              string     `json:"id"`
	SessionID       int64      `json:"session_id"`
	CustomerName    string     `json:"customer_name"`
	CustomerContact string     `json:"customer_contact,omitempty"`
	Items           []SaleItem `json:"items"`
	Subtotal        float64    `json:"subtotal"`
	Discount        float64    `json:"discount"`
	Tax             float64    `json:"tax"`
	Total           float64    `json:"total"`
	PaymentMethod   string     `json:"payment_method"`
	PaymentStatus   string     `json:"payment_status"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	Synced          bool       `json:"synced"`
}

// SaleDraftItem is a line item as submitted by the caller. LineTotal may be
// zero, in which case it is derived as Quantity*UnitPrice.
type SaleDraftItem struct {
	ProductID   int64
	ProductName string
	Quantity    int
	UnitPrice   float64
	LineTotal   float64
}

// SaleDraft is the caller-facing input for recording a sale. Empty enum
// fields fall back to the defaults above.
type SaleDraft struct {
	SessionID       int64
	CustomerName    string
	CustomerContact string
	Items           []SaleDraftItem
	Subtotal        float64
	Discount        float64
	Tax             float64
	Total           float64
	PaymentMethod   string
	PaymentStatus   string
	Status          string
}

// SaleCreateItem is a line item in the backend's sale-creation schema.
type SaleCreateItem struct {
	Product   int64   `json:"product"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Discount  float64 `json:"discount"`
	Subtotal  float64 `json:"subtotal"`
}

// SaleCreate is the backend's sale-creation schema.
type SaleCreate struct {
	Session         int64            `json:"session"`
	CustomerName    string           `json:"customer_name"`
	CustomerContact string           `json:"customer_contact,omitempty"`
	Items           []SaleCreateItem `json:"items"`
	Subtotal        float64          `json:"subtotal"`
	Discount        float64          `json:"discount"`
	Tax             float64          `json:"tax"`
	Total           float64          `json:"total"`
	PaymentMethod   string           `json:"payment_method"`
	PaymentStatus   string           `json:"payment_status"`
	Status          string           `json:"status"`
}

// CreatePayload translates a locally queued sale into the backend's write
// schema for replay.
func (s *OfflineSale) CreatePayload() SaleCreate {
	items := make([]SaleCreateItem, len(s.Items))
	for i, it := range s.Items {
		items[i] = SaleCreateItem{
			Product:   it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Discount:  0,
			Subtotal:  it.LineTotal,
		}
	}
	return SaleCreate{
		Session:         s.SessionID,
		CustomerName:    s.CustomerName,
		CustomerContact: s.CustomerContact,
		Items:           items,
		Subtotal:        s.Subtotal,
		Discount:        s.Discount,
		Tax:             s.Tax,
		Total:           s.Total,
		PaymentMethod:   s.PaymentMethod,
		PaymentStatus:   s.PaymentStatus,
		Status:          s.Status,
	}
}

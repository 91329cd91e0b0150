package models

// Product is the reference-data view of a sellable item, as served by the
// backend catalog endpoints.
type Product struct {
	ID           int64   `json:"id"`
	SKU          string  `json:"sku,omitempty"`
	Name         string  `json:"name"`
	CategoryName string  `json:"category_name,omitempty"`
	Unit         string  `json:"unit,omitempty"`
	SellingPrice float64 `json:"selling_price"`
	IsActive     bool    `json:"is_active"`
}

// InventoryItem is a per-shop stock level for a product.
type InventoryItem struct {
	ID          int64  `json:"id"`
	ProductID   int64  `json:"product"`
	ProductName string `json:"product_name,omitempty"`
	ShopID      int64  `json:"shop"`
	ShopName    string `json:"shop_name,omitempty"`
	Quantity    int    `json:"quantity"`
	MinQuantity int    `json:"min_quantity"`
	IsLowStock  bool   `json:"is_low_stock,omitempty"`
}

// SaleSession is an open or closed point-of-sale session.
type SaleSession struct {
	ID            int64   `json:"id"`
	SessionNumber string  `json:"session_number"`
	SellerID      int64   `json:"seller"`
	SellerName    string  `json:"seller_name,omitempty"`
	ShopID        int64   `json:"shop"`
	ShopName      string  `json:"shop_name,omitempty"`
	Status        string  `json:"status"`
	TotalSales    float64 `json:"total_sales"`
}

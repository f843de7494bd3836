package domain

import "time"

// Order is immutable once placed; the ledger never updates or deletes it.
type Order struct {
	ID         string        `json:"id"`
	CustomerID string        `json:"customerId"`
	TotalCents int64         `json:"totalCents"`
	PlacedAt   time.Time     `json:"placedAt"`
	Details    []OrderDetail `json:"details,omitempty"`
}

type OrderDetail struct {
	ID             int64  `json:"id"`
	OrderID        string `json:"-"`
	ProductID      string `json:"productId"`
	ProductName    string `json:"productName,omitempty"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unitPriceCents"`
}

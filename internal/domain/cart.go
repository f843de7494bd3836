package domain

import "time"

type Cart struct {
	CustomerID string     `json:"customerId"`
	Lines      []CartLine `json:"lineItems"`
	TotalCents int64      `json:"totalCents"`
}

type CartLine struct {
	ID             string    `json:"id"`
	CustomerID     string    `json:"-"`
	ProductID      string    `json:"productId"`
	Quantity       int       `json:"quantity"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	TotalCents     int64     `json:"totalCents"`
	CreatedAt      time.Time `json:"createdAt"`
}

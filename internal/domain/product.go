package domain

import "time"

type Product struct {
	ID         string    `json:"id"`
	CategoryID string    `json:"categoryId"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"priceCents"`
	ImageURL   string    `json:"imageUrl,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

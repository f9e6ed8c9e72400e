package model

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog listing. Products are append-only: once persisted
// they are never updated or deleted, and they always carry at least one
// image URL.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Price       float64   `json:"price"`
	Description string    `json:"description,omitempty"`
	ImageURLs   []string  `json:"imageUrls"`
	CreatedAt   time.Time `json:"createdAt"`
}
